package pipeline

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/parser"
	"github.com/standardbeagle/codescope/internal/types"
)

// extractSeparateDocs builds the documentation lookup for a SQL file from
// its COMMENT ON statements. Keys are "table" for tables and "table.column"
// for columns.
func extractSeparateDocs(res *parser.ParseResult) map[string]string {
	docs := make(map[string]string)
	query := res.Language.Definitions()
	captureNames := query.CaptureNames()

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(query, res.Tree.RootNode(), res.Content)
	for m := matches.Next(); m != nil; m = matches.Next() {
		var isTable, isColumn bool
		var tableName, columnName, text string

		for i := range m.Captures {
			capture := &m.Captures[i]
			switch captureNames[capture.Index] {
			case "comment.table":
				isTable = true
			case "comment.table.name":
				tableName = nodeText(&capture.Node, res.Content)
			case "comment.table.text":
				text = nodeText(&capture.Node, res.Content)
			case "comment.column":
				isColumn = true
			case "comment.column.table":
				tableName = nodeText(&capture.Node, res.Content)
			case "comment.column.name":
				columnName = nodeText(&capture.Node, res.Content)
			case "comment.column.text":
				text = nodeText(&capture.Node, res.Content)
			}
		}

		switch {
		case isTable && tableName != "" && text != "":
			docs[tableName] = cleanSQLLiteral(text)
		case isColumn && tableName != "" && columnName != "" && text != "":
			docs[tableName+"."+columnName] = cleanSQLLiteral(text)
		}
	}

	return docs
}

// separateDocsKey resolves the lookup key for a definition: columns are
// qualified by their enclosing CREATE TABLE, everything else by name.
func separateDocsKey(node *tree_sitter.Node, content []byte, name string, kind types.SymbolKind) string {
	if kind != types.SymbolKindColumn {
		return name
	}
	if table := findParentTableName(node, content); table != "" {
		return table + "." + name
	}
	return name
}

// findParentTableName walks up to the enclosing create_table statement and
// returns its table name, or "".
func findParentTableName(node *tree_sitter.Node, content []byte) string {
	for cur := node.Parent(); cur != nil; cur = cur.Parent() {
		if cur.Kind() != "create_table" {
			continue
		}
		for i := uint(0); i < cur.ChildCount(); i++ {
			child := cur.Child(i)
			if child == nil || child.Kind() != "object_reference" {
				continue
			}
			for j := uint(0); j < child.ChildCount(); j++ {
				if id := child.Child(j); id != nil && id.Kind() == "identifier" {
					return nodeText(id, content)
				}
			}
		}
	}
	return ""
}

// cleanSQLLiteral strips the surrounding quotes of a SQL string literal and
// unescapes doubled single quotes.
func cleanSQLLiteral(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "'") && strings.HasSuffix(trimmed, "'") {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	return strings.ReplaceAll(trimmed, "''", "'")
}
