package pipeline

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/comment"
	"github.com/standardbeagle/codescope/internal/parser"
	"github.com/standardbeagle/codescope/internal/types"
)

// DefinitionCollector finds definitions of one symbol, optionally with the
// documentation attached to them.
type DefinitionCollector struct {
	Symbol      string
	IncludeDocs bool
}

func (c *DefinitionCollector) CollectFile(cp *parser.CachedParser, path string) ([]types.SymbolDefinition, error) {
	res, err := cp.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	lang := res.Language
	query := lang.Definitions()
	mappings := lang.DefinitionMappings()
	captureNames := query.CaptureNames()

	// SQL keeps its docs in COMMENT ON statements; build the lookup once.
	var separateDocs map[string]string
	var source string
	if c.IncludeDocs {
		if lang.UsesSeparateDocs() {
			separateDocs = extractSeparateDocs(res)
		} else {
			source = string(res.Content)
		}
	}

	var defs []types.SymbolDefinition

	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(query, res.Tree.RootNode(), res.Content)
	for m := matches.Next(); m != nil; m = matches.Next() {
		var name string
		var defNode *tree_sitter.Node
		var kind types.SymbolKind

		for i := range m.Captures {
			capture := &m.Captures[i]
			switch capName := captureNames[capture.Index]; capName {
			case "name":
				name = nodeText(&capture.Node, res.Content)
			default:
				for _, mapping := range mappings {
					if capName == mapping.Capture {
						defNode = &capture.Node
						kind = mapping.Kind
						break
					}
				}
			}
		}

		if defNode == nil || name != c.Symbol {
			continue
		}

		docs := ""
		if c.IncludeDocs {
			if lang.UsesSeparateDocs() {
				docs = separateDocs[separateDocsKey(defNode, res.Content, name, kind)]
			} else {
				docs = comment.ExtractDocsBeforeLine(source, uint(defNode.StartPosition().Row))
			}
		}

		defs = append(defs, types.SymbolDefinition{
			FilePath:  path,
			StartLine: int(defNode.StartPosition().Row) + 1,
			EndLine:   int(defNode.EndPosition().Row) + 1,
			Kind:      kind,
			Code:      nodeText(defNode, res.Content),
			Name:      name,
			Docs:      docs,
		})
	}

	return defs, nil
}

func nodeText(node *tree_sitter.Node, content []byte) string {
	return string(content[node.StartByte():node.EndByte()])
}
