package pipeline

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/parser"
)

// SymbolNameCollector gathers every defined symbol name in the workspace.
// Used to build did-you-mean suggestions when a definition lookup comes back
// empty.
type SymbolNameCollector struct{}

func (SymbolNameCollector) CollectFile(cp *parser.CachedParser, path string) ([]string, error) {
	res, err := cp.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	query := res.Language.Definitions()
	captureNames := query.CaptureNames()

	var names []string
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(query, res.Tree.RootNode(), res.Content)
	for m := matches.Next(); m != nil; m = matches.Next() {
		for i := range m.Captures {
			capture := &m.Captures[i]
			if captureNames[capture.Index] == "name" {
				names = append(names, nodeText(&capture.Node, res.Content))
			}
		}
	}
	return names, nil
}
