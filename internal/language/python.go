package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const pythonDefinitionsQuery = `
    (function_definition name: (identifier) @name) @definition.function
    (class_definition name: (identifier) @name) @definition.class
    (assignment left: (identifier) @name) @definition.variable
`

const pythonUsagesQuery = `
    (identifier) @usage
`

var pythonMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.class", Kind: types.SymbolKindClass},
	{Capture: "definition.variable", Kind: types.SymbolKindVariable},
}

func newPython() (*Language, error) {
	l := &Language{
		id:          Python,
		name:        "Python",
		extensions:  []string{"py", "pyi"},
		grammar:     tree_sitter.NewLanguage(tree_sitter_python.Language()),
		mappings:    pythonMappings,
		lineComment: "#",
	}
	return l, compileQueries(l, pythonDefinitionsQuery, pythonUsagesQuery)
}
