package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const goDefinitionsQuery = `
    (function_declaration name: (identifier) @name) @definition.function
    (method_declaration name: (field_identifier) @name) @definition.method
    (type_declaration (type_spec name: (type_identifier) @name) @definition.struct)
    (const_declaration (const_spec name: (identifier) @name) @definition.const)
    (var_declaration (var_spec name: (identifier) @name) @definition.variable)
`

const goUsagesQuery = `
    (identifier) @usage
    (field_identifier) @usage
    (type_identifier) @usage
    (package_identifier) @usage
`

var goMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.method", Kind: types.SymbolKindMethod},
	{Capture: "definition.struct", Kind: types.SymbolKindStruct},
	{Capture: "definition.const", Kind: types.SymbolKindConst},
	{Capture: "definition.variable", Kind: types.SymbolKindVariable},
}

func newGo() (*Language, error) {
	l := &Language{
		id:            Go,
		name:          "Go",
		extensions:    []string{"go"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_go.Language()),
		mappings:      goMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, goDefinitionsQuery, goUsagesQuery)
}
