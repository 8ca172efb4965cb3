package language

import (
	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/types"
)

const zigDefinitionsQuery = `
    (function_declaration (identifier) @name) @definition.function
    (variable_declaration
        (identifier) @name
        (struct_declaration)) @definition.struct
    (variable_declaration
        (identifier) @name
        (enum_declaration)) @definition.enum
    (variable_declaration (identifier) @name) @definition.variable
`

const zigUsagesQuery = `
    (identifier) @usage
`

var zigMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.struct", Kind: types.SymbolKindStruct},
	{Capture: "definition.enum", Kind: types.SymbolKindEnum},
	{Capture: "definition.variable", Kind: types.SymbolKindVariable},
}

// Zig has no block comment syntax, so only line comments are scanned.
func newZig() (*Language, error) {
	l := &Language{
		id:          Zig,
		name:        "Zig",
		extensions:  []string{"zig"},
		grammar:     tree_sitter.NewLanguage(tree_sitter_zig.Language()),
		mappings:    zigMappings,
		lineComment: "//",
	}
	return l, compileQueries(l, zigDefinitionsQuery, zigUsagesQuery)
}
