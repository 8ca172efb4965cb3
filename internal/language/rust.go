package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const rustDefinitionsQuery = `
    (function_item name: (identifier) @name) @definition.function
    (struct_item name: (type_identifier) @name) @definition.struct
    (enum_item name: (type_identifier) @name) @definition.enum
    (trait_item name: (type_identifier) @name) @definition.trait
    (mod_item name: (identifier) @name) @definition.module
    (const_item name: (identifier) @name) @definition.const
    (static_item name: (identifier) @name) @definition.static
    (impl_item type: (type_identifier) @name) @definition.impl
`

const rustUsagesQuery = `
    (identifier) @usage
    (type_identifier) @usage
    (field_identifier) @usage
`

var rustMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.struct", Kind: types.SymbolKindStruct},
	{Capture: "definition.enum", Kind: types.SymbolKindEnum},
	{Capture: "definition.trait", Kind: types.SymbolKindTrait},
	{Capture: "definition.module", Kind: types.SymbolKindModule},
	{Capture: "definition.const", Kind: types.SymbolKindConst},
	{Capture: "definition.static", Kind: types.SymbolKindStatic},
	{Capture: "definition.impl", Kind: types.SymbolKindImpl},
}

func newRust() (*Language, error) {
	l := &Language{
		id:            Rust,
		name:          "Rust",
		extensions:    []string{"rs"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_rust.Language()),
		mappings:      rustMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, rustDefinitionsQuery, rustUsagesQuery)
}
