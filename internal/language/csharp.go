package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const csharpDefinitionsQuery = `
    (method_declaration name: (identifier) @name) @definition.method
    (constructor_declaration name: (identifier) @name) @definition.constructor
    (class_declaration name: (identifier) @name) @definition.class
    (interface_declaration name: (identifier) @name) @definition.interface
    (struct_declaration name: (identifier) @name) @definition.struct
    (record_declaration name: (identifier) @name) @definition.record
    (enum_declaration name: (identifier) @name) @definition.enum
    (property_declaration name: (identifier) @name) @definition.property
    (field_declaration
        (variable_declaration
            (variable_declarator (identifier) @name))) @definition.variable
`

const csharpUsagesQuery = `
    (identifier) @usage
`

var csharpMappings = []KindMapping{
	{Capture: "definition.method", Kind: types.SymbolKindMethod},
	{Capture: "definition.constructor", Kind: types.SymbolKindConstructor},
	{Capture: "definition.class", Kind: types.SymbolKindClass},
	{Capture: "definition.interface", Kind: types.SymbolKindInterface},
	{Capture: "definition.struct", Kind: types.SymbolKindStruct},
	{Capture: "definition.record", Kind: types.SymbolKindRecord},
	{Capture: "definition.enum", Kind: types.SymbolKindEnum},
	{Capture: "definition.property", Kind: types.SymbolKindProperty},
	{Capture: "definition.variable", Kind: types.SymbolKindVariable},
}

func newCSharp() (*Language, error) {
	l := &Language{
		id:            CSharp,
		name:          "CSharp",
		extensions:    []string{"cs"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_csharp.Language()),
		mappings:      csharpMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, csharpDefinitionsQuery, csharpUsagesQuery)
}
