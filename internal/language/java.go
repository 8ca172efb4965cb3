package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const javaDefinitionsQuery = `
    (method_declaration name: (identifier) @name) @definition.method
    (constructor_declaration name: (identifier) @name) @definition.constructor
    (class_declaration name: (identifier) @name) @definition.class
    (record_declaration name: (identifier) @name) @definition.record
    (interface_declaration name: (identifier) @name) @definition.interface
    (enum_declaration name: (identifier) @name) @definition.enum
    (field_declaration
        declarator: (variable_declarator name: (identifier) @name)) @definition.variable
`

const javaUsagesQuery = `
    (identifier) @usage
    (type_identifier) @usage
`

var javaMappings = []KindMapping{
	{Capture: "definition.method", Kind: types.SymbolKindMethod},
	{Capture: "definition.constructor", Kind: types.SymbolKindConstructor},
	{Capture: "definition.class", Kind: types.SymbolKindClass},
	{Capture: "definition.record", Kind: types.SymbolKindRecord},
	{Capture: "definition.interface", Kind: types.SymbolKindInterface},
	{Capture: "definition.enum", Kind: types.SymbolKindEnum},
	{Capture: "definition.variable", Kind: types.SymbolKindVariable},
}

func newJava() (*Language, error) {
	l := &Language{
		id:            Java,
		name:          "Java",
		extensions:    []string{"java"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_java.Language()),
		mappings:      javaMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, javaDefinitionsQuery, javaUsagesQuery)
}
