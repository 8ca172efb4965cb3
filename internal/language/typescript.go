package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const typescriptDefinitionsQuery = `
    (function_declaration name: (identifier) @name) @definition.function
    (generator_function_declaration name: (identifier) @name) @definition.function
    (class_declaration name: (type_identifier) @name) @definition.class
    (method_definition name: (property_identifier) @name
        (#not-eq? @name "constructor")) @definition.method
    (method_definition name: (property_identifier) @name
        (#eq? @name "constructor")) @definition.constructor
    (interface_declaration name: (type_identifier) @name) @definition.interface
    (enum_declaration name: (identifier) @name) @definition.enum
    (type_alias_declaration name: (type_identifier) @name) @definition.type_alias
    (variable_declarator
        name: (identifier) @name
        value: (arrow_function)) @definition.arrow_function
    (variable_declarator name: (identifier) @name) @definition.variable
`

const typescriptUsagesQuery = `
    (identifier) @usage
    (property_identifier) @usage
    (type_identifier) @usage
    (shorthand_property_identifier) @usage
`

var typescriptMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.class", Kind: types.SymbolKindClass},
	{Capture: "definition.method", Kind: types.SymbolKindMethod},
	{Capture: "definition.interface", Kind: types.SymbolKindInterface},
	{Capture: "definition.enum", Kind: types.SymbolKindEnum},
	{Capture: "definition.variable", Kind: types.SymbolKindVariable},
	{Capture: "definition.arrow_function", Kind: types.SymbolKindArrowFunction},
	{Capture: "definition.constructor", Kind: types.SymbolKindConstructor},
	{Capture: "definition.type_alias", Kind: types.SymbolKindTypeAlias},
}

func newTypeScript() (*Language, error) {
	l := &Language{
		id:            TypeScript,
		name:          "TypeScript",
		extensions:    []string{"ts"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
		mappings:      typescriptMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, typescriptDefinitionsQuery, typescriptUsagesQuery)
}

func newTypeScriptReact() (*Language, error) {
	l := &Language{
		id:            TypeScriptReact,
		name:          "TypeScriptReact",
		extensions:    []string{"tsx"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
		mappings:      typescriptMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, typescriptDefinitionsQuery, typescriptUsagesQuery)
}
