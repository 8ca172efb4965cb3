package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const javascriptDefinitionsQuery = `
    (function_declaration name: (identifier) @name) @definition.function
    (generator_function_declaration name: (identifier) @name) @definition.function
    (class_declaration name: (identifier) @name) @definition.class
    (method_definition name: (property_identifier) @name
        (#not-eq? @name "constructor")) @definition.method
    (method_definition name: (property_identifier) @name
        (#eq? @name "constructor")) @definition.constructor
    (variable_declarator
        name: (identifier) @name
        value: (arrow_function)) @definition.arrow_function
    (variable_declarator name: (identifier) @name) @definition.variable
`

const javascriptUsagesQuery = `
    (identifier) @usage
    (property_identifier) @usage
    (shorthand_property_identifier) @usage
`

var javascriptMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.class", Kind: types.SymbolKindClass},
	{Capture: "definition.method", Kind: types.SymbolKindMethod},
	{Capture: "definition.variable", Kind: types.SymbolKindVariable},
	{Capture: "definition.arrow_function", Kind: types.SymbolKindArrowFunction},
	{Capture: "definition.constructor", Kind: types.SymbolKindConstructor},
}

func newJavaScript() (*Language, error) {
	l := &Language{
		id:            JavaScript,
		name:          "JavaScript",
		extensions:    []string{"js", "mjs", "cjs"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_javascript.Language()),
		mappings:      javascriptMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, javascriptDefinitionsQuery, javascriptUsagesQuery)
}

// The JavaScript grammar parses JSX natively, so the react variant shares
// the grammar and queries and differs only in identity and extension.
func newJavaScriptReact() (*Language, error) {
	l := &Language{
		id:            JavaScriptReact,
		name:          "JavaScriptReact",
		extensions:    []string{"jsx"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_javascript.Language()),
		mappings:      javascriptMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, javascriptDefinitionsQuery, javascriptUsagesQuery)
}
