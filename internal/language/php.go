package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const phpDefinitionsQuery = `
    (function_definition name: (name) @name) @definition.function
    (method_declaration name: (name) @name) @definition.method
    (class_declaration name: (name) @name) @definition.class
    (interface_declaration name: (name) @name) @definition.interface
    (trait_declaration name: (name) @name) @definition.trait
    (enum_declaration name: (name) @name) @definition.enum
`

const phpUsagesQuery = `
    (name) @usage
`

var phpMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.method", Kind: types.SymbolKindMethod},
	{Capture: "definition.class", Kind: types.SymbolKindClass},
	{Capture: "definition.interface", Kind: types.SymbolKindInterface},
	{Capture: "definition.trait", Kind: types.SymbolKindTrait},
	{Capture: "definition.enum", Kind: types.SymbolKindEnum},
}

func newPHP() (*Language, error) {
	l := &Language{
		id:            PHP,
		name:          "PHP",
		extensions:    []string{"php", "phtml"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP()),
		mappings:      phpMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, phpDefinitionsQuery, phpUsagesQuery)
}
