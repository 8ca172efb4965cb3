package language

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"

	"github.com/standardbeagle/codescope/internal/types"
)

const cppDefinitionsQuery = `
    (function_definition
        declarator: (function_declarator
            declarator: (identifier) @name)) @definition.function
    (class_specifier name: (type_identifier) @name) @definition.class
    (struct_specifier name: (type_identifier) @name) @definition.struct
    (enum_specifier name: (type_identifier) @name) @definition.enum
    (namespace_definition name: (namespace_identifier) @name) @definition.namespace
`

const cppUsagesQuery = `
    (identifier) @usage
    (type_identifier) @usage
    (field_identifier) @usage
`

var cppMappings = []KindMapping{
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.class", Kind: types.SymbolKindClass},
	{Capture: "definition.struct", Kind: types.SymbolKindStruct},
	{Capture: "definition.enum", Kind: types.SymbolKindEnum},
	{Capture: "definition.namespace", Kind: types.SymbolKindNamespace},
}

func newCpp() (*Language, error) {
	l := &Language{
		id:            Cpp,
		name:          "Cpp",
		extensions:    []string{"cpp", "cc", "cxx", "hpp", "h"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_cpp.Language()),
		mappings:      cppMappings,
		lineComment:   "//",
		blockComments: true,
	}
	return l, compileQueries(l, cppDefinitionsQuery, cppUsagesQuery)
}
