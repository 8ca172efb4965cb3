package language

import (
	tree_sitter_sql "github.com/DerekStride/tree-sitter-sql/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/types"
)

// The definitions query doubles as the source for COMMENT ON documentation:
// the comment.table / comment.column capture groups are consumed by the SQL
// doc-map extractor, not by the definition mapping table.
const sqlDefinitionsQuery = `
    (create_table (object_reference (identifier) @name)) @definition.table
    (create_view (object_reference (identifier) @name)) @definition.view
    (create_function (object_reference (identifier) @name)) @definition.function
    (create_index (identifier) @name) @definition.index
    (create_trigger (identifier) @name) @definition.trigger
    (column_definition name: (identifier) @name) @definition.column

    (comment_statement
        (keyword_table)
        (object_reference (identifier) @comment.table.name)
        (literal) @comment.table.text) @comment.table
    (comment_statement
        (keyword_column)
        (object_reference
            (identifier) @comment.column.table
            (identifier) @comment.column.name)
        (literal) @comment.column.text) @comment.column
`

const sqlUsagesQuery = `
    (identifier) @usage
`

var sqlMappings = []KindMapping{
	{Capture: "definition.table", Kind: types.SymbolKindTable},
	{Capture: "definition.view", Kind: types.SymbolKindView},
	{Capture: "definition.function", Kind: types.SymbolKindFunction},
	{Capture: "definition.index", Kind: types.SymbolKindIndex},
	{Capture: "definition.trigger", Kind: types.SymbolKindTrigger},
	{Capture: "definition.column", Kind: types.SymbolKindColumn},
}

// SQL documentation lives in COMMENT ON statements rather than comments
// adjacent to the definition, so the definition collector consults the
// doc map built from this language's query instead of backward-scanning.
func newSQL() (*Language, error) {
	l := &Language{
		id:            SQL,
		name:          "SQL",
		extensions:    []string{"sql"},
		grammar:       tree_sitter.NewLanguage(tree_sitter_sql.Language()),
		mappings:      sqlMappings,
		separateDocs:  true,
		lineComment:   "--",
		blockComments: true,
	}
	return l, compileQueries(l, sqlDefinitionsQuery, sqlUsagesQuery)
}
