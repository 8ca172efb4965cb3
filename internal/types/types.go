// Package types defines the domain facts produced by the analysis pipeline.
// All values here are transient: they are built per request from a parsed
// tree and never cached or persisted.
package types

// SymbolKind classifies what a definition declares. The set is closed per
// language; each language's capture mappings pick from these values.
type SymbolKind string

const (
	SymbolKindFunction      SymbolKind = "Function"
	SymbolKindClass         SymbolKind = "Class"
	SymbolKindMethod        SymbolKind = "Method"
	SymbolKindInterface     SymbolKind = "Interface"
	SymbolKindEnum          SymbolKind = "Enum"
	SymbolKindVariable      SymbolKind = "Variable"
	SymbolKindArrowFunction SymbolKind = "ArrowFunction"
	SymbolKindConstructor   SymbolKind = "Constructor"
	SymbolKindTypeAlias     SymbolKind = "TypeAlias"
	SymbolKindStruct        SymbolKind = "Struct"
	SymbolKindTrait         SymbolKind = "Trait"
	SymbolKindImpl          SymbolKind = "Impl"
	SymbolKindModule        SymbolKind = "Module"
	SymbolKindConst         SymbolKind = "Const"
	SymbolKindStatic        SymbolKind = "Static"
	SymbolKindProperty      SymbolKind = "Property"
	SymbolKindRecord        SymbolKind = "Record"
	SymbolKindNamespace     SymbolKind = "Namespace"
	SymbolKindTable         SymbolKind = "Table"
	SymbolKindView          SymbolKind = "View"
	SymbolKindProcedure     SymbolKind = "Procedure"
	SymbolKindIndex         SymbolKind = "Index"
	SymbolKindTrigger       SymbolKind = "Trigger"
	SymbolKindColumn        SymbolKind = "Column"
)

// SymbolDefinition is one place a symbol is declared.
type SymbolDefinition struct {
	FilePath  string     `json:"file_path"`
	StartLine int        `json:"start_line"` // 1-indexed, inclusive
	EndLine   int        `json:"end_line"`   // 1-indexed, inclusive
	Kind      SymbolKind `json:"kind"`
	Code      string     `json:"code"` // verbatim source slice
	Name      string     `json:"name"`
	Docs      string     `json:"docs,omitempty"`
}

// UsageKind describes the syntactic role of a symbol occurrence.
type UsageKind string

const (
	// UsageIdentifier is a standalone identifier: foo
	UsageIdentifier UsageKind = "Identifier"
	// UsagePropertyAccess is a member access: obj.foo
	UsagePropertyAccess UsageKind = "PropertyAccess"
	// UsageMethodCall is a called member access: obj.foo()
	UsageMethodCall UsageKind = "MethodCall"
	// UsageTypeReference is a type position: let x: Foo
	UsageTypeReference UsageKind = "TypeReference"
	// UsageImport is an occurrence inside an import construct.
	UsageImport UsageKind = "Import"
)

// ContextKind identifies the enclosing construct of a usage.
type ContextKind string

const (
	ContextArrowFunction        ContextKind = "ArrowFunction"
	ContextFunctionDeclaration  ContextKind = "FunctionDeclaration"
	ContextMethodDeclaration    ContextKind = "MethodDeclaration"
	ContextConstructor          ContextKind = "Constructor"
	ContextClassDeclaration     ContextKind = "ClassDeclaration"
	ContextInterfaceDeclaration ContextKind = "InterfaceDeclaration"
	ContextEnumDeclaration      ContextKind = "EnumDeclaration"
	ContextSourceFile           ContextKind = "SourceFile"
)

// UsageContext is one enclosing scope of a usage.
type UsageContext struct {
	Kind      ContextKind `json:"kind"`
	Name      string      `json:"name,omitempty"`
	StartLine int         `json:"start_line"`
	EndLine   int         `json:"end_line"`
}

// SymbolUsage is one occurrence of a symbol. At most one usage exists per
// (file, line, column) in a collection run.
type SymbolUsage struct {
	FilePath string `json:"file_path"`
	Line     int    `json:"line"`   // 1-indexed
	Column   int    `json:"column"` // 0-indexed
	// QualifiedName is "object.symbol" for member access, else the symbol.
	QualifiedName string         `json:"qualified_name"`
	UsageKind     UsageKind      `json:"usage_kind"`
	ObjectName    string         `json:"object_name,omitempty"`
	Contexts      []UsageContext `json:"contexts,omitempty"` // innermost first
}

// CommentType distinguishes comment syntax forms.
type CommentType string

const (
	CommentSingleLine CommentType = "SingleLine"
	CommentBlock      CommentType = "Block"
)

// CommentMatch is a comment region whose text contains a search string.
type CommentMatch struct {
	FilePath    string      `json:"file_path"`
	Line        int         `json:"line"`   // 1-indexed, where the comment starts
	Column      int         `json:"column"` // 0-indexed
	CommentType CommentType `json:"comment_type"`
	Content     string      `json:"content"` // full comment text, possibly multi-line
}

// CodeSnippet is a slice of a file around one location.
type CodeSnippet struct {
	FilePath  string `json:"file_path"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Code      string `json:"code"`
}

// FileStats holds per-file line counts plus a content fingerprint.
type FileStats struct {
	FilePath     string `json:"file_path"`
	Language     string `json:"language"`
	TotalLines   int    `json:"total_lines"`
	CodeLines    int    `json:"code_lines"`
	CommentLines int    `json:"comment_lines"`
	BlankLines   int    `json:"blank_lines"`
	Fingerprint  string `json:"fingerprint"` // xxhash of the file content
}
