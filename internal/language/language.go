// Package language holds the closed set of supported languages. Each
// language bundles a tree-sitter grammar, two precompiled pattern queries
// (definitions and usages), and an ordered capture-to-kind mapping table.
//
// The set is fixed and known at compile time, so languages are plain structs
// built by constructor functions rather than an open plugin interface.
// Query compilation failure is a programming error and fatal at registry
// construction; it is never a per-request condition.
package language

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/types"
)

// ID uniquely identifies a supported language.
type ID string

const (
	TypeScript      ID = "TypeScript"
	TypeScriptReact ID = "TypeScriptReact"
	JavaScript      ID = "JavaScript"
	JavaScriptReact ID = "JavaScriptReact"
	Python          ID = "Python"
	Go              ID = "Go"
	Rust            ID = "Rust"
	Java            ID = "Java"
	CSharp          ID = "CSharp"
	Cpp             ID = "Cpp"
	PHP             ID = "PHP"
	Zig             ID = "Zig"
	SQL             ID = "SQL"
)

// KindMapping maps a definitions-query capture name to a symbol kind.
// Mapping order matters: the first capture of a match that appears in the
// table decides the definition node and kind.
type KindMapping struct {
	Capture string
	Kind    types.SymbolKind
}

// Language is the capability bundle for one supported language. Immutable
// after construction and freely shared across tasks.
type Language struct {
	id          ID
	name        string
	extensions  []string
	grammar     *tree_sitter.Language
	definitions *tree_sitter.Query
	usages      *tree_sitter.Query
	mappings    []KindMapping

	// separateDocs marks languages whose documentation is attached via
	// dedicated statements (SQL COMMENT ON) instead of adjacent comments.
	separateDocs bool

	lineComment   string // single-line comment prefix, "" if none
	blockComments bool   // whether /* */ block comments exist
}

func (l *Language) ID() ID                             { return l.id }
func (l *Language) Name() string                       { return l.name }
func (l *Language) Extensions() []string               { return l.extensions }
func (l *Language) Grammar() *tree_sitter.Language     { return l.grammar }
func (l *Language) Definitions() *tree_sitter.Query    { return l.definitions }
func (l *Language) Usages() *tree_sitter.Query         { return l.usages }
func (l *Language) DefinitionMappings() []KindMapping  { return l.mappings }
func (l *Language) UsesSeparateDocs() bool             { return l.separateDocs }
func (l *Language) LineCommentPrefix() string          { return l.lineComment }
func (l *Language) HasBlockComments() bool             { return l.blockComments }

// compileQueries builds the two queries for a language, failing fast on any
// syntax error in the embedded query text.
func compileQueries(l *Language, definitionsSrc, usagesSrc string) error {
	var err error
	if l.definitions, err = compileQuery(l.grammar, definitionsSrc); err != nil {
		return fmt.Errorf("%s definitions query: %w", l.name, err)
	}
	if l.usages, err = compileQuery(l.grammar, usagesSrc); err != nil {
		return fmt.Errorf("%s usages query: %w", l.name, err)
	}
	return nil
}

func compileQuery(grammar *tree_sitter.Language, src string) (*tree_sitter.Query, error) {
	query, queryErr := tree_sitter.NewQuery(grammar, src)
	// The binding can return a typed-nil error, so check the query itself.
	if query == nil {
		if queryErr != nil {
			return nil, fmt.Errorf("invalid query syntax: %s", queryErr.Message)
		}
		return nil, fmt.Errorf("invalid query")
	}
	return query, nil
}

// Registry maps file extensions to languages. Immutable after construction.
type Registry struct {
	languages  map[ID]*Language
	extensions map[string]*Language
}

// NewRegistry builds the registry with every supported language. An error
// here means an embedded query or grammar is broken and the engine must not
// start.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		languages:  make(map[ID]*Language),
		extensions: make(map[string]*Language),
	}

	constructors := []func() (*Language, error){
		newTypeScript,
		newTypeScriptReact,
		newJavaScript,
		newJavaScriptReact,
		newPython,
		newGo,
		newRust,
		newJava,
		newCSharp,
		newCpp,
		newPHP,
		newZig,
		newSQL,
	}
	for _, construct := range constructors {
		lang, err := construct()
		if err != nil {
			return nil, err
		}
		r.register(lang)
	}
	return r, nil
}

func (r *Registry) register(lang *Language) {
	r.languages[lang.id] = lang
	for _, ext := range lang.extensions {
		r.extensions[ext] = lang
	}
}

// Get returns the language with the given ID, or nil.
func (r *Registry) Get(id ID) *Language {
	return r.languages[id]
}

// ByExtension returns the language for an extension without the leading
// dot ("ts", "go"), or nil.
func (r *Registry) ByExtension(ext string) *Language {
	return r.extensions[ext]
}

// ForPath returns the language responsible for path, or nil when the
// extension is not recognized.
func (r *Registry) ForPath(path string) *Language {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil
	}
	return r.extensions[ext]
}

// IsSupported reports whether any language handles path.
func (r *Registry) IsSupported(path string) bool {
	return r.ForPath(path) != nil
}

// SupportedExtensions returns all recognized extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.extensions))
	for ext := range r.extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IDs returns the registered language IDs, sorted by name.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.languages))
	for id := range r.languages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
