// Package parser wraps the tree-sitter parser behind the engine's two entry
// points: a per-task GenericParser that switches grammars on demand, and a
// CachedParser that layers the mtime-keyed caches on top for repeated
// queries against the same files.
package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/cserr"
	"github.com/standardbeagle/codescope/internal/language"
)

// GenericParser parses source in any registered language, reconfiguring the
// underlying tree-sitter parser only when the language actually changes.
//
// Not safe for concurrent use. Each pipeline task builds its own.
type GenericParser struct {
	parser  *tree_sitter.Parser
	current language.ID
}

// NewGenericParser creates a parser with no language configured.
func NewGenericParser() *GenericParser {
	return &GenericParser{parser: tree_sitter.NewParser()}
}

// Parse parses content as lang and returns a tree the caller owns and must
// Close. The path is only used for error reporting.
func (p *GenericParser) Parse(path string, lang *language.Language, content []byte) (*tree_sitter.Tree, error) {
	if p.current != lang.ID() {
		if err := p.parser.SetLanguage(lang.Grammar()); err != nil {
			return nil, &cserr.ParseError{Path: path, Language: lang.Name()}
		}
		p.current = lang.ID()
	}

	tree := p.parser.Parse(content, nil)
	if tree == nil {
		return nil, &cserr.ParseError{Path: path, Language: lang.Name()}
	}
	return tree, nil
}

// Close releases the underlying parser. The GenericParser must not be used
// afterwards.
func (p *GenericParser) Close() {
	p.parser.Close()
}
