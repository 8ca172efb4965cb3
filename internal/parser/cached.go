package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/cache"
	"github.com/standardbeagle/codescope/internal/cserr"
	"github.com/standardbeagle/codescope/internal/language"
)

// ParseResult bundles everything a query needs about one parsed file. The
// caller owns Tree and must Close it; Content is a shared cache buffer and
// must be treated as read-only.
type ParseResult struct {
	Content  []byte
	Tree     *tree_sitter.Tree
	Language *language.Language
}

// CachedParser resolves languages by file extension and parses through the
// content and parse caches. Safe for concurrent use; each call that misses
// the tree cache builds its own short-lived parser.
type CachedParser struct {
	registry *language.Registry
	caches   *cache.Manager
}

// NewCachedParser creates a cached parser over the given registry and caches.
func NewCachedParser(registry *language.Registry, caches *cache.Manager) *CachedParser {
	return &CachedParser{registry: registry, caches: caches}
}

// Registry exposes the language registry for extension checks.
func (p *CachedParser) Registry() *language.Registry {
	return p.registry
}

// ReadFile reads path through the content cache without parsing. The
// returned buffer is shared and must be treated as read-only.
func (p *CachedParser) ReadFile(path string) ([]byte, error) {
	content, _, err := p.caches.Content.GetOrRead(path)
	return content, err
}

// ParseFile reads path through the content cache and returns its syntax
// tree, reusing the cached tree when the modification time still matches.
//
// The modification time handed to the parse cache is the one captured by the
// content read, so content and tree can never disagree about which version
// of the file they describe.
func (p *CachedParser) ParseFile(path string) (*ParseResult, error) {
	lang := p.registry.ForPath(path)
	if lang == nil {
		return nil, &cserr.UnsupportedFileTypeError{
			Path:       path,
			Extensions: p.registry.SupportedExtensions(),
		}
	}

	content, modified, err := p.caches.Content.GetOrRead(path)
	if err != nil {
		return nil, err
	}

	if tree := p.caches.Parse.Get(path, modified); tree != nil {
		return newParseResult(content, tree, lang), nil
	}

	gp := NewGenericParser()
	defer gp.Close()
	tree, err := gp.Parse(path, lang, content)
	if err != nil {
		return nil, err
	}

	// The cache takes ownership of the parsed tree; the caller gets an
	// independent clone so eviction can never close a tree in use.
	clone := tree.Clone()
	p.caches.Parse.Insert(path, tree, modified)
	return newParseResult(content, clone, lang), nil
}

func newParseResult(content []byte, tree *tree_sitter.Tree, lang *language.Language) *ParseResult {
	return &ParseResult{
		Content:  content,
		Tree:     tree,
		Language: lang,
	}
}

// Close releases the tree held by the result. Safe to call on a nil result.
func (r *ParseResult) Close() {
	if r != nil && r.Tree != nil {
		r.Tree.Close()
		r.Tree = nil
	}
}
