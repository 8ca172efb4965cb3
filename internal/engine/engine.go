// Package engine is the query facade of codescope. It owns the language
// registry, the caches and the cached parser, and exposes the operations the
// MCP server and the CLI both call.
package engine

import (
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/codescope/internal/cache"
	"github.com/standardbeagle/codescope/internal/comment"
	"github.com/standardbeagle/codescope/internal/config"
	"github.com/standardbeagle/codescope/internal/language"
	"github.com/standardbeagle/codescope/internal/parser"
	"github.com/standardbeagle/codescope/internal/pipeline"
	"github.com/standardbeagle/codescope/internal/types"
)

// Engine answers symbol and comment queries against a workspace.
type Engine struct {
	cfg      *config.Config
	registry *language.Registry
	caches   *cache.Manager
	parser   *parser.CachedParser
}

// New builds an engine for the configured project root. Registry
// construction failure means a broken embedded query and is fatal.
func New(cfg *config.Config) (*Engine, error) {
	registry, err := language.NewRegistry()
	if err != nil {
		return nil, err
	}
	caches := cache.NewManager()
	return &Engine{
		cfg:      cfg,
		registry: registry,
		caches:   caches,
		parser:   parser.NewCachedParser(registry, caches),
	}, nil
}

func (e *Engine) Config() *config.Config      { return e.cfg }
func (e *Engine) Caches() *cache.Manager      { return e.caches }
func (e *Engine) Registry() *language.Registry { return e.registry }

func (e *Engine) newPipeline(excludes []string) *pipeline.Pipeline {
	return pipeline.New(e.parser, e.cfg, e.cfg.Project.Root).WithExcludes(excludes)
}

// FindDefinitions returns all definitions of symbol in the workspace,
// optionally with adjacent documentation.
func (e *Engine) FindDefinitions(symbol string, includeDocs bool, excludes []string) []types.SymbolDefinition {
	collector := &pipeline.DefinitionCollector{Symbol: symbol, IncludeDocs: includeDocs}
	return pipeline.Process(e.newPipeline(excludes), collector)
}

// SuggestSymbols returns up to three defined symbol names similar to the
// given one, for did-you-mean output on empty definition results.
func (e *Engine) SuggestSymbols(symbol string, excludes []string) []string {
	if !e.cfg.Search.FuzzySuggestions || symbol == "" {
		return nil
	}
	names := pipeline.Process(e.newPipeline(excludes), pipeline.SymbolNameCollector{})
	if len(names) == 0 {
		return nil
	}

	unique := make(map[string]bool, len(names))
	candidates := names[:0]
	for _, name := range names {
		if name != symbol && !unique[name] {
			unique[name] = true
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)

	suggestions, err := edlib.FuzzySearchSetThreshold(symbol, candidates, 3, 0.7, edlib.Levenshtein)
	if err != nil {
		return nil
	}
	out := suggestions[:0]
	for _, s := range suggestions {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FindUsages returns the classified occurrences of symbol.
func (e *Engine) FindUsages(symbol string, includeImports bool, maxContexts int, objectFilter string, excludes []string) []types.SymbolUsage {
	collector := &pipeline.UsageCollector{
		Symbol:         symbol,
		IncludeImports: includeImports,
		MaxContexts:    maxContexts,
		ObjectFilter:   objectFilter,
	}
	return pipeline.Process(e.newPipeline(excludes), collector)
}

// FindMethodCalls returns the call-position usages of method, optionally
// restricted to one receiver object.
func (e *Engine) FindMethodCalls(method, object string, excludes []string) []types.SymbolUsage {
	collector := &pipeline.MethodCallCollector{MethodName: method, ObjectName: object}
	return pipeline.Process(e.newPipeline(excludes), collector)
}

// FindImports returns the import-position occurrences of symbol.
func (e *Engine) FindImports(symbol string, excludes []string) []types.SymbolUsage {
	collector := &pipeline.ImportCollector{Symbol: symbol}
	return pipeline.Process(e.newPipeline(excludes), collector)
}

// SearchComments returns all comments containing text, including full-text
// matches in Markdown files.
func (e *Engine) SearchComments(text string, excludes []string) []types.CommentMatch {
	collector := &pipeline.CommentCollector{Text: text}
	return pipeline.Process(e.newPipeline(excludes).WithMarkdown(), collector)
}

// FileStats returns per-file line counts and fingerprints.
func (e *Engine) FileStats(excludes []string) []types.FileStats {
	return pipeline.Process(e.newPipeline(excludes), pipeline.StatsCollector{})
}

// GetCode returns the source around a 1-indexed line with context, reading
// through the content cache.
func (e *Engine) GetCode(path string, line, before, after int) (types.CodeSnippet, error) {
	content, err := e.parser.ReadFile(path)
	if err != nil {
		return types.CodeSnippet{}, err
	}
	return comment.SnippetAt(path, string(content), line, before, after), nil
}

// InvalidateFile drops both cache entries for path.
func (e *Engine) InvalidateFile(path string) {
	e.caches.InvalidateFile(path)
}

// ClearCache drops every cached content buffer and parse tree.
func (e *Engine) ClearCache() {
	e.caches.Clear()
}
