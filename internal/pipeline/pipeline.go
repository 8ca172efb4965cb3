// Package pipeline discovers the analyzable files of a workspace and runs a
// collector over them in parallel. Collectors turn one parsed file into a
// slice of findings; the pipeline owns discovery, filtering, concurrency and
// per-file error containment.
package pipeline

import (
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/standardbeagle/codescope/internal/config"
	"github.com/standardbeagle/codescope/internal/parser"
)

// Collector turns one file into findings. Implementations must be safe for
// concurrent use; the pipeline calls CollectFile from multiple goroutines.
type Collector[T any] interface {
	CollectFile(cp *parser.CachedParser, path string) ([]T, error)
}

// Pipeline walks a workspace root and fans file processing out to a worker
// pool. A failed file is logged and skipped; it never aborts the run.
type Pipeline struct {
	parser          *parser.CachedParser
	cfg             *config.Config
	root            string
	extraExcludes   []string
	includeMarkdown bool
}

// New creates a pipeline rooted at root.
func New(cp *parser.CachedParser, cfg *config.Config, root string) *Pipeline {
	return &Pipeline{parser: cp, cfg: cfg, root: root}
}

// WithExcludes adds per-request directory exclusions on top of the
// configured ones.
func (p *Pipeline) WithExcludes(dirs []string) *Pipeline {
	p.extraExcludes = dirs
	return p
}

// WithMarkdown also admits Markdown files, which have no registered
// language. Comment search treats them as plain text.
func (p *Pipeline) WithMarkdown() *Pipeline {
	p.includeMarkdown = true
	return p
}

// Files returns the supported, non-excluded files under the root, sorted for
// deterministic output. Hidden directories, workspace exclusions and the root
// .gitignore all apply.
func (p *Pipeline) Files() []string {
	var files []string
	ignore := config.LoadGitignore(p.root)

	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("Warning: cannot access %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(p.root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if path != p.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if rel != "." && p.cfg.ShouldExclude(rel, p.extraExcludes) {
				return filepath.SkipDir
			}
			if rel != "." && ignore.Match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		lang := p.parser.Registry().ForPath(path)
		switch {
		case lang != nil:
			if !p.cfg.LanguageEnabled(lang.Name()) {
				return nil
			}
		case p.includeMarkdown && isMarkdownPath(path):
			// admitted as plain text
		default:
			return nil
		}
		if p.cfg.ShouldExclude(rel, p.extraExcludes) {
			return nil
		}
		if ignore.Match(rel, false) {
			return nil
		}
		if p.cfg.Index.MaxFileSize > 0 {
			if info, infoErr := d.Info(); infoErr == nil && info.Size() > p.cfg.Index.MaxFileSize {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		log.Printf("Warning: walking %s: %v", p.root, err)
	}

	sort.Strings(files)
	return files
}

// Process runs collector over every discovered file using the configured
// worker count and returns the combined findings. Result order follows the
// sorted file order regardless of worker scheduling.
func Process[T any](p *Pipeline, collector Collector[T]) []T {
	files := p.Files()
	if len(files) == 0 {
		return nil
	}

	workers := p.cfg.Index.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	perFile := make([][]T, len(files))
	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				items, err := collector.CollectFile(p.parser, files[idx])
				if err != nil {
					log.Printf("Warning: failed to process %s: %v", files[idx], err)
					continue
				}
				perFile[idx] = items
			}
		}()
	}
	for idx := range files {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	var results []T
	for _, items := range perFile {
		results = append(results, items...)
	}
	return results
}
