package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Gitignore holds the patterns of a workspace's root .gitignore. Matching
// follows gitignore conventions closely enough for workspace walking:
// negation, directory-only patterns, anchored patterns and glob syntax.
// Nested .gitignore files are not consulted.
type Gitignore struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	pattern  string
	negate   bool
	dirOnly  bool
	anchored bool
}

// LoadGitignore reads the .gitignore in root. A missing or unreadable file
// yields an empty matcher.
func LoadGitignore(root string) *Gitignore {
	g := &Gitignore{}

	file, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return g
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := ignorePattern{}
		if strings.HasPrefix(line, "!") {
			p.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			p.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			p.anchored = true
			line = strings.TrimPrefix(line, "/")
		} else if strings.Contains(line, "/") {
			// A slash anywhere anchors the pattern to the root.
			p.anchored = true
		}
		p.pattern = line
		g.patterns = append(g.patterns, p)
	}

	return g
}

// Match reports whether the slash-separated path relative to the workspace
// root is ignored. The last matching pattern wins, so a later negation can
// re-include an earlier match.
func (g *Gitignore) Match(rel string, isDir bool) bool {
	rel = filepath.ToSlash(rel)

	ignored := false
	for _, p := range g.patterns {
		if p.dirOnly && !isDir && !g.underDir(p, rel) {
			continue
		}
		if g.matches(p, rel) {
			ignored = !p.negate
		}
	}
	return ignored
}

func (g *Gitignore) matches(p ignorePattern, rel string) bool {
	pattern := p.pattern
	if !p.anchored {
		pattern = "**/" + pattern
	}
	if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
		return true
	}
	// A matched directory covers everything beneath it.
	if ok, err := doublestar.Match(pattern+"/**", rel); err == nil && ok {
		return true
	}
	return false
}

// underDir reports whether rel sits beneath a directory matched by a
// directory-only pattern.
func (g *Gitignore) underDir(p ignorePattern, rel string) bool {
	pattern := p.pattern
	if !p.anchored {
		pattern = "**/" + pattern
	}
	ok, err := doublestar.Match(pattern+"/**", rel)
	return err == nil && ok
}
