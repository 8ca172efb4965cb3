// Package config loads engine settings from a .codescope.kdl file in the
// project root, falling back to defaults when no file exists.
package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Config is the full engine configuration.
type Config struct {
	Project Project
	Index   Index
	Watch   Watch
	Search  Search

	// ExcludeDirs are matched against individual path components.
	ExcludeDirs []string
	// ExcludeGlobs are doublestar patterns matched against the
	// slash-separated path relative to the project root.
	ExcludeGlobs []string
	// Languages restricts analysis to the named languages. Empty means all.
	Languages []string
}

type Project struct {
	Root string
	Name string
}

type Index struct {
	Workers        int
	MaxFileSize    int64
	FollowSymlinks bool
}

type Watch struct {
	Enabled    bool
	DebounceMs int
}

type Search struct {
	MaxResults       int
	ContextBefore    int
	ContextAfter     int
	MaxContexts      int
	FuzzySuggestions bool
}

// Default returns the configuration used when no .codescope.kdl exists.
func Default(root string) *Config {
	return &Config{
		Project: Project{Root: root},
		Index: Index{
			Workers:     runtime.NumCPU(),
			MaxFileSize: 10 * 1024 * 1024,
		},
		Watch: Watch{
			Enabled:    false,
			DebounceMs: 100,
		},
		Search: Search{
			MaxResults:       100,
			ContextBefore:    2,
			ContextAfter:     2,
			MaxContexts:      5,
			FuzzySuggestions: true,
		},
		ExcludeDirs: []string{
			"node_modules",
			"dist",
			"build",
			".next",
			"out",
			"coverage",
			"target",
			"vendor",
		},
	}
}

// ShouldExclude reports whether path (relative or absolute) is excluded by
// the directory list or a glob pattern. extraDirs come from per-request
// exclusions and are matched the same way as configured directories.
func (c *Config) ShouldExclude(path string, extraDirs []string) bool {
	slashed := filepath.ToSlash(path)
	for _, component := range strings.Split(slashed, "/") {
		for _, dir := range c.ExcludeDirs {
			if component == dir {
				return true
			}
		}
		for _, dir := range extraDirs {
			if component == dir {
				return true
			}
		}
	}
	for _, pattern := range c.ExcludeGlobs {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
	}
	return false
}

// LanguageEnabled reports whether the named language passes the Languages
// filter. Matching is case-insensitive.
func (c *Config) LanguageEnabled(name string) bool {
	if len(c.Languages) == 0 {
		return true
	}
	for _, l := range c.Languages {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}
