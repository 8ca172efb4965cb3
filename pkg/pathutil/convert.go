// Package pathutil converts between absolute and relative paths.
//
// The engine uses absolute paths internally to avoid ambiguity, but
// user-facing output reads better with paths relative to the project root.
// This package is the conversion layer applied at output boundaries.
package pathutil

import (
	"path/filepath"
	"strings"

	"github.com/standardbeagle/codescope/internal/types"
)

// ToRelative converts an absolute path to relative based on a root directory.
// Falls back to the original path if conversion fails or path is already relative.
//
// Examples:
//   - ToRelative("/home/user/project/src/main.go", "/home/user/project") → "src/main.go"
//   - ToRelative("/other/location/file.go", "/home/user/project") → "/other/location/file.go" (outside root)
//   - ToRelative("src/main.go", "/home/user/project") → "src/main.go" (already relative)
func ToRelative(absPath, rootDir string) string {
	if absPath == "" || rootDir == "" {
		return absPath
	}
	if !filepath.IsAbs(absPath) {
		return absPath
	}

	absPath = filepath.Clean(absPath)
	rootDir = filepath.Clean(rootDir)

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		// Conversion failed (e.g. different drives on Windows)
		return absPath
	}

	// A ".." prefix means the file sits outside the root; the absolute
	// path is clearer in that case.
	if strings.HasPrefix(relPath, "..") {
		return absPath
	}

	return relPath
}

// ToRelativeDefinitions converts paths in a definition slice from absolute to
// relative. Creates a new slice without modifying the original results.
func ToRelativeDefinitions(defs []types.SymbolDefinition, rootDir string) []types.SymbolDefinition {
	if len(defs) == 0 {
		return defs
	}
	converted := make([]types.SymbolDefinition, len(defs))
	copy(converted, defs)
	for i := range converted {
		converted[i].FilePath = ToRelative(converted[i].FilePath, rootDir)
	}
	return converted
}

// ToRelativeUsages converts paths in a usage slice from absolute to relative.
// Creates a new slice without modifying the original results.
func ToRelativeUsages(usages []types.SymbolUsage, rootDir string) []types.SymbolUsage {
	if len(usages) == 0 {
		return usages
	}
	converted := make([]types.SymbolUsage, len(usages))
	copy(converted, usages)
	for i := range converted {
		converted[i].FilePath = ToRelative(converted[i].FilePath, rootDir)
	}
	return converted
}

// ToRelativeComments converts paths in a comment-match slice from absolute to
// relative. Creates a new slice without modifying the original results.
func ToRelativeComments(matches []types.CommentMatch, rootDir string) []types.CommentMatch {
	if len(matches) == 0 {
		return matches
	}
	converted := make([]types.CommentMatch, len(matches))
	copy(converted, matches)
	for i := range converted {
		converted[i].FilePath = ToRelative(converted[i].FilePath, rootDir)
	}
	return converted
}

// ToRelativeStats converts paths in a file-stats slice from absolute to
// relative. Creates a new slice without modifying the original results.
func ToRelativeStats(stats []types.FileStats, rootDir string) []types.FileStats {
	if len(stats) == 0 {
		return stats
	}
	converted := make([]types.FileStats, len(stats))
	copy(converted, stats)
	for i := range converted {
		converted[i].FilePath = ToRelative(converted[i].FilePath, rootDir)
	}
	return converted
}

// ToRelativeSnippet converts the path of a code snippet from absolute to relative.
func ToRelativeSnippet(snippet types.CodeSnippet, rootDir string) types.CodeSnippet {
	snippet.FilePath = ToRelative(snippet.FilePath, rootDir)
	return snippet
}
