package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default("/tmp/project")

	assert.Equal(t, "/tmp/project", cfg.Project.Root)
	assert.Greater(t, cfg.Index.Workers, 0)
	assert.Equal(t, int64(10*1024*1024), cfg.Index.MaxFileSize)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 100, cfg.Watch.DebounceMs)
	assert.Equal(t, 100, cfg.Search.MaxResults)
	assert.Equal(t, 2, cfg.Search.ContextBefore)
	assert.Equal(t, 2, cfg.Search.ContextAfter)
	assert.Equal(t, 5, cfg.Search.MaxContexts)
	assert.True(t, cfg.Search.FuzzySuggestions)
	assert.Contains(t, cfg.ExcludeDirs, "node_modules")
	assert.Contains(t, cfg.ExcludeDirs, "target")
	assert.Empty(t, cfg.Languages)
}

func TestShouldExcludeDirs(t *testing.T) {
	cfg := Default("/tmp/project")

	assert.True(t, cfg.ShouldExclude("node_modules/react/index.js", nil))
	assert.True(t, cfg.ShouldExclude("src/vendor/lib.go", nil))
	assert.False(t, cfg.ShouldExclude("src/app.ts", nil))

	// Component equality, not substring.
	assert.False(t, cfg.ShouldExclude("src/distance.ts", nil))

	assert.True(t, cfg.ShouldExclude("src/generated/api.ts", []string{"generated"}))
	assert.False(t, cfg.ShouldExclude("src/generated/api.ts", nil))
}

func TestShouldExcludeGlobs(t *testing.T) {
	cfg := Default("/tmp/project")
	cfg.ExcludeGlobs = []string{"**/*.min.js", "legacy/**"}

	assert.True(t, cfg.ShouldExclude("dist2/app.min.js", nil))
	assert.True(t, cfg.ShouldExclude("legacy/old/app.ts", nil))
	assert.False(t, cfg.ShouldExclude("src/app.js", nil))
}

func TestLanguageEnabled(t *testing.T) {
	cfg := Default("/tmp/project")
	assert.True(t, cfg.LanguageEnabled("typescript"))

	cfg.Languages = []string{"TypeScript", "go"}
	assert.True(t, cfg.LanguageEnabled("typescript"))
	assert.True(t, cfg.LanguageEnabled("Go"))
	assert.False(t, cfg.LanguageEnabled("rust"))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Project.Root)
	assert.Contains(t, cfg.ExcludeDirs, "node_modules")
}

func TestLoadKDL(t *testing.T) {
	dir := t.TempDir()
	content := `
project {
    name "demo"
}
index {
    workers 4
    max_file_size 1048576
}
watch {
    enabled true
    debounce_ms 250
}
search {
    max_results 50
    context_before 1
    context_after 3
    max_contexts 2
    fuzzy_suggestions false
}
exclude "dist" "generated"
exclude_globs "**/*.min.js"
languages "typescript" "go"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Project.Name)
	assert.Equal(t, dir, cfg.Project.Root)
	assert.Equal(t, 4, cfg.Index.Workers)
	assert.Equal(t, int64(1048576), cfg.Index.MaxFileSize)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 250, cfg.Watch.DebounceMs)
	assert.Equal(t, 50, cfg.Search.MaxResults)
	assert.Equal(t, 1, cfg.Search.ContextBefore)
	assert.Equal(t, 3, cfg.Search.ContextAfter)
	assert.Equal(t, 2, cfg.Search.MaxContexts)
	assert.False(t, cfg.Search.FuzzySuggestions)

	// The exclude block replaces the defaults.
	assert.Equal(t, []string{"dist", "generated"}, cfg.ExcludeDirs)
	assert.Equal(t, []string{"**/*.min.js"}, cfg.ExcludeGlobs)
	assert.Equal(t, []string{"typescript", "go"}, cfg.Languages)
}

func TestLoadInvalidKDL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`watch { enabled`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
