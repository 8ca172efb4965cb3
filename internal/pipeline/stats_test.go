package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/codescope/internal/types"
)

func TestCountLinesTypeScript(t *testing.T) {
	source := `// header comment
let x = 1;

/*
 * block comment
 */
let y = 2; // trailing comment
/* one-liner */
let z = 3;
`
	total, code, blank, comments := countLines(source, "//", true)
	assert.Equal(t, 9, total)
	assert.Equal(t, 3, code)
	assert.Equal(t, 1, blank)
	assert.Equal(t, 5, comments)
}

func TestCountLinesPython(t *testing.T) {
	source := `# module docstring stand-in
x = 1

# another comment
y = 2
`
	total, code, blank, comments := countLines(source, "#", false)
	assert.Equal(t, 5, total)
	assert.Equal(t, 2, code)
	assert.Equal(t, 1, blank)
	assert.Equal(t, 2, comments)
}

func TestCountLinesBlockSpansLines(t *testing.T) {
	source := `/* opens here
still inside

closes */ code on this line counts as comment
real code
`
	total, code, blank, comments := countLines(source, "//", true)
	assert.Equal(t, 5, total)
	assert.Equal(t, 1, code)
	assert.Equal(t, 1, blank)
	assert.Equal(t, 3, comments)
}

func TestCountLinesJSDocContinuation(t *testing.T) {
	// "*"-prefixed lines count as comments even without block tracking
	// having seen the opener.
	total, code, blank, comments := countLines("* orphan continuation\ncode\n", "//", true)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, code)
	assert.Equal(t, 0, blank)
	assert.Equal(t, 1, comments)
}

func TestCountLinesEmpty(t *testing.T) {
	total, code, blank, comments := countLines("", "//", true)
	assert.Zero(t, total)
	assert.Zero(t, code)
	assert.Zero(t, blank)
	assert.Zero(t, comments)
}

func TestStatsCollector(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		"app.ts":    "// comment\nlet x = 1;\n\nlet y = 2;\n",
		"script.py": "# comment\nx = 1\n",
	})

	stats := Process[types.FileStats](p, StatsCollector{})
	require.Len(t, stats, 2)

	ts := stats[0]
	assert.Equal(t, filepath.Join(root, "app.ts"), ts.FilePath)
	assert.Equal(t, "TypeScript", ts.Language)
	assert.Equal(t, 4, ts.TotalLines)
	assert.Equal(t, 2, ts.CodeLines)
	assert.Equal(t, 1, ts.CommentLines)
	assert.Equal(t, 1, ts.BlankLines)
	assert.Len(t, ts.Fingerprint, 16)

	py := stats[1]
	assert.Equal(t, "Python", py.Language)
	assert.Equal(t, 2, py.TotalLines)

	// Identical content fingerprints identically, different content differs.
	assert.NotEqual(t, ts.Fingerprint, py.Fingerprint)
}
