package comment

import (
	"strings"

	"github.com/standardbeagle/codescope/internal/types"
)

// SnippetAt slices source around a 1-indexed line, with up to before lines
// of leading and after lines of trailing context. Bounds are clamped to the
// file; the reported range is 1-indexed and inclusive.
func SnippetAt(path, source string, line, before, after int) types.CodeSnippet {
	lines := splitLines(source)
	total := len(lines)

	targetIdx := line - 1
	if targetIdx < 0 {
		targetIdx = 0
	}
	startIdx := targetIdx - before
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := targetIdx + after + 1
	if endIdx > total {
		endIdx = total
	}
	if startIdx > endIdx {
		startIdx = endIdx
	}

	return types.CodeSnippet{
		FilePath:  path,
		StartLine: startIdx + 1,
		EndLine:   endIdx,
		Code:      strings.Join(lines[startIdx:endIdx], "\n"),
	}
}
