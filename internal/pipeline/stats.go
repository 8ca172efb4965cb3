package pipeline

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/codescope/internal/parser"
	"github.com/standardbeagle/codescope/internal/types"
)

// StatsCollector counts lines per file and fingerprints the content. No
// parse is needed; classification is the same two-state scan the comment
// search uses.
type StatsCollector struct{}

func (StatsCollector) CollectFile(cp *parser.CachedParser, path string) ([]types.FileStats, error) {
	content, err := cp.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lang := cp.Registry().ForPath(path)
	if lang == nil {
		return nil, nil
	}

	total, code, blank, comments := countLines(string(content), lang.LineCommentPrefix(), lang.HasBlockComments())

	return []types.FileStats{{
		FilePath:     path,
		Language:     lang.Name(),
		TotalLines:   total,
		CodeLines:    code,
		CommentLines: comments,
		BlankLines:   blank,
		Fingerprint:  fmt.Sprintf("%016x", xxhash.Sum64(content)),
	}}, nil
}

// countLines classifies each line as blank, comment or code. A line holding
// both code and a trailing comment counts as code.
func countLines(source, linePrefix string, blockComments bool) (total, code, blank, comments int) {
	if source == "" {
		return 0, 0, 0, 0
	}
	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	inBlock := false
	for _, line := range lines {
		total++
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			blank++
		case inBlock:
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
			comments++
		case blockComments && strings.HasPrefix(trimmed, "/*"):
			if !strings.Contains(trimmed, "*/") || strings.HasSuffix(trimmed, "/*") {
				inBlock = true
			}
			comments++
		case linePrefix != "" && strings.HasPrefix(trimmed, linePrefix):
			comments++
		case blockComments && strings.HasPrefix(trimmed, "*") && !strings.HasPrefix(trimmed, "*/"):
			// Interior of a JSDoc-style block that opened with code after it.
			comments++
		default:
			code++
		}
	}
	return total, code, blank, comments
}
