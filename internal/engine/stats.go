package engine

import (
	"math"
	"sort"

	"github.com/standardbeagle/codescope/internal/types"
)

// LanguageStats aggregates line counts for one language.
type LanguageStats struct {
	Language   string  `json:"language"`
	FileCount  int     `json:"file_count"`
	TotalLines int     `json:"total_lines"`
	CodeLines  int     `json:"code_lines"`
	Percentage float64 `json:"percentage"` // share of workspace code lines
}

// StatsSummary is the workspace-level rollup of per-file statistics.
type StatsSummary struct {
	TotalFiles   int             `json:"total_files"`
	TotalLines   int             `json:"total_lines"`
	CodeLines    int             `json:"code_lines"`
	CommentLines int             `json:"comment_lines"`
	BlankLines   int             `json:"blank_lines"`
	Languages    int             `json:"languages"`
	ByLanguage   []LanguageStats `json:"by_language"`
}

// Summarize aggregates per-file stats into a workspace summary. Languages
// are sorted by code lines, descending.
func Summarize(stats []types.FileStats) StatsSummary {
	summary := StatsSummary{}
	byLanguage := make(map[string]*LanguageStats)

	for _, s := range stats {
		summary.TotalFiles++
		summary.TotalLines += s.TotalLines
		summary.CodeLines += s.CodeLines
		summary.CommentLines += s.CommentLines
		summary.BlankLines += s.BlankLines

		entry := byLanguage[s.Language]
		if entry == nil {
			entry = &LanguageStats{Language: s.Language}
			byLanguage[s.Language] = entry
		}
		entry.FileCount++
		entry.TotalLines += s.TotalLines
		entry.CodeLines += s.CodeLines
	}

	for _, entry := range byLanguage {
		if summary.CodeLines > 0 {
			pct := float64(entry.CodeLines) / float64(summary.CodeLines) * 100
			entry.Percentage = math.Round(pct*10) / 10
		}
		summary.ByLanguage = append(summary.ByLanguage, *entry)
	}
	sort.Slice(summary.ByLanguage, func(i, j int) bool {
		a, b := summary.ByLanguage[i], summary.ByLanguage[j]
		if a.CodeLines != b.CodeLines {
			return a.CodeLines > b.CodeLines
		}
		return a.Language < b.Language
	})
	summary.Languages = len(summary.ByLanguage)

	return summary
}
