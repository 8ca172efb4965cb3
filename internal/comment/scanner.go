// Package comment scans raw source text for comments without involving a
// parser. A line-oriented two-state scanner (outside or inside a block
// comment) is enough here and keeps comment search independent of grammar
// availability and parse health.
//
// Known simplification: comment markers inside string literals are treated
// as real comment starts. Accepted for the same reason the scanner exists
// at all: comment search must not require a full parse.
package comment

import (
	"strings"

	"github.com/standardbeagle/codescope/internal/types"
)

// Scanner finds comments containing a search string. The line comment
// prefix is per language ("//", "--", "#"); block comments are always the
// /* */ form when the language has them.
type Scanner struct {
	linePrefix string
	blocks     bool
}

// NewScanner creates a scanner for a language's comment syntax. An empty
// prefix disables line comment detection.
func NewScanner(linePrefix string, blockComments bool) *Scanner {
	return &Scanner{linePrefix: linePrefix, blocks: blockComments}
}

// Find returns every comment in source whose text contains searchText.
// Multi-line block comments are reported once, at the line and column where
// they open, with their full text. Runs in a single pass over the source.
func (s *Scanner) Find(path, source, searchText string) []types.CommentMatch {
	var matches []types.CommentMatch

	inBlock := false
	blockStartLine := 0
	blockStartCol := 0
	var blockContent strings.Builder

	for lineIdx, line := range splitLines(source) {
		lineNum := lineIdx + 1

		if inBlock {
			end := strings.Index(line, "*/")
			if end < 0 {
				blockContent.WriteString(line)
				blockContent.WriteByte('\n')
				continue
			}

			blockContent.WriteString(line[:end+2])
			inBlock = false
			if content := blockContent.String(); strings.Contains(content, searchText) {
				matches = append(matches, types.CommentMatch{
					FilePath:    path,
					Line:        blockStartLine,
					Column:      blockStartCol,
					CommentType: types.CommentBlock,
					Content:     content,
				})
			}
			blockContent.Reset()

			// The rest of the line may open another comment.
			remaining := line[end+2:]
			if next := strings.Index(remaining, "/*"); next >= 0 {
				inBlock = true
				blockStartLine = lineNum
				blockStartCol = end + 2 + next
				blockContent.WriteString(remaining[next:])
				blockContent.WriteByte('\n')
			} else if single := s.lineCommentIndex(remaining); single >= 0 {
				if content := remaining[single:]; strings.Contains(content, searchText) {
					matches = append(matches, types.CommentMatch{
						FilePath:    path,
						Line:        lineNum,
						Column:      end + 2 + single,
						CommentType: types.CommentSingleLine,
						Content:     content,
					})
				}
			}
			continue
		}

		pos := 0
		for pos < len(line) {
			remaining := line[pos:]

			blockStart := -1
			if s.blocks {
				blockStart = strings.Index(remaining, "/*")
			}
			if blockStart < 0 {
				if single := s.lineCommentIndex(remaining); single >= 0 {
					if content := remaining[single:]; strings.Contains(content, searchText) {
						matches = append(matches, types.CommentMatch{
							FilePath:    path,
							Line:        lineNum,
							Column:      pos + single,
							CommentType: types.CommentSingleLine,
							Content:     content,
						})
					}
				}
				break
			}

			// A line comment before the block start hides it.
			if single := s.lineCommentIndex(remaining); single >= 0 && single < blockStart {
				if content := remaining[single:]; strings.Contains(content, searchText) {
					matches = append(matches, types.CommentMatch{
						FilePath:    path,
						Line:        lineNum,
						Column:      pos + single,
						CommentType: types.CommentSingleLine,
						Content:     content,
					})
				}
				break
			}

			afterStart := remaining[blockStart+2:]
			endOffset := strings.Index(afterStart, "*/")
			if endOffset < 0 {
				// Block comment runs past this line.
				inBlock = true
				blockStartLine = lineNum
				blockStartCol = pos + blockStart
				blockContent.WriteString(remaining[blockStart:])
				blockContent.WriteByte('\n')
				break
			}

			if content := remaining[blockStart : blockStart+2+endOffset+2]; strings.Contains(content, searchText) {
				matches = append(matches, types.CommentMatch{
					FilePath:    path,
					Line:        lineNum,
					Column:      pos + blockStart,
					CommentType: types.CommentBlock,
					Content:     content,
				})
			}
			pos += blockStart + 2 + endOffset + 2
		}
	}

	// Unterminated block comment at EOF still counts.
	if inBlock {
		if content := blockContent.String(); strings.Contains(content, searchText) {
			matches = append(matches, types.CommentMatch{
				FilePath:    path,
				Line:        blockStartLine,
				Column:      blockStartCol,
				CommentType: types.CommentBlock,
				Content:     content,
			})
		}
	}

	return matches
}

func (s *Scanner) lineCommentIndex(text string) int {
	if s.linePrefix == "" {
		return -1
	}
	return strings.Index(text, s.linePrefix)
}

// FindAllText is the Markdown fallback: no comment syntax exists, so every
// occurrence of searchText counts, reported per occurrence with the whole
// line as content.
func FindAllText(path, source, searchText string) []types.CommentMatch {
	var matches []types.CommentMatch
	if searchText == "" {
		return matches
	}

	for lineIdx, line := range splitLines(source) {
		start := 0
		for {
			pos := strings.Index(line[start:], searchText)
			if pos < 0 {
				break
			}
			column := start + pos
			matches = append(matches, types.CommentMatch{
				FilePath:    path,
				Line:        lineIdx + 1,
				Column:      column,
				CommentType: types.CommentBlock,
				Content:     line,
			})
			start = column + len(searchText)
		}
	}
	return matches
}

// splitLines splits source the way per-line scanning wants it: no trailing
// empty line for a trailing newline, and no carriage returns.
func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
