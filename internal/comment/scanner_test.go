package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/codescope/internal/types"
)

func TestFindLineComments(t *testing.T) {
	source := `let x = 1; // TODO: rename
let y = 2;
// TODO: delete y
let z = 3; // nothing here
`
	s := NewScanner("//", true)
	matches := s.Find("test.ts", source, "TODO")

	require.Len(t, matches, 2)

	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 11, matches[0].Column)
	assert.Equal(t, types.CommentSingleLine, matches[0].CommentType)
	assert.Equal(t, "// TODO: rename", matches[0].Content)

	assert.Equal(t, 3, matches[1].Line)
	assert.Equal(t, 0, matches[1].Column)
	assert.Equal(t, "// TODO: delete y", matches[1].Content)
}

func TestFindBlockCommentSingleLine(t *testing.T) {
	source := "let x = 1; /* TODO: inline */ let y = 2;\n"
	s := NewScanner("//", true)
	matches := s.Find("test.ts", source, "TODO")

	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 11, matches[0].Column)
	assert.Equal(t, types.CommentBlock, matches[0].CommentType)
	assert.Equal(t, "/* TODO: inline */", matches[0].Content)
}

func TestFindMultiLineBlockComment(t *testing.T) {
	source := `function f() {}
/*
 * TODO: handle errors
 * and log them
 */
function g() {}
`
	s := NewScanner("//", true)
	matches := s.Find("test.ts", source, "TODO")

	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, 0, matches[0].Column)
	assert.Equal(t, types.CommentBlock, matches[0].CommentType)
	assert.Contains(t, matches[0].Content, "TODO: handle errors")
	assert.Contains(t, matches[0].Content, "and log them")
}

func TestFindTwoBlockCommentsOnOneLine(t *testing.T) {
	source := "/* TODO first */ let x = 1; /* TODO second */\n"
	s := NewScanner("//", true)
	matches := s.Find("test.ts", source, "TODO")

	require.Len(t, matches, 2)
	assert.Equal(t, "/* TODO first */", matches[0].Content)
	assert.Equal(t, "/* TODO second */", matches[1].Content)
	assert.Equal(t, 28, matches[1].Column)
}

func TestFindLineCommentHidesBlockStart(t *testing.T) {
	source := "let x = 1; // see /* not a block\n"
	s := NewScanner("//", true)
	matches := s.Find("test.ts", source, "block")

	require.Len(t, matches, 1)
	assert.Equal(t, types.CommentSingleLine, matches[0].CommentType)
}

func TestFindUnterminatedBlockComment(t *testing.T) {
	source := `let x = 1;
/* TODO: never closed
more text`
	s := NewScanner("//", true)
	matches := s.Find("test.ts", source, "TODO")

	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, types.CommentBlock, matches[0].CommentType)
	assert.Contains(t, matches[0].Content, "more text")
}

func TestFindCommentAfterBlockEnd(t *testing.T) {
	source := `/*
block
*/ // TODO: trailing
`
	s := NewScanner("//", true)
	matches := s.Find("test.ts", source, "TODO")

	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Line)
	assert.Equal(t, types.CommentSingleLine, matches[0].CommentType)
	assert.Equal(t, "// TODO: trailing", matches[0].Content)
}

func TestFindSQLComments(t *testing.T) {
	source := `CREATE TABLE users (id INT); -- TODO: add email column
/* TODO: migrate legacy rows */
SELECT 1;
`
	s := NewScanner("--", true)
	matches := s.Find("schema.sql", source, "TODO")

	require.Len(t, matches, 2)
	assert.Equal(t, types.CommentSingleLine, matches[0].CommentType)
	assert.Equal(t, "-- TODO: add email column", matches[0].Content)
	assert.Equal(t, types.CommentBlock, matches[1].CommentType)
}

func TestFindPythonNoBlockComments(t *testing.T) {
	// "#" languages must not treat /* as a comment start.
	source := `x = "/* TODO not a comment */"
# TODO real comment
`
	s := NewScanner("#", false)
	matches := s.Find("test.py", source, "TODO")

	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, "# TODO real comment", matches[0].Content)
}

func TestFindNoMatches(t *testing.T) {
	s := NewScanner("//", true)
	assert.Empty(t, s.Find("test.ts", "// nothing relevant\n", "TODO"))
	assert.Empty(t, s.Find("test.ts", "", "TODO"))
}

func TestFindAllTextMarkdown(t *testing.T) {
	source := `# Notes
TODO: write docs, TODO: review
done
`
	matches := FindAllText("notes.md", source, "TODO")

	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, 0, matches[0].Column)
	assert.Equal(t, "TODO: write docs, TODO: review", matches[0].Content)
	assert.Equal(t, 18, matches[1].Column)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", ""}, splitLines("a\n\n"))
}
