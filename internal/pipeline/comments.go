package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/standardbeagle/codescope/internal/comment"
	"github.com/standardbeagle/codescope/internal/parser"
	"github.com/standardbeagle/codescope/internal/types"
)

// CommentCollector finds comments containing a text fragment. It works on
// raw content, so files that fail to parse still yield their comments.
// Markdown files have no comment syntax and are searched as plain text.
type CommentCollector struct {
	Text string
}

func (c *CommentCollector) CollectFile(cp *parser.CachedParser, path string) ([]types.CommentMatch, error) {
	content, err := cp.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isMarkdownPath(path) {
		return comment.FindAllText(path, string(content), c.Text), nil
	}

	lang := cp.Registry().ForPath(path)
	if lang == nil {
		return nil, nil
	}
	scanner := comment.NewScanner(lang.LineCommentPrefix(), lang.HasBlockComments())
	return scanner.Find(path, string(content), c.Text), nil
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
