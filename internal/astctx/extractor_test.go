package astctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/codescope/internal/language"
	"github.com/standardbeagle/codescope/internal/types"
)

const fixture = `class Reporter {
  constructor() {
    target;
  }

  render() {
    const helper = () => {
      target;
    };
  }
}

target;
`

// usageNodes finds every identifier occurrence of name, in tree order.
func usageNodes(t *testing.T, lang *language.Language, tree *tree_sitter.Tree, content []byte, name string) []tree_sitter.Node {
	t.Helper()
	query := lang.Usages()
	captureNames := query.CaptureNames()

	var nodes []tree_sitter.Node
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(query, tree.RootNode(), content)
	for m := matches.Next(); m != nil; m = matches.Next() {
		for i := range m.Captures {
			capture := &m.Captures[i]
			if captureNames[capture.Index] != "usage" {
				continue
			}
			text := string(content[capture.Node.StartByte():capture.Node.EndByte()])
			if text == name {
				nodes = append(nodes, capture.Node)
			}
		}
	}
	return nodes
}

func parseFixture(t *testing.T) (*language.Language, *tree_sitter.Tree, []byte) {
	t.Helper()
	registry, err := language.NewRegistry()
	require.NoError(t, err)
	lang := registry.Get(language.TypeScript)
	require.NotNil(t, lang)

	parser := tree_sitter.NewParser()
	t.Cleanup(parser.Close)
	require.NoError(t, parser.SetLanguage(lang.Grammar()))

	content := []byte(fixture)
	tree := parser.Parse(content, nil)
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)
	return lang, tree, content
}

func TestExtractContextsConstructor(t *testing.T) {
	lang, tree, content := parseFixture(t)
	nodes := usageNodes(t, lang, tree, content, "target")
	require.Len(t, nodes, 3)

	contexts := ExtractContexts(&nodes[0], content, 10)
	require.Len(t, contexts, 3)

	assert.Equal(t, types.ContextConstructor, contexts[0].Kind)
	assert.Equal(t, "constructor", contexts[0].Name)
	assert.Equal(t, types.ContextClassDeclaration, contexts[1].Kind)
	assert.Equal(t, "Reporter", contexts[1].Name)
	assert.Equal(t, types.ContextSourceFile, contexts[2].Kind)
}

func TestExtractContextsArrowFunctionNamedByVariable(t *testing.T) {
	lang, tree, content := parseFixture(t)
	nodes := usageNodes(t, lang, tree, content, "target")
	require.Len(t, nodes, 3)

	contexts := ExtractContexts(&nodes[1], content, 10)
	require.GreaterOrEqual(t, len(contexts), 3)

	assert.Equal(t, types.ContextArrowFunction, contexts[0].Kind)
	assert.Equal(t, "helper", contexts[0].Name)
	assert.Equal(t, types.ContextMethodDeclaration, contexts[1].Kind)
	assert.Equal(t, "render", contexts[1].Name)
	assert.Equal(t, types.ContextClassDeclaration, contexts[2].Kind)
}

func TestExtractContextsTopLevel(t *testing.T) {
	lang, tree, content := parseFixture(t)
	nodes := usageNodes(t, lang, tree, content, "target")
	require.Len(t, nodes, 3)

	contexts := ExtractContexts(&nodes[2], content, 10)
	require.Len(t, contexts, 1)
	assert.Equal(t, types.ContextSourceFile, contexts[0].Kind)
	assert.Empty(t, contexts[0].Name)
	assert.Equal(t, 1, contexts[0].StartLine)
}

func TestExtractContextsLimit(t *testing.T) {
	lang, tree, content := parseFixture(t)
	nodes := usageNodes(t, lang, tree, content, "target")
	require.Len(t, nodes, 3)

	contexts := ExtractContexts(&nodes[0], content, 1)
	require.Len(t, contexts, 1)
	assert.Equal(t, types.ContextConstructor, contexts[0].Kind)

	assert.Nil(t, ExtractContexts(&nodes[0], content, 0))
}
