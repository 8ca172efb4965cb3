package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/codescope/internal/cache"
	"github.com/standardbeagle/codescope/internal/config"
	"github.com/standardbeagle/codescope/internal/language"
	"github.com/standardbeagle/codescope/internal/parser"
	"github.com/standardbeagle/codescope/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const appTS = `import { formatName } from "./util";

/**
 * Greets a user by name.
 */
function greet(user: User): string {
  return formatName(user);
}

class User {
  describe(): string {
    return "user";
  }
}

const session = new User();
session.describe();
`

func newWorkspace(t *testing.T, files map[string]string) (*Pipeline, *parser.CachedParser, string) {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	registry, err := language.NewRegistry()
	require.NoError(t, err)
	cp := parser.NewCachedParser(registry, cache.NewManager())

	cfg := config.Default(root)
	cfg.Index.Workers = 2
	return New(cp, cfg, root), cp, root
}

func TestFilesDiscoveryAndExclusion(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		"app.ts":               appTS,
		"script.py":            "x = 1\n",
		"notes.md":             "TODO\n",
		"Makefile":             "all:\n",
		"node_modules/lib.ts":  "export {};\n",
		".git/config.ts":       "hidden\n",
		"generated/gen.ts":     "export {};\n",
		"sub/.hidden.ts":       "export {};\n",
	})

	files := p.Files()
	assert.Equal(t, []string{
		filepath.Join(root, "app.ts"),
		filepath.Join(root, "generated", "gen.ts"),
		filepath.Join(root, "script.py"),
	}, files)

	withExtra := p.WithExcludes([]string{"generated"}).Files()
	assert.Equal(t, []string{
		filepath.Join(root, "app.ts"),
		filepath.Join(root, "script.py"),
	}, withExtra)
}

func TestFilesHonorsGitignore(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		".gitignore":     "generated/\n*.gen.ts\n",
		"app.ts":         "export {};\n",
		"api.gen.ts":     "export {};\n",
		"generated/g.ts": "export {};\n",
	})

	assert.Equal(t, []string{filepath.Join(root, "app.ts")}, p.Files())
}

func TestFilesMarkdownOnlyWhenRequested(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		"notes.md": "TODO\n",
		"app.ts":   "export {};\n",
	})

	assert.NotContains(t, p.Files(), filepath.Join(root, "notes.md"))
	assert.Contains(t, p.WithMarkdown().Files(), filepath.Join(root, "notes.md"))
}

func TestFilesRespectsMaxFileSize(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		"small.ts": "export {};\n",
		"big.ts":   "// " + string(make([]byte, 2048)) + "\n",
	})
	p.cfg.Index.MaxFileSize = 1024

	files := p.Files()
	assert.Contains(t, files, filepath.Join(root, "small.ts"))
	assert.NotContains(t, files, filepath.Join(root, "big.ts"))
}

func TestFilesLanguageFilter(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		"app.ts":    "export {};\n",
		"script.py": "x = 1\n",
	})
	p.cfg.Languages = []string{"python"}

	assert.Equal(t, []string{filepath.Join(root, "script.py")}, p.Files())
}

func TestDefinitionCollectorWithDocs(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{"app.ts": appTS})

	defs := Process[types.SymbolDefinition](p, &DefinitionCollector{Symbol: "greet", IncludeDocs: true})
	require.Len(t, defs, 1)

	def := defs[0]
	assert.Equal(t, filepath.Join(root, "app.ts"), def.FilePath)
	assert.Equal(t, "greet", def.Name)
	assert.Equal(t, types.SymbolKindFunction, def.Kind)
	assert.Equal(t, 6, def.StartLine)
	assert.Equal(t, 8, def.EndLine)
	assert.Contains(t, def.Code, "function greet")
	assert.Equal(t, "/**\n * Greets a user by name.\n */", def.Docs)
}

func TestDefinitionCollectorKinds(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	classDefs := Process[types.SymbolDefinition](p, &DefinitionCollector{Symbol: "User"})
	require.Len(t, classDefs, 1)
	assert.Equal(t, types.SymbolKindClass, classDefs[0].Kind)
	assert.Empty(t, classDefs[0].Docs)

	methodDefs := Process[types.SymbolDefinition](p, &DefinitionCollector{Symbol: "describe"})
	require.Len(t, methodDefs, 1)
	assert.Equal(t, types.SymbolKindMethod, methodDefs[0].Kind)

	varDefs := Process[types.SymbolDefinition](p, &DefinitionCollector{Symbol: "session"})
	require.Len(t, varDefs, 1)
	assert.Equal(t, types.SymbolKindVariable, varDefs[0].Kind)
}

func TestDefinitionCollectorNoMatch(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})
	assert.Empty(t, Process[types.SymbolDefinition](p, &DefinitionCollector{Symbol: "absent"}))
}

func TestUsageCollectorClassification(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	usages := Process[types.SymbolUsage](p, &UsageCollector{Symbol: "describe", MaxContexts: 3})
	require.Len(t, usages, 2)

	// Line 11 is the method definition, line 17 the call.
	assert.Equal(t, 11, usages[0].Line)
	assert.Equal(t, types.UsageIdentifier, usages[0].UsageKind)

	call := usages[1]
	assert.Equal(t, 17, call.Line)
	assert.Equal(t, types.UsageMethodCall, call.UsageKind)
	assert.Equal(t, "session", call.ObjectName)
	assert.Equal(t, "session.describe", call.QualifiedName)
}

func TestUsageCollectorTypeReference(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	usages := Process[types.SymbolUsage](p, &UsageCollector{Symbol: "User", MaxContexts: 2})
	require.Len(t, usages, 3)

	byLine := map[int]types.SymbolUsage{}
	for _, u := range usages {
		byLine[u.Line] = u
	}
	assert.Equal(t, types.UsageTypeReference, byLine[6].UsageKind)
	assert.Equal(t, types.UsageIdentifier, byLine[10].UsageKind)
	assert.Equal(t, types.UsageIdentifier, byLine[16].UsageKind)

	// The parameter annotation sits inside greet, innermost first.
	contexts := byLine[6].Contexts
	require.NotEmpty(t, contexts)
	assert.Equal(t, types.ContextFunctionDeclaration, contexts[0].Kind)
	assert.Equal(t, "greet", contexts[0].Name)
}

func TestUsageCollectorImportsExcludedByDefault(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	without := Process[types.SymbolUsage](p, &UsageCollector{Symbol: "formatName"})
	for _, u := range without {
		assert.NotEqual(t, types.UsageImport, u.UsageKind)
	}
	require.Len(t, without, 1)
	assert.Equal(t, 7, without[0].Line)

	with := Process[types.SymbolUsage](p, &UsageCollector{Symbol: "formatName", IncludeImports: true})
	assert.Len(t, with, 2)
}

func TestUsageCollectorMaxContextsZero(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	usages := Process[types.SymbolUsage](p, &UsageCollector{Symbol: "describe"})
	require.NotEmpty(t, usages)
	for _, u := range usages {
		assert.Empty(t, u.Contexts)
	}
}

func TestMethodCallCollector(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	calls := Process[types.SymbolUsage](p, &MethodCallCollector{MethodName: "describe"})
	require.Len(t, calls, 1)
	assert.Equal(t, types.UsageMethodCall, calls[0].UsageKind)
	assert.Equal(t, "session", calls[0].ObjectName)

	onObject := Process[types.SymbolUsage](p, &MethodCallCollector{MethodName: "describe", ObjectName: "session"})
	assert.Len(t, onObject, 1)

	onOther := Process[types.SymbolUsage](p, &MethodCallCollector{MethodName: "describe", ObjectName: "other"})
	assert.Empty(t, onOther)
}

func TestImportCollector(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	imports := Process[types.SymbolUsage](p, &ImportCollector{Symbol: "formatName"})
	require.Len(t, imports, 1)
	assert.Equal(t, 1, imports[0].Line)
	assert.Equal(t, types.UsageImport, imports[0].UsageKind)
}

func TestCommentCollector(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		"app.ts":    "// TODO: tidy up\nlet x = 1;\n",
		"script.py": "# TODO: port to async\n",
		"notes.md":  "TODO: write docs\n",
	})

	matches := Process[types.CommentMatch](p, &CommentCollector{Text: "TODO"})
	require.Len(t, matches, 2)
	assert.Equal(t, filepath.Join(root, "app.ts"), matches[0].FilePath)
	assert.Equal(t, filepath.Join(root, "script.py"), matches[1].FilePath)

	withMarkdown := Process[types.CommentMatch](p.WithMarkdown(), &CommentCollector{Text: "TODO"})
	assert.Len(t, withMarkdown, 3)
}

func TestSymbolNameCollector(t *testing.T) {
	p, _, _ := newWorkspace(t, map[string]string{"app.ts": appTS})

	names := Process[string](p, SymbolNameCollector{})
	assert.Contains(t, names, "greet")
	assert.Contains(t, names, "User")
	assert.Contains(t, names, "describe")
	assert.Contains(t, names, "session")
}

func TestProcessParseFailureSkipsFile(t *testing.T) {
	p, _, root := newWorkspace(t, map[string]string{
		"good.ts": "function ok() {}\n",
	})
	// An unreadable file must not abort the run.
	bad := filepath.Join(root, "bad.ts")
	require.NoError(t, os.WriteFile(bad, []byte("function alsoOk() {}\n"), 0o000))

	defs := Process[types.SymbolDefinition](p, &DefinitionCollector{Symbol: "ok"})
	assert.Len(t, defs, 1)
}
