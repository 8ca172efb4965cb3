package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/codescope/internal/config"
	"github.com/standardbeagle/codescope/internal/engine"
	"github.com/standardbeagle/codescope/internal/mcp"
	"github.com/standardbeagle/codescope/internal/version"
	"github.com/standardbeagle/codescope/internal/watch"
	"github.com/standardbeagle/codescope/pkg/pathutil"
)

func loadConfig(c *cli.Context) (*config.Config, error) {
	root := c.String("root")
	if root == "" {
		root = "."
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.ExcludeDirs = append(cfg.ExcludeDirs, excludes...)
	}
	if langs := c.StringSlice("language"); len(langs) > 0 {
		cfg.Languages = langs
	}
	return cfg, nil
}

func buildEngine(c *cli.Context) (*engine.Engine, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return engine.New(cfg)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	app := &cli.App{
		Name:    "codescope",
		Usage:   "Tree-sitter based code intelligence for AI assistants",
		Version: version.FullInfo(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root directory (defaults to the current directory)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Additional directory names to exclude",
			},
			&cli.StringSliceFlag{
				Name:  "language",
				Usage: "Restrict analysis to the named languages",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "definition",
				Aliases:   []string{"def"},
				Usage:     "Find where a symbol is defined",
				ArgsUsage: "<symbol>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-docs",
						Usage: "Skip documentation extraction",
					},
				},
				Action: definitionCommand,
			},
			{
				Name:      "usages",
				Usage:     "Find and classify every occurrence of a symbol",
				ArgsUsage: "<symbol>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "imports",
						Usage: "Also report occurrences inside import statements",
					},
					&cli.IntFlag{
						Name:  "contexts",
						Usage: "Enclosing scopes to report per usage",
						Value: -1,
					},
					&cli.StringFlag{
						Name:  "object",
						Usage: "Only member accesses on this object",
					},
				},
				Action: usagesCommand,
			},
			{
				Name:      "calls",
				Usage:     "Find call sites of a method",
				ArgsUsage: "<method>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "object",
						Usage: "Only calls on this object",
					},
				},
				Action: callsCommand,
			},
			{
				Name:      "imports",
				Usage:     "Find where a symbol is imported",
				ArgsUsage: "<symbol>",
				Action:    importsCommand,
			},
			{
				Name:      "comments",
				Usage:     "Find comments containing a text fragment",
				ArgsUsage: "<text>",
				Action:    commentsCommand,
			},
			{
				Name:  "stats",
				Usage: "Line counts per language and per file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "files",
						Usage: "Include the per-file breakdown",
					},
				},
				Action: statsCommand,
			},
			{
				Name:      "code",
				Usage:     "Show the source around a line of a file",
				ArgsUsage: "<file> <line>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "before",
						Usage: "Lines of context before",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "after",
						Usage: "Lines of context after",
						Value: -1,
					},
				},
				Action: codeCommand,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the engine over MCP on stdio",
				Action: mcpCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func requireArg(c *cli.Context, name string) (string, error) {
	value := c.Args().First()
	if value == "" {
		return "", fmt.Errorf("%s argument is required", name)
	}
	return value, nil
}

func definitionCommand(c *cli.Context) error {
	symbol, err := requireArg(c, "symbol")
	if err != nil {
		return err
	}
	eng, err := buildEngine(c)
	if err != nil {
		return err
	}

	defs := eng.FindDefinitions(symbol, !c.Bool("no-docs"), nil)
	if len(defs) == 0 {
		if suggestions := eng.SuggestSymbols(symbol, nil); len(suggestions) > 0 {
			return printJSON(map[string]interface{}{
				"definitions": defs,
				"suggestions": suggestions,
			})
		}
	}
	return printJSON(pathutil.ToRelativeDefinitions(defs, eng.Config().Project.Root))
}

func usagesCommand(c *cli.Context) error {
	symbol, err := requireArg(c, "symbol")
	if err != nil {
		return err
	}
	eng, err := buildEngine(c)
	if err != nil {
		return err
	}

	maxContexts := c.Int("contexts")
	if maxContexts < 0 {
		maxContexts = eng.Config().Search.MaxContexts
	}
	usages := eng.FindUsages(symbol, c.Bool("imports"), maxContexts, c.String("object"), nil)
	return printJSON(pathutil.ToRelativeUsages(usages, eng.Config().Project.Root))
}

func callsCommand(c *cli.Context) error {
	method, err := requireArg(c, "method")
	if err != nil {
		return err
	}
	eng, err := buildEngine(c)
	if err != nil {
		return err
	}
	calls := eng.FindMethodCalls(method, c.String("object"), nil)
	return printJSON(pathutil.ToRelativeUsages(calls, eng.Config().Project.Root))
}

func importsCommand(c *cli.Context) error {
	symbol, err := requireArg(c, "symbol")
	if err != nil {
		return err
	}
	eng, err := buildEngine(c)
	if err != nil {
		return err
	}
	imports := eng.FindImports(symbol, nil)
	return printJSON(pathutil.ToRelativeUsages(imports, eng.Config().Project.Root))
}

func commentsCommand(c *cli.Context) error {
	text, err := requireArg(c, "text")
	if err != nil {
		return err
	}
	eng, err := buildEngine(c)
	if err != nil {
		return err
	}
	matches := eng.SearchComments(text, nil)
	return printJSON(pathutil.ToRelativeComments(matches, eng.Config().Project.Root))
}

func statsCommand(c *cli.Context) error {
	eng, err := buildEngine(c)
	if err != nil {
		return err
	}

	stats := eng.FileStats(nil)
	if c.Bool("files") {
		return printJSON(map[string]interface{}{
			"summary": engine.Summarize(stats),
			"files":   pathutil.ToRelativeStats(stats, eng.Config().Project.Root),
		})
	}
	return printJSON(engine.Summarize(stats))
}

func codeCommand(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return fmt.Errorf("file and line arguments are required")
	}
	path := c.Args().Get(0)
	var line int
	if _, err := fmt.Sscanf(c.Args().Get(1), "%d", &line); err != nil || line < 1 {
		return fmt.Errorf("line must be a positive integer")
	}

	eng, err := buildEngine(c)
	if err != nil {
		return err
	}
	before := c.Int("before")
	if before < 0 {
		before = eng.Config().Search.ContextBefore
	}
	after := c.Int("after")
	if after < 0 {
		after = eng.Config().Search.ContextAfter
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(eng.Config().Project.Root, path)
	}
	snippet, err := eng.GetCode(path, line, before, after)
	if err != nil {
		return err
	}
	return printJSON(pathutil.ToRelativeSnippet(snippet, eng.Config().Project.Root))
}

func mcpCommand(c *cli.Context) error {
	eng, err := buildEngine(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if eng.Config().Watch.Enabled {
		watcher, err := watch.New(eng.Config(), eng.Caches(), eng.Registry())
		if err != nil {
			log.Printf("Warning: file watching unavailable: %v", err)
		} else if err := watcher.Start(eng.Config().Project.Root); err != nil {
			log.Printf("Warning: failed to start file watcher: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	return mcp.NewServer(eng, version.ServerVersion()).Run(ctx)
}
