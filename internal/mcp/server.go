// Package mcp exposes the engine over the Model Context Protocol. One tool
// per engine operation; all tools run against the same shared caches.
package mcp

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/codescope/internal/engine"
)

const serverName = "codescope-mcp-server"

// Server wires the engine's operations into MCP tools over stdio.
type Server struct {
	engine  *engine.Engine
	server  *mcp.Server
	version string
}

// NewServer creates the MCP server and registers every tool.
func NewServer(eng *engine.Engine, version string) *Server {
	s := &Server{
		engine:  eng,
		version: version,
	}
	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	s.registerTools()
	return s
}

// Run serves MCP over stdio until ctx is cancelled or the client hangs up.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	excludeSchema := &jsonschema.Schema{
		Type:        "array",
		Items:       &jsonschema.Schema{Type: "string"},
		Description: "Additional directory names to exclude for this request",
	}

	s.server.AddTool(&mcp.Tool{
		Name:        "find_definition",
		Description: "Find where a symbol is defined across the workspace, with its code and any adjacent documentation. Suggests similar names when nothing matches.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"symbol": {
					Type:        "string",
					Description: "Exact symbol name to look up",
				},
				"include_docs": {
					Type:        "boolean",
					Description: "Attach documentation comments (default true)",
				},
				"exclude": excludeSchema,
			},
			Required: []string{"symbol"},
		},
	}, s.handleFindDefinition)

	s.server.AddTool(&mcp.Tool{
		Name:        "find_usages",
		Description: "Find every occurrence of a symbol, classified as identifier, property access, method call, type reference or import, with enclosing scopes.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"symbol": {
					Type:        "string",
					Description: "Exact symbol name to look up",
				},
				"include_imports": {
					Type:        "boolean",
					Description: "Also report occurrences inside import statements (default false)",
				},
				"max_contexts": {
					Type:        "integer",
					Description: "Enclosing scopes to report per usage, innermost first (default from config)",
				},
				"object": {
					Type:        "string",
					Description: "Only keep member accesses on this object",
				},
				"exclude": excludeSchema,
			},
			Required: []string{"symbol"},
		},
	}, s.handleFindUsages)

	s.server.AddTool(&mcp.Tool{
		Name:        "find_method_calls",
		Description: "Find call sites of a method, optionally restricted to calls on a named object (e.g. object \"db\", method \"query\").",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"method": {
					Type:        "string",
					Description: "Method name being called",
				},
				"object": {
					Type:        "string",
					Description: "Only calls on this object",
				},
				"exclude": excludeSchema,
			},
			Required: []string{"method"},
		},
	}, s.handleFindMethodCalls)

	s.server.AddTool(&mcp.Tool{
		Name:        "find_imports",
		Description: "Find where a symbol is imported.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"symbol": {
					Type:        "string",
					Description: "Imported symbol name",
				},
				"exclude": excludeSchema,
			},
			Required: []string{"symbol"},
		},
	}, s.handleFindImports)

	s.server.AddTool(&mcp.Tool{
		Name:        "search_comments",
		Description: "Find comments containing a text fragment (TODO, FIXME, a ticket number). Markdown files are searched as plain text.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"text": {
					Type:        "string",
					Description: "Text to look for inside comments",
				},
				"exclude": excludeSchema,
			},
			Required: []string{"text"},
		},
	}, s.handleSearchComments)

	s.server.AddTool(&mcp.Tool{
		Name:        "file_stats",
		Description: "Per-language and per-file line counts (code, comment, blank) with content fingerprints.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"include_files": {
					Type:        "boolean",
					Description: "Include the per-file breakdown, not just the summary (default false)",
				},
				"exclude": excludeSchema,
			},
		},
	}, s.handleFileStats)

	s.server.AddTool(&mcp.Tool{
		Name:        "get_code",
		Description: "Read the source around a specific line of a file, with configurable context.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"file_path": {
					Type:        "string",
					Description: "Path of the file to read",
				},
				"line": {
					Type:        "integer",
					Description: "1-indexed target line",
				},
				"context_before": {
					Type:        "integer",
					Description: "Lines of context before (default from config)",
				},
				"context_after": {
					Type:        "integer",
					Description: "Lines of context after (default from config)",
				},
			},
			Required: []string{"file_path", "line"},
		},
	}, s.handleGetCode)

	s.server.AddTool(&mcp.Tool{
		Name:        "clear_cache",
		Description: "Drop all cached file contents and parse trees. Next queries re-read from disk.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
		},
	}, s.handleClearCache)
}
