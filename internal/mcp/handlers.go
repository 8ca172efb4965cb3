package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/codescope/internal/engine"
	"github.com/standardbeagle/codescope/internal/types"
)

type findDefinitionParams struct {
	Symbol      string   `json:"symbol"`
	IncludeDocs *bool    `json:"include_docs"`
	Exclude     []string `json:"exclude"`
}

type findUsagesParams struct {
	Symbol         string   `json:"symbol"`
	IncludeImports bool     `json:"include_imports"`
	MaxContexts    *int     `json:"max_contexts"`
	Object         string   `json:"object"`
	Exclude        []string `json:"exclude"`
}

type findMethodCallsParams struct {
	Method  string   `json:"method"`
	Object  string   `json:"object"`
	Exclude []string `json:"exclude"`
}

type findImportsParams struct {
	Symbol  string   `json:"symbol"`
	Exclude []string `json:"exclude"`
}

type searchCommentsParams struct {
	Text    string   `json:"text"`
	Exclude []string `json:"exclude"`
}

type fileStatsParams struct {
	IncludeFiles bool     `json:"include_files"`
	Exclude      []string `json:"exclude"`
}

type getCodeParams struct {
	FilePath      string `json:"file_path"`
	Line          int    `json:"line"`
	ContextBefore *int   `json:"context_before"`
	ContextAfter  *int   `json:"context_after"`
}

func (s *Server) handleFindDefinition(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params findDefinitionParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("find_definition", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Symbol == "" {
		return createErrorResponse("find_definition", fmt.Errorf("symbol is required"))
	}

	includeDocs := true
	if params.IncludeDocs != nil {
		includeDocs = *params.IncludeDocs
	}

	defs := s.engine.FindDefinitions(params.Symbol, includeDocs, params.Exclude)
	response := map[string]interface{}{
		"success":     true,
		"symbol":      params.Symbol,
		"count":       len(defs),
		"definitions": emptyIfNilDefs(defs),
	}
	if len(defs) == 0 {
		if suggestions := s.engine.SuggestSymbols(params.Symbol, params.Exclude); len(suggestions) > 0 {
			response["suggestions"] = suggestions
		}
	}
	return createJSONResponse(response)
}

func (s *Server) handleFindUsages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params findUsagesParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("find_usages", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Symbol == "" {
		return createErrorResponse("find_usages", fmt.Errorf("symbol is required"))
	}

	maxContexts := s.engine.Config().Search.MaxContexts
	if params.MaxContexts != nil {
		maxContexts = *params.MaxContexts
	}

	usages := s.engine.FindUsages(params.Symbol, params.IncludeImports, maxContexts, params.Object, params.Exclude)
	return createJSONResponse(map[string]interface{}{
		"success": true,
		"symbol":  params.Symbol,
		"count":   len(usages),
		"usages":  emptyIfNilUsages(usages),
	})
}

func (s *Server) handleFindMethodCalls(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params findMethodCallsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("find_method_calls", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Method == "" {
		return createErrorResponse("find_method_calls", fmt.Errorf("method is required"))
	}

	calls := s.engine.FindMethodCalls(params.Method, params.Object, params.Exclude)
	return createJSONResponse(map[string]interface{}{
		"success": true,
		"method":  params.Method,
		"object":  params.Object,
		"count":   len(calls),
		"calls":   emptyIfNilUsages(calls),
	})
}

func (s *Server) handleFindImports(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params findImportsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("find_imports", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Symbol == "" {
		return createErrorResponse("find_imports", fmt.Errorf("symbol is required"))
	}

	imports := s.engine.FindImports(params.Symbol, params.Exclude)
	return createJSONResponse(map[string]interface{}{
		"success": true,
		"symbol":  params.Symbol,
		"count":   len(imports),
		"imports": emptyIfNilUsages(imports),
	})
}

func (s *Server) handleSearchComments(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params searchCommentsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("search_comments", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.Text == "" {
		return createErrorResponse("search_comments", fmt.Errorf("text is required"))
	}

	matches := s.engine.SearchComments(params.Text, params.Exclude)
	if matches == nil {
		matches = []types.CommentMatch{}
	}
	return createJSONResponse(map[string]interface{}{
		"success": true,
		"text":    params.Text,
		"count":   len(matches),
		"matches": matches,
	})
}

func (s *Server) handleFileStats(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params fileStatsParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("file_stats", fmt.Errorf("invalid parameters: %w", err))
	}

	stats := s.engine.FileStats(params.Exclude)
	response := map[string]interface{}{
		"success": true,
		"summary": engine.Summarize(stats),
	}
	if params.IncludeFiles {
		if stats == nil {
			stats = []types.FileStats{}
		}
		response["files"] = stats
	}
	return createJSONResponse(response)
}

func (s *Server) handleGetCode(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params getCodeParams
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("get_code", fmt.Errorf("invalid parameters: %w", err))
	}
	if params.FilePath == "" {
		return createErrorResponse("get_code", fmt.Errorf("file_path is required"))
	}
	if params.Line < 1 {
		return createErrorResponse("get_code", fmt.Errorf("line must be 1 or greater"))
	}

	before := s.engine.Config().Search.ContextBefore
	after := s.engine.Config().Search.ContextAfter
	if params.ContextBefore != nil {
		before = *params.ContextBefore
	}
	if params.ContextAfter != nil {
		after = *params.ContextAfter
	}

	snippet, err := s.engine.GetCode(params.FilePath, params.Line, before, after)
	if err != nil {
		return createErrorResponse("get_code", err)
	}
	return createJSONResponse(map[string]interface{}{
		"success": true,
		"snippet": snippet,
	})
}

func (s *Server) handleClearCache(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.engine.ClearCache()
	return createJSONResponse(map[string]interface{}{
		"success": true,
		"message": "cache cleared",
	})
}

func emptyIfNilDefs(defs []types.SymbolDefinition) []types.SymbolDefinition {
	if defs == nil {
		return []types.SymbolDefinition{}
	}
	return defs
}

func emptyIfNilUsages(usages []types.SymbolUsage) []types.SymbolUsage {
	if usages == nil {
		return []types.SymbolUsage{}
	}
	return usages
}
