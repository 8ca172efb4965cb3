package mcp

// CallTool invokes a tool handler in-process, bypassing the stdio transport.
// Tests get direct stack traces and skip process communication entirely.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CallTool is a test helper that simulates an MCP tool call and returns the
// JSON text of the first content block.
func (s *Server) CallTool(toolName string, params map[string]interface{}) (string, error) {
	ctx := context.Background()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal params: %w", err)
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      toolName,
			Arguments: paramsJSON,
		},
	}

	var result *mcp.CallToolResult
	switch toolName {
	case "find_definition":
		result, err = s.handleFindDefinition(ctx, req)
	case "find_usages":
		result, err = s.handleFindUsages(ctx, req)
	case "find_method_calls":
		result, err = s.handleFindMethodCalls(ctx, req)
	case "find_imports":
		result, err = s.handleFindImports(ctx, req)
	case "search_comments":
		result, err = s.handleSearchComments(ctx, req)
	case "file_stats":
		result, err = s.handleFileStats(ctx, req)
	case "get_code":
		result, err = s.handleGetCode(ctx, req)
	case "clear_cache":
		result, err = s.handleClearCache(ctx, req)
	default:
		return "", fmt.Errorf("unknown tool: %s", toolName)
	}
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(*mcp.TextContent); ok {
			return textContent.Text, nil
		}
	}
	return "", fmt.Errorf("tool %s returned no text content", toolName)
}
