package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sha1n/mcp-actual-prompts-go/internal/domain"
	"github.com/sha1n/mcp-actual-prompts-go/internal/search"
)

// RegisterSearchPromptsTool registers the search-prompts tool with the server
func RegisterSearchPromptsTool(s *server.MCPServer, searchService search.Searcher, metadata domain.ToolMetadata) {
	tool := mcp.NewTool(
		metadata.Name,
		mcp.WithDescription(metadata.Description),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keywords describing the kind of budgeting help you want, e.g. 'savings' or 'cleanup'."),
		),
	)

	s.AddTool(tool, NewSearchPromptsToolHandler(searchService))
}

// NewSearchPromptsToolHandler creates the handler for the search-prompts tool
func NewSearchPromptsToolHandler(searchService search.Searcher) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := req.Params.Arguments.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid arguments format")
		}

		query, ok := args["query"].(string)
		if !ok {
			return nil, fmt.Errorf("missing 'query' argument")
		}

		slog.Info("Search prompts request", "query", query)

		results, err := searchService.Search(query)
		if err != nil {
			slog.Error("Search failed", "query", query, "error", err)
			return nil, err
		}

		var sb strings.Builder
		if len(results) == 0 {
			fmt.Fprintf(&sb, "No prompts found for '%s'", query)
		} else {
			fmt.Fprintf(&sb, "Prompts matching '%s':\n\n", query)
			for _, r := range results {
				fmt.Fprintf(&sb, "- %s: %s\n", r.Name, r.Description)
			}
		}

		return mcp.NewToolResultText(sb.String()), nil
	}
}
