package app

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sha1n/mcp-actual-prompts-go/internal/config"
	"github.com/sha1n/mcp-actual-prompts-go/internal/domain"
	"github.com/sha1n/mcp-actual-prompts-go/internal/mcp"
	"github.com/sha1n/mcp-actual-prompts-go/internal/prompts"
	"github.com/sha1n/mcp-actual-prompts-go/internal/search"
)

// CreateMCPServer initializes the core MCP server components. The returned cleanup
// releases the search index.
func CreateMCPServer(settings *config.Settings, opts ...prompts.Option) (*server.MCPServer, func(), error) {
	metadata, err := domain.LoadMetadata(settings.MetadataPath)
	if err != nil {
		return nil, nil, err
	}

	promptProvider := prompts.NewPromptProvider(opts...)

	searchService, err := search.NewService(settings.Search, promptProvider.Definitions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize search: %w", err)
	}
	cleanup := func() {
		if err := searchService.Close(); err != nil {
			slog.Warn("Failed to close search index", "error", err)
		}
	}

	mcpServer := mcp.CreateServer(metadata, promptProvider, searchService)

	return mcpServer, cleanup, nil
}
