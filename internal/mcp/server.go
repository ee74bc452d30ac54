package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sha1n/mcp-actual-prompts-go/internal/domain"
	"github.com/sha1n/mcp-actual-prompts-go/internal/prompts"
	"github.com/sha1n/mcp-actual-prompts-go/internal/search"
)

// CreateServer creates and configures the MCP server
func CreateServer(
	metadata domain.McpMetadata,
	promptProvider *prompts.PromptProvider,
	searchService search.Searcher,
) *server.MCPServer {
	s := server.NewMCPServer(
		metadata.Server.Name,
		metadata.Server.Version,
		server.WithInstructions(metadata.Server.Instructions),
		server.WithPromptCapabilities(false),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	// Register Prompts
	for _, p := range promptProvider.ListPrompts() {
		s.AddPrompt(p, NewPromptHandler(promptProvider))
		slog.Info("Registered prompt", "name", p.Name)
	}

	// Register Tools
	RegisterSearchPromptsTool(s, searchService, metadata.GetToolMetadata(domain.ToolNameSearchPrompts))
	slog.Info("Registered tool", "name", domain.ToolNameSearchPrompts)

	return s
}
