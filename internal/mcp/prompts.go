package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sha1n/mcp-actual-prompts-go/internal/prompts"
)

// NewPromptHandler creates the prompts/get handler backed by the provider
func NewPromptHandler(promptProvider *prompts.PromptProvider) func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		name := req.Params.Name

		slog.Info("Get prompt request", "name", name)

		result, err := promptProvider.GetPrompt(name, req.Params.Arguments)
		if err != nil {
			slog.Error("Error getting prompt", "name", name, "error", err)
			return nil, err
		}

		return result, nil
	}
}
