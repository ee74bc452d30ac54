package domain

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ToolNameSearchPrompts is the name of the prompt search tool
const ToolNameSearchPrompts = "search-prompts"

// McpMetadata describes the server and overrides for its tools
type McpMetadata struct {
	Server ServerMetadata `yaml:"server"`
	Tools  []ToolMetadata `yaml:"tools"`
}

// ServerMetadata is advertised to clients during initialization
type ServerMetadata struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	Instructions string `yaml:"instructions"`
}

// ToolMetadata names and describes a tool
type ToolMetadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// DefaultToolMetadata holds the built-in tool descriptions
var DefaultToolMetadata = map[string]ToolMetadata{
	ToolNameSearchPrompts: {
		Name:        ToolNameSearchPrompts,
		Description: "Search the available budgeting prompts by keyword. Returns matching prompt names with their descriptions.",
	},
}

// DefaultMetadata is used when no metadata file is configured
func DefaultMetadata() McpMetadata {
	return McpMetadata{
		Server: ServerMetadata{
			Name:    "actual-prompts",
			Version: "1.0.0",
			Instructions: "This server provides prompts for reviewing an Actual Budget file: " +
				"financial-insights, budget-review and actual-cleanup. " +
				"The prompts reference Actual Budget tools such as spending-by-category and get-transactions, " +
				"which are provided by a separate server. Use search-prompts to find a prompt by topic.",
		},
	}
}

// LoadMetadata reads metadata from a YAML file and validates it. An empty path yields
// DefaultMetadata.
func LoadMetadata(path string) (McpMetadata, error) {
	if path == "" {
		return DefaultMetadata(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return McpMetadata{}, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var metadata McpMetadata
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		return McpMetadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}

	if err := metadata.Validate(); err != nil {
		return McpMetadata{}, fmt.Errorf("metadata validation failed: %w", err)
	}

	return metadata, nil
}

// Validate checks required fields and tool name uniqueness
func (m McpMetadata) Validate() error {
	if m.Server.Name == "" {
		return errors.New("server.name is required")
	}
	if m.Server.Version == "" {
		return errors.New("server.version is required")
	}
	if m.Server.Instructions == "" {
		return errors.New("server.instructions is required")
	}

	for i, t := range m.Tools {
		if t.Name == "" {
			return fmt.Errorf("tools[%d].name is required", i)
		}
		if t.Description == "" {
			return fmt.Errorf("tools[%d].description is required", i)
		}
	}

	_, err := m.ToolsMap()
	return err
}

// ToolsMap indexes tool overrides by name
func (m McpMetadata) ToolsMap() (map[string]ToolMetadata, error) {
	tools := make(map[string]ToolMetadata, len(m.Tools))
	for _, t := range m.Tools {
		if _, exists := tools[t.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name: %s", t.Name)
		}
		tools[t.Name] = t
	}
	return tools, nil
}

// GetToolMetadata returns the override for name, falling back to DefaultToolMetadata
func (m McpMetadata) GetToolMetadata(name string) ToolMetadata {
	for _, t := range m.Tools {
		if t.Name == name {
			return t
		}
	}
	return DefaultToolMetadata[name]
}
