package prompts

import (
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrUnknownPrompt is returned when a prompt name is not in the catalog
	ErrUnknownPrompt = errors.New("unknown prompt")
	// ErrInvalidArgument is returned when a prompt argument cannot be used
	ErrInvalidArgument = errors.New("invalid argument")
)

// Option configures a PromptProvider
type Option func(*PromptProvider)

// WithClock overrides the time source used to resolve default date ranges
func WithClock(now func() time.Time) Option {
	return func(p *PromptProvider) {
		p.now = now
	}
}

// PromptProvider provides access to prompts
type PromptProvider struct {
	definitions []PromptDefinition
	now         func() time.Time
}

// NewPromptProvider creates a new prompt provider over the fixed catalog
func NewPromptProvider(opts ...Option) *PromptProvider {
	p := &PromptProvider{
		definitions: Catalog(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Definitions returns a copy of the catalog definitions
func (p *PromptProvider) Definitions() []PromptDefinition {
	defs := make([]PromptDefinition, len(p.definitions))
	copy(defs, p.definitions)
	return defs
}

// ListPrompts lists all available prompts
func (p *PromptProvider) ListPrompts() []mcp.Prompt {
	prompts := make([]mcp.Prompt, len(p.definitions))
	for i, d := range p.definitions {
		args := make([]mcp.PromptArgument, len(d.Arguments))
		for j, a := range d.Arguments {
			args[j] = mcp.PromptArgument{
				Name:        a.Name,
				Description: a.Description,
				Required:    a.Required,
			}
		}

		prompts[i] = mcp.Prompt{
			Name:        d.Name,
			Description: d.Description,
			Arguments:   args,
		}
	}
	return prompts
}

// GetPrompt renders a prompt by name with arguments. Arguments the prompt does not
// declare are ignored.
func (p *PromptProvider) GetPrompt(name string, arguments map[string]string) (*mcp.GetPromptResult, error) {
	switch name {
	case NameFinancialInsights:
		return renderFinancialInsights(arguments, p.now())
	case NameBudgetReview:
		return renderBudgetReview(arguments)
	case NameActualCleanup:
		return renderActualCleanup(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrompt, name)
	}
}
