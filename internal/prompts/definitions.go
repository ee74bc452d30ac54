package prompts

const (
	// NameFinancialInsights is the name of the financial insights prompt
	NameFinancialInsights = "financial-insights"
	// NameBudgetReview is the name of the budget review prompt
	NameBudgetReview = "budget-review"
	// NameActualCleanup is the name of the budget cleanup prompt
	NameActualCleanup = "actual-cleanup"
)

const (
	// ArgStartDate is the financial-insights range start argument
	ArgStartDate = "startDate"
	// ArgEndDate is the financial-insights range end argument
	ArgEndDate = "endDate"
	// ArgMonths is the budget-review window argument
	ArgMonths = "months"
)

// PromptDefinition definition of an MCP prompt
type PromptDefinition struct {
	Name        string
	Description string
	Arguments   []PromptArgument
}

// PromptArgument definition of an MCP prompt argument
type PromptArgument struct {
	Name        string
	Description string
	Required    bool
}

// Catalog returns the fixed set of prompts served by this process, in listing order.
func Catalog() []PromptDefinition {
	return []PromptDefinition{
		{
			Name:        NameFinancialInsights,
			Description: "Generate financial insights and advice",
			Arguments: []PromptArgument{
				{Name: ArgStartDate, Description: "Start date in YYYY-MM-DD format", Required: false},
				{Name: ArgEndDate, Description: "End date in YYYY-MM-DD format", Required: false},
			},
		},
		{
			Name:        NameBudgetReview,
			Description: "Review my budget and spending",
			Arguments: []PromptArgument{
				{Name: ArgMonths, Description: "Number of months to analyze", Required: false},
			},
		},
		{
			Name:        NameActualCleanup,
			Description: "Analyze budget for cleanup opportunities",
		},
	}
}
