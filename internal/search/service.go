package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/sha1n/mcp-actual-prompts-go/internal/config"
	"github.com/sha1n/mcp-actual-prompts-go/internal/prompts"
)

const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldArguments   = "arguments"
)

// ErrEmptyQuery is returned for a blank search query
var ErrEmptyQuery = errors.New("search query must not be empty")

// Result is a single prompt match
type Result struct {
	Name        string
	Description string
	Score       float64
}

// Searcher finds prompts by keyword
type Searcher interface {
	Search(query string) ([]Result, error)
	Close() error
}

// Service is an in-memory bleve index over prompt definitions
type Service struct {
	index      bleve.Index
	maxResults int
}

// NewService indexes definitions into a memory-only index
func NewService(settings config.SearchSettings, definitions []prompts.PromptDefinition) (*Service, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	batch := index.NewBatch()
	for _, d := range definitions {
		if err := batch.Index(d.Name, document(d)); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("failed to index prompt %s: %w", d.Name, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to index prompts: %w", err)
	}

	slog.Info("Indexed prompts", "count", len(definitions))

	return &Service{
		index:      index,
		maxResults: settings.MaxResults,
	}, nil
}

func document(d prompts.PromptDefinition) map[string]interface{} {
	args := make([]string, 0, len(d.Arguments)*2)
	for _, a := range d.Arguments {
		args = append(args, a.Name, a.Description)
	}
	return map[string]interface{}{
		fieldName:        d.Name,
		fieldDescription: d.Description,
		fieldArguments:   strings.Join(args, " "),
	}
}

// Search runs a match query and returns hits ordered by score
func (s *Service) Search(query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), s.maxResults, 0, false)
	req.Fields = []string{fieldName, fieldDescription}

	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		description, _ := hit.Fields[fieldDescription].(string)
		results = append(results, Result{
			Name:        hit.ID,
			Description: description,
			Score:       hit.Score,
		})
	}
	return results, nil
}

// Close releases the index
func (s *Service) Close() error {
	return s.index.Close()
}
