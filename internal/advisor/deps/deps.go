package deps

import (
	"context"

	"booksnap/backend/internal/model"
)

// LLMClient abstracts generative API calls so the advisor can be tested with
// a mock and so the process-wide client handle is an explicit dependency.
type LLMClient interface {
	// GenerateContent runs a plain single-shot generation.
	GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error)
	// GenerateWithSearch runs a generation with Google Search grounding
	// enabled, used for description enrichment.
	GenerateWithSearch(ctx context.Context, prompt string) (string, error)
}

// Catalog abstracts book metadata lookups against the external catalog.
type Catalog interface {
	SearchByTitleAuthor(ctx context.Context, title, author string) (*model.Book, error)
}
