// Package advisor scores how well a book matches a reader's taste by
// prompting the Gemini API, and discovers new titles from taste alone.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"booksnap/backend/internal/advisor/deps"
	"booksnap/backend/internal/advisor/prompt"
	"booksnap/backend/internal/advisor/response"
	"booksnap/backend/internal/model"

	"golang.org/x/sync/errgroup"
)

const (
	// analysisTemperature keeps scoring output consistent across runs.
	analysisTemperature = 0.2
	// analysisMaxTokens bounds the model reply.
	analysisMaxTokens = 2048
	// suggestionCount is how many discovery suggestions the prompt requests.
	suggestionCount = 3
	// lookupTimeout bounds each per-suggestion catalog lookup.
	lookupTimeout = 8 * time.Second
)

// ErrUpstreamUnavailable means the generative AI dependency failed or
// returned nothing usable.
var ErrUpstreamUnavailable = errors.New("generative AI service unavailable")

// ErrUpstreamFormat means the model reply had no extractable JSON.
var ErrUpstreamFormat = errors.New("model response not in expected format")

// Advisor runs affinity scoring and discovery against an injected LLM client
// and catalog. It holds no per-request state; every invocation is
// independent.
type Advisor struct {
	llm           deps.LLMClient
	catalog       deps.Catalog
	promptBuilder *prompt.Builder
	strictScores  bool
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithStrictScores makes malformed numeric fields in model output a hard
// failure instead of silently coercing them to 0.
func WithStrictScores(strict bool) Option {
	return func(a *Advisor) { a.strictScores = strict }
}

// New creates an Advisor.
func New(llm deps.LLMClient, catalog deps.Catalog, opts ...Option) *Advisor {
	a := &Advisor{
		llm:           llm,
		catalog:       catalog,
		promptBuilder: prompt.NewBuilder(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeBook produces an affinity analysis for one book against the
// reader's declared preferences and rated history.
func (a *Advisor) AnalyzeBook(ctx context.Context, book *model.Book, prefs *model.TasteProfile, history []model.HistoryEntry) (*model.Analysis, error) {
	description := a.EnrichDescription(ctx, book)

	analysisPrompt := a.promptBuilder.BuildAnalysisPrompt(book, prefs, history, description)

	text, err := a.llm.GenerateContent(ctx, analysisPrompt, analysisTemperature, analysisMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty model response", ErrUpstreamUnavailable)
	}

	analysis, err := response.DecodeAnalysis(text, a.strictScores)
	if err != nil {
		log.Printf("[ERROR] Unparseable analysis for %q: %v", book.Title, err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFormat, err)
	}

	for _, issue := range response.CheckAnalysis(analysis) {
		log.Printf("[DRIFT] Analysis for %q: %s", book.Title, issue)
	}

	analysis.DescriptionUsed = description
	return analysis, nil
}

// Discover suggests three previously-unseen titles from taste and history
// alone, then attaches catalog metadata to each suggestion. Lookups run
// concurrently and independently: one failed lookup leaves that suggestion's
// bookDetails nil rather than failing the batch.
func (a *Advisor) Discover(ctx context.Context, prefs *model.TasteProfile, history []model.HistoryEntry) ([]model.Suggestion, error) {
	discoveryPrompt := a.promptBuilder.BuildDiscoveryPrompt(prefs, history)

	text, err := a.llm.GenerateContent(ctx, discoveryPrompt, analysisTemperature, analysisMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: empty model response", ErrUpstreamUnavailable)
	}

	suggestions, err := response.DecodeSuggestions(text)
	if err != nil {
		log.Printf("[ERROR] Unparseable discovery response: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFormat, err)
	}
	if len(suggestions) > suggestionCount {
		suggestions = suggestions[:suggestionCount]
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range suggestions {
		g.Go(func() error {
			s := &suggestions[i]
			lookupCtx, cancel := context.WithTimeout(gctx, lookupTimeout)
			defer cancel()

			book, err := a.catalog.SearchByTitleAuthor(lookupCtx, s.Title, s.Author)
			if err != nil {
				// Best effort: the suggestion ships without details.
				log.Printf("[WARN] Catalog lookup failed for %q by %q: %v", s.Title, s.Author, err)
				return nil
			}
			s.BookDetails = book
			return nil
		})
	}
	g.Wait()

	return suggestions, nil
}
