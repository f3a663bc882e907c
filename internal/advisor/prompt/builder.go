package prompt

import (
	"fmt"
	"sort"
	"strings"

	"booksnap/backend/internal/model"
)

// Builder constructs prompts for the advisor.
type Builder struct{}

// NewBuilder creates a new prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildAnalysisPrompt renders the scoring prompt for one book. The enriched
// description must already be sanitized.
func (b *Builder) BuildAnalysisPrompt(book *model.Book, prefs *model.TasteProfile, history []model.HistoryEntry, description string) string {
	return fmt.Sprintf(AnalysisTemplate,
		joinOr(prefs.FavoriteGenres, NotSpecified),
		stringOr(prefs.Bio, NotSpecifiedBio),
		joinOr(prefs.Vibes, NotSpecifiedVibes),
		FormatHistory(history),
		book.Title,
		joinOr(book.Categories, NotSpecifiedVibes),
		description,
	)
}

// BuildDiscoveryPrompt renders the three-suggestion discovery prompt.
func (b *Builder) BuildDiscoveryPrompt(prefs *model.TasteProfile, history []model.HistoryEntry) string {
	return fmt.Sprintf(DiscoveryTemplate,
		joinOr(prefs.FavoriteGenres, NotSpecified),
		stringOr(prefs.Bio, NotSpecifiedBio),
		joinOr(prefs.Vibes, NotSpecifiedVibes),
		FormatHistory(history),
	)
}

// BuildEnrichmentPrompt renders the search-grounded synopsis request.
func (b *Builder) BuildEnrichmentPrompt(book *model.Book) string {
	query := fmt.Sprintf("trama completa e dettagliata libro %s %s", book.Title, book.FirstAuthor())
	return fmt.Sprintf(EnrichmentTemplate, strings.TrimSpace(query))
}

// FormatHistory renders the rated reading history, most-loved first, so the
// strongest taste signal appears earliest in the prompt. Unrated entries are
// dropped; an empty result yields the literal no-history marker.
func FormatHistory(history []model.HistoryEntry) string {
	rated := make([]model.HistoryEntry, 0, len(history))
	for _, e := range history {
		if e.UserRating > 0 {
			rated = append(rated, e)
		}
	}
	if len(rated) == 0 {
		return NoRatedHistory
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].UserRating > rated[j].UserRating
	})

	var sb strings.Builder
	for i, e := range rated {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "- \"%s\" (Valutazione: %d/5)", e.Title, e.UserRating)
	}
	return sb.String()
}

// joinOr joins values with a comma, or returns the fallback when empty.
func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
