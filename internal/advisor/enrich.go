package advisor

import (
	"context"
	"log"

	"booksnap/backend/internal/advisor/prompt"
	"booksnap/backend/internal/advisor/sanitize"
	"booksnap/backend/internal/model"
)

// minDescriptionLength is the threshold below which a catalog description is
// considered too thin to score against.
const minDescriptionLength = 150

// EnrichDescription guarantees the scoring prompt receives an informative
// plot description. A thin or missing catalog description triggers a
// search-grounded synopsis request; any failure there degrades quality, never
// availability.
func (a *Advisor) EnrichDescription(ctx context.Context, book *model.Book) string {
	description := sanitize.Description(book.Description)
	if len(description) >= minDescriptionLength {
		log.Printf("[INFO] Using provided description for %q", book.Title)
		return description
	}

	log.Printf("[INFO] Description for %q insufficient, trying grounded search", book.Title)

	found, err := a.llm.GenerateWithSearch(ctx, a.promptBuilder.BuildEnrichmentPrompt(book))
	if err != nil {
		log.Printf("[WARN] Grounded search failed for %q: %v", book.Title, err)
		return fallbackDescription(description)
	}
	if found = sanitize.Description(found); found == "" {
		log.Printf("[WARN] Grounded search for %q returned nothing usable", book.Title)
		return fallbackDescription(description)
	}

	log.Printf("[INFO] Found alternative description for %q", book.Title)
	return found
}

func fallbackDescription(original string) string {
	if original != "" {
		return original
	}
	return prompt.DescriptionUnavailable
}
