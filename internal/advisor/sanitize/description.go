// Package sanitize cleans catalog-sourced text before it is embedded in a
// prompt. Catalog descriptions frequently arrive with HTML markup and
// entities that would waste tokens and confuse the scoring rubric.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxDescriptionLength caps sanitized descriptions before prompt embedding.
const MaxDescriptionLength = 2500

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>?`)
	htmlEntityPattern = regexp.MustCompile(`(?i)&[a-z]+;`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Description strips HTML tags and entities, collapses runs of whitespace to
// a single space, and truncates to MaxDescriptionLength with an ellipsis.
// The function is idempotent: Description(Description(s)) == Description(s).
func Description(description string) string {
	if description == "" {
		return ""
	}
	withoutHTML := htmlTagPattern.ReplaceAllString(description, " ")
	withoutHTML = htmlEntityPattern.ReplaceAllString(withoutHTML, " ")
	singleSpace := strings.TrimSpace(whitespacePattern.ReplaceAllString(withoutHTML, " "))

	// Truncate on rune boundaries so multibyte text is never cut mid-character.
	// The ellipsis counts toward the cap, which keeps truncation idempotent.
	runes := []rune(singleSpace)
	if len(runes) > MaxDescriptionLength {
		return strings.TrimSpace(string(runes[:MaxDescriptionLength-3])) + "..."
	}
	return singleSpace
}
