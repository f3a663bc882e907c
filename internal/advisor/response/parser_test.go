package response

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		got, err := ExtractJSON(`{"a": 1}`)
		if err != nil {
			t.Fatalf("ExtractJSON() error = %v", err)
		}
		if got != `{"a": 1}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("markdown fences and commentary", func(t *testing.T) {
		text := "Sure, here is the analysis:\n```json\n{\"final_rating\": 4.2}\n```\nLet me know!"
		got, err := ExtractJSON(text)
		if err != nil {
			t.Fatalf("ExtractJSON() error = %v", err)
		}
		if got != `{"final_rating": 4.2}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested objects", func(t *testing.T) {
		text := `prefix {"outer": {"inner": {"deep": 1}}} suffix {"second": 2}`
		got, err := ExtractJSON(text)
		if err != nil {
			t.Fatalf("ExtractJSON() error = %v", err)
		}
		if got != `{"outer": {"inner": {"deep": 1}}}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("braces inside string values", func(t *testing.T) {
		text := `{"reason": "loves {dark} themes \" and more"}`
		got, err := ExtractJSON(text)
		if err != nil {
			t.Fatalf("ExtractJSON() error = %v", err)
		}
		if got != text {
			t.Errorf("got %q", got)
		}
	})

	t.Run("no object", func(t *testing.T) {
		if _, err := ExtractJSON("the model rambled with no JSON at all"); !errors.Is(err, ErrNoJSON) {
			t.Errorf("error = %v, want ErrNoJSON", err)
		}
	})

	t.Run("unbalanced object", func(t *testing.T) {
		if _, err := ExtractJSON(`{"never": "closed"`); !errors.Is(err, ErrNoJSON) {
			t.Errorf("error = %v, want ErrNoJSON", err)
		}
	})
}

const wellFormedReply = "```json\n" + `{
  "rating_details": {
    "plot_affinity": { "score": 4.5, "reason": "epic scope" },
    "style_affinity": { "score": 4.5, "reason": "dense prose" },
    "genre_affinity": { "score": 4.0, "reason": "core sci-fi" }
  },
  "final_rating": 4.4,
  "confidence_level": "Alta",
  "one_sentence_hook": "Un classico che parla al tuo amore per le saghe.",
  "perfect_for_you_if": "cerchi mondi vasti e politica complessa"
}` + "\n```"

func TestDecodeAnalysis(t *testing.T) {
	t.Run("well-formed", func(t *testing.T) {
		a, err := DecodeAnalysis(wellFormedReply, false)
		if err != nil {
			t.Fatalf("DecodeAnalysis() error = %v", err)
		}
		if a.RatingDetails.PlotAffinity.Score != 4.5 {
			t.Errorf("plot score = %v", a.RatingDetails.PlotAffinity.Score)
		}
		if a.FinalRating != 4.4 {
			t.Errorf("final rating = %v", a.FinalRating)
		}
		if a.ConfidenceLevel != "Alta" {
			t.Errorf("confidence = %q", a.ConfidenceLevel)
		}
	})

	t.Run("string scores coerced to numbers", func(t *testing.T) {
		reply := strings.ReplaceAll(wellFormedReply, `"score": 4.5`, `"score": "4.5"`)
		reply = strings.ReplaceAll(reply, `"final_rating": 4.4`, `"final_rating": "4.4"`)
		a, err := DecodeAnalysis(reply, false)
		if err != nil {
			t.Fatalf("DecodeAnalysis() error = %v", err)
		}
		if a.RatingDetails.PlotAffinity.Score != 4.5 {
			t.Errorf("plot score = %v, want coerced 4.5", a.RatingDetails.PlotAffinity.Score)
		}
		if a.FinalRating != 4.4 {
			t.Errorf("final rating = %v, want coerced 4.4", a.FinalRating)
		}
	})

	t.Run("malformed score coerces to zero, shape stays complete", func(t *testing.T) {
		reply := strings.ReplaceAll(wellFormedReply, `"score": 4.0`, `"score": "quite high"`)
		a, err := DecodeAnalysis(reply, false)
		if err != nil {
			t.Fatalf("DecodeAnalysis() error = %v", err)
		}
		if a.RatingDetails.GenreAffinity.Score != 0 {
			t.Errorf("genre score = %v, want 0", a.RatingDetails.GenreAffinity.Score)
		}
		// The other fields are unaffected.
		if a.RatingDetails.StyleAffinity.Score != 4.5 {
			t.Errorf("style score = %v", a.RatingDetails.StyleAffinity.Score)
		}
		if a.RatingDetails.GenreAffinity.Reason == "" {
			t.Error("reason dropped alongside malformed score")
		}
	})

	t.Run("strict mode rejects malformed score", func(t *testing.T) {
		reply := strings.ReplaceAll(wellFormedReply, `"score": 4.0`, `"score": "quite high"`)
		if _, err := DecodeAnalysis(reply, true); err == nil {
			t.Fatal("expected error in strict mode")
		}
	})

	t.Run("no JSON", func(t *testing.T) {
		if _, err := DecodeAnalysis("nope", false); !errors.Is(err, ErrNoJSON) {
			t.Errorf("error = %v, want ErrNoJSON", err)
		}
	})
}

func TestDecodeSuggestions(t *testing.T) {
	t.Run("three suggestions", func(t *testing.T) {
		reply := `Here you go: {"suggestions": [
			{"title": "Hyperion", "author": "Dan Simmons", "reason": "epico"},
			{"title": "Il problema dei tre corpi", "author": "Liu Cixin", "reason": "idee vaste"},
			{"title": "Anathem", "author": "Neal Stephenson", "reason": "denso"}
		]}`
		got, err := DecodeSuggestions(reply)
		if err != nil {
			t.Fatalf("DecodeSuggestions() error = %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].Title != "Hyperion" || got[0].Author != "Dan Simmons" {
			t.Errorf("first suggestion = %+v", got[0])
		}
		if got[0].BookDetails != nil {
			t.Error("bookDetails should start nil")
		}
	})

	t.Run("empty list is a format error", func(t *testing.T) {
		if _, err := DecodeSuggestions(`{"suggestions": []}`); !errors.Is(err, ErrNoJSON) {
			t.Errorf("error = %v, want ErrNoJSON", err)
		}
	})
}
