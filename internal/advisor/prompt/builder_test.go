package prompt

import (
	"strings"
	"testing"

	"booksnap/backend/internal/model"
)

func TestFormatHistory(t *testing.T) {
	t.Run("sorted most-loved first", func(t *testing.T) {
		history := []model.HistoryEntry{
			{Title: "Meh Book", UserRating: 2},
			{Title: "Great Book", UserRating: 5},
			{Title: "Fine Book", UserRating: 3},
		}
		got := FormatHistory(history)
		lines := strings.Split(got, "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines: %q", len(lines), got)
		}
		if lines[0] != `- "Great Book" (Valutazione: 5/5)` {
			t.Errorf("first line = %q", lines[0])
		}
		if lines[2] != `- "Meh Book" (Valutazione: 2/5)` {
			t.Errorf("last line = %q", lines[2])
		}
	})

	t.Run("unrated entries dropped", func(t *testing.T) {
		history := []model.HistoryEntry{
			{Title: "Rated", UserRating: 4},
			{Title: "Unrated"},
		}
		got := FormatHistory(history)
		if strings.Contains(got, "Unrated") {
			t.Errorf("unrated entry kept: %q", got)
		}
	})

	t.Run("empty history yields marker", func(t *testing.T) {
		if got := FormatHistory(nil); got != NoRatedHistory {
			t.Errorf("got %q", got)
		}
		if got := FormatHistory([]model.HistoryEntry{{Title: "Unrated"}}); got != NoRatedHistory {
			t.Errorf("got %q", got)
		}
	})

	t.Run("stable order among equal ratings", func(t *testing.T) {
		history := []model.HistoryEntry{
			{Title: "First", UserRating: 4},
			{Title: "Second", UserRating: 4},
		}
		got := FormatHistory(history)
		if strings.Index(got, "First") > strings.Index(got, "Second") {
			t.Errorf("equal ratings reordered: %q", got)
		}
	})
}

func TestBuildAnalysisPrompt(t *testing.T) {
	b := NewBuilder()
	book := &model.Book{
		Title:      "Dune",
		Categories: []string{"Science Fiction"},
	}
	prefs := &model.TasteProfile{
		FavoriteGenres: []string{"Fantascienza"},
		Bio:            "mi piacciono le storie epiche",
	}
	history := []model.HistoryEntry{{Title: "Foundation", UserRating: 5}}

	got := b.BuildAnalysisPrompt(book, prefs, history, "Un pianeta deserto")

	for _, want := range []string{
		"Dune",
		"Science Fiction",
		"Fantascienza",
		"mi piacciono le storie epiche",
		`- "Foundation" (Valutazione: 5/5)`,
		"Un pianeta deserto",
		"Affinità Tematica: 50%",
		"Affinità di Stile: 30%",
		"Affinità di Genere: 20%",
		`"rating_details"`,
		`"final_rating"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	// Vibes were not supplied, the placeholder must appear.
	if !strings.Contains(got, NotSpecifiedVibes) {
		t.Error("missing vibes placeholder")
	}
}

func TestBuildDiscoveryPrompt(t *testing.T) {
	b := NewBuilder()
	prefs := &model.TasteProfile{Vibes: []string{"malinconico", "lento"}}

	got := b.BuildDiscoveryPrompt(prefs, nil)

	if !strings.Contains(got, "malinconico, lento") {
		t.Error("vibes not rendered")
	}
	if !strings.Contains(got, NoRatedHistory) {
		t.Error("missing no-history marker")
	}
	if !strings.Contains(got, `"suggestions"`) {
		t.Error("missing suggestions output contract")
	}
	if !strings.Contains(got, NotSpecified) || !strings.Contains(got, NotSpecifiedBio) {
		t.Error("missing placeholders for absent genres/bio")
	}
}

func TestBuildEnrichmentPrompt(t *testing.T) {
	b := NewBuilder()
	book := &model.Book{Title: "Dune", Authors: []string{"Frank Herbert", "Other"}}

	got := b.BuildEnrichmentPrompt(book)

	if !strings.Contains(got, "Dune Frank Herbert") {
		t.Errorf("query missing title+first author: %q", got)
	}
	if strings.Contains(got, "Other") {
		t.Error("query should use only the first author")
	}

	// No author at all still yields a clean query.
	got = b.BuildEnrichmentPrompt(&model.Book{Title: "Anonimo"})
	if !strings.Contains(got, "libro Anonimo.") {
		t.Errorf("trailing space not trimmed: %q", got)
	}
}
