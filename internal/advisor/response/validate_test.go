package response

import (
	"strings"
	"testing"

	"booksnap/backend/internal/model"
)

func validAnalysis() *model.Analysis {
	return &model.Analysis{
		RatingDetails: model.RatingDetails{
			PlotAffinity:  model.AffinityScore{Score: 4.5, Reason: "a"},
			StyleAffinity: model.AffinityScore{Score: 4.5, Reason: "b"},
			GenreAffinity: model.AffinityScore{Score: 4.0, Reason: "c"},
		},
		FinalRating:     4.4, // 0.5*4.5 + 0.3*4.5 + 0.2*4.0
		ConfidenceLevel: "Alta",
	}
}

func TestCheckAnalysis(t *testing.T) {
	t.Run("clean analysis has no issues", func(t *testing.T) {
		if issues := CheckAnalysis(validAnalysis()); len(issues) != 0 {
			t.Errorf("unexpected issues: %v", issues)
		}
	})

	t.Run("out of range score is reported by field", func(t *testing.T) {
		a := validAnalysis()
		a.RatingDetails.GenreAffinity.Score = 0
		issues := CheckAnalysis(a)
		found := false
		for _, i := range issues {
			if strings.Contains(i.Field, "genre_affinity") {
				found = true
			}
		}
		if !found {
			t.Errorf("genre issue not reported: %v", issues)
		}
	})

	t.Run("weighted mean mismatch", func(t *testing.T) {
		a := validAnalysis()
		a.FinalRating = 2.0
		issues := CheckAnalysis(a)
		if len(issues) == 0 {
			t.Fatal("expected mismatch issue")
		}
	})

	t.Run("unknown confidence level", func(t *testing.T) {
		a := validAnalysis()
		a.ConfidenceLevel = "Very High"
		issues := CheckAnalysis(a)
		found := false
		for _, i := range issues {
			if i.Field == "confidence_level" {
				found = true
			}
		}
		if !found {
			t.Errorf("confidence issue not reported: %v", issues)
		}
	})
}

func TestWeightedRating(t *testing.T) {
	cases := []struct {
		plot, style, genre float64
		want               float64
	}{
		{4.5, 4.5, 4.0, 4.4},
		{5.0, 5.0, 5.0, 5.0},
		{1.0, 1.0, 1.0, 1.0},
		{3.0, 4.0, 2.0, 3.1},
		{4.9, 3.3, 2.1, 3.9}, // 2.45+0.99+0.42 = 3.86 → 3.9
	}
	for _, tc := range cases {
		d := model.RatingDetails{
			PlotAffinity:  model.AffinityScore{Score: tc.plot},
			StyleAffinity: model.AffinityScore{Score: tc.style},
			GenreAffinity: model.AffinityScore{Score: tc.genre},
		}
		if got := d.WeightedRating(); got != tc.want {
			t.Errorf("WeightedRating(%v, %v, %v) = %v, want %v", tc.plot, tc.style, tc.genre, got, tc.want)
		}
	}
}
