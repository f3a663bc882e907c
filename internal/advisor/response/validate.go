package response

import (
	"fmt"
	"math"

	"booksnap/backend/internal/model"
)

// FieldIssue names one schema problem in a parsed analysis. Issues are
// reported individually so model drift is debuggable from logs.
type FieldIssue struct {
	Field   string
	Problem string
}

func (i FieldIssue) String() string {
	return i.Field + ": " + i.Problem
}

var confidenceLevels = map[string]bool{
	"Molto Alta": true,
	"Alta":       true,
	"Media":      true,
	"Bassa":      true,
}

// CheckAnalysis reports every field of a parsed analysis that violates the
// scoring contract. A non-empty result is a quality signal, not a failure:
// coerced zeroes and drifted confidence labels are returned to the caller
// regardless.
func CheckAnalysis(a *model.Analysis) []FieldIssue {
	var issues []FieldIssue

	checkScore := func(field string, score float64) {
		if score < 1.0 || score > 5.0 {
			issues = append(issues, FieldIssue{
				Field:   field,
				Problem: fmt.Sprintf("score %.2f outside [1.0, 5.0]", score),
			})
		}
	}
	checkScore("rating_details.plot_affinity.score", a.RatingDetails.PlotAffinity.Score)
	checkScore("rating_details.style_affinity.score", a.RatingDetails.StyleAffinity.Score)
	checkScore("rating_details.genre_affinity.score", a.RatingDetails.GenreAffinity.Score)
	checkScore("final_rating", a.FinalRating)

	if expected := a.RatingDetails.WeightedRating(); math.Abs(expected-a.FinalRating) > 0.05+1e-9 {
		issues = append(issues, FieldIssue{
			Field:   "final_rating",
			Problem: fmt.Sprintf("%.1f does not match weighted mean %.1f", a.FinalRating, expected),
		})
	}

	if !confidenceLevels[a.ConfidenceLevel] {
		issues = append(issues, FieldIssue{
			Field:   "confidence_level",
			Problem: fmt.Sprintf("unknown level %q", a.ConfidenceLevel),
		})
	}

	return issues
}
