// Package response turns free-text model output into typed results. The
// upstream model is non-deterministic: replies may carry Markdown code
// fences, commentary around the JSON object, or scores formatted as strings.
// Extraction and schema validation are separate stages so a failure reports
// which one broke.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"booksnap/backend/internal/model"
)

// ErrNoJSON is returned when the model reply contains no parseable JSON
// object.
var ErrNoJSON = errors.New("no JSON object found in model response")

// ExtractJSON returns the first balanced {...} span in text. The scan is
// string-aware so braces inside JSON string values do not end the span.
func ExtractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSON
}

// flexFloat unmarshals a JSON number or a numeric string. Anything else
// records a coercion failure and yields zero, so one malformed leaf never
// invalidates an otherwise-valid response.
type flexFloat struct {
	Value float64
	Bad   bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = n
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			f.Value = n
			return nil
		}
	}
	f.Bad = true
	return nil
}

type rawAffinity struct {
	Score  flexFloat `json:"score"`
	Reason string    `json:"reason"`
}

type rawAnalysis struct {
	RatingDetails struct {
		PlotAffinity  rawAffinity `json:"plot_affinity"`
		StyleAffinity rawAffinity `json:"style_affinity"`
		GenreAffinity rawAffinity `json:"genre_affinity"`
	} `json:"rating_details"`
	FinalRating     flexFloat `json:"final_rating"`
	ConfidenceLevel string    `json:"confidence_level"`
	OneSentenceHook string    `json:"one_sentence_hook"`
	PerfectForYouIf string    `json:"perfect_for_you_if"`
}

// DecodeAnalysis extracts and parses an Analysis from raw model text. In
// strict mode a malformed score leaf is an error; otherwise it coerces to 0
// and the response shape stays complete.
func DecodeAnalysis(text string, strict bool) (*model.Analysis, error) {
	span, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}

	if strict {
		for _, f := range []struct {
			name  string
			value flexFloat
		}{
			{"rating_details.plot_affinity.score", raw.RatingDetails.PlotAffinity.Score},
			{"rating_details.style_affinity.score", raw.RatingDetails.StyleAffinity.Score},
			{"rating_details.genre_affinity.score", raw.RatingDetails.GenreAffinity.Score},
			{"final_rating", raw.FinalRating},
		} {
			if f.value.Bad {
				return nil, fmt.Errorf("malformed numeric field %q in model response", f.name)
			}
		}
	}

	return &model.Analysis{
		RatingDetails: model.RatingDetails{
			PlotAffinity:  model.AffinityScore{Score: raw.RatingDetails.PlotAffinity.Score.Value, Reason: raw.RatingDetails.PlotAffinity.Reason},
			StyleAffinity: model.AffinityScore{Score: raw.RatingDetails.StyleAffinity.Score.Value, Reason: raw.RatingDetails.StyleAffinity.Reason},
			GenreAffinity: model.AffinityScore{Score: raw.RatingDetails.GenreAffinity.Score.Value, Reason: raw.RatingDetails.GenreAffinity.Reason},
		},
		FinalRating:     raw.FinalRating.Value,
		ConfidenceLevel: raw.ConfidenceLevel,
		OneSentenceHook: raw.OneSentenceHook,
		PerfectForYouIf: raw.PerfectForYouIf,
	}, nil
}

type rawSuggestion struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

// DecodeSuggestions extracts and parses discovery suggestions from raw model
// text.
func DecodeSuggestions(text string) ([]model.Suggestion, error) {
	span, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Suggestions []rawSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	if len(raw.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: empty suggestions", ErrNoJSON)
	}

	suggestions := make([]model.Suggestion, len(raw.Suggestions))
	for i, s := range raw.Suggestions {
		suggestions[i] = model.Suggestion{Title: s.Title, Author: s.Author, Reason: s.Reason}
	}
	return suggestions, nil
}
