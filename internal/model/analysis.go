package model

// AffinityScore is one scored dimension of the analysis. Score is always in
// [1.0, 5.0] when the upstream model behaves; malformed values coerce to 0.
type AffinityScore struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// RatingDetails holds the three orthogonal affinity dimensions.
type RatingDetails struct {
	PlotAffinity  AffinityScore `json:"plot_affinity"`
	StyleAffinity AffinityScore `json:"style_affinity"`
	GenreAffinity AffinityScore `json:"genre_affinity"`
}

// Analysis is the scoring result returned by the advisor. Field names follow
// the wire contract consumed by the app client.
type Analysis struct {
	RatingDetails   RatingDetails `json:"rating_details"`
	FinalRating     float64       `json:"final_rating"`
	ConfidenceLevel string        `json:"confidence_level"`
	OneSentenceHook string        `json:"one_sentence_hook"`
	PerfectForYouIf string        `json:"perfect_for_you_if"`
	DescriptionUsed string        `json:"description_used,omitempty"`
}

// Weights of the three affinity dimensions in the final rating.
const (
	PlotWeight  = 0.5
	StyleWeight = 0.3
	GenreWeight = 0.2
)

// WeightedRating computes the 50/30/20 weighted mean of the three scores,
// rounded to one decimal.
func (d RatingDetails) WeightedRating() float64 {
	v := PlotWeight*d.PlotAffinity.Score + StyleWeight*d.StyleAffinity.Score + GenreWeight*d.GenreAffinity.Score
	return float64(int(v*10+0.5)) / 10
}

// Suggestion is one discovery result. BookDetails is nil when the catalog
// lookup for the suggested title failed or found nothing.
type Suggestion struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Reason      string `json:"reason"`
	BookDetails *Book  `json:"bookDetails"`
}
