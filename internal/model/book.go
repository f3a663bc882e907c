package model

// Book is a normalized record for a catalog item, built from a Google Books
// volume lookup. It is never mutated after construction.
type Book struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Description   string   `json:"description,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	PageCount     int      `json:"pageCount,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
}

// FirstAuthor returns the primary author, or an empty string.
func (b *Book) FirstAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	return b.Authors[0]
}

// TasteProfile holds the reader's declared preferences. The advisor treats
// these as secondary evidence relative to the rated reading history.
type TasteProfile struct {
	FavoriteGenres []string `json:"favoriteGenres,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Vibes          []string `json:"vibes,omitempty"`
}

// HistoryEntry is one previously read book. Only entries with a rating
// (1..5) count as signal for the learned taste profile.
type HistoryEntry struct {
	Title      string `json:"title"`
	UserRating int    `json:"userRating,omitempty"`
}

// Reading status values for a library entry.
const (
	StatusToRead  = "to-read"
	StatusReading = "reading"
	StatusRead    = "read"
)

// LibraryEntry is a Book plus the owning user's annotations. The
// recommendation captured at add time is frozen historical metadata.
type LibraryEntry struct {
	Book
	ReadingStatus  string    `json:"readingStatus,omitempty"`
	UserRating     int       `json:"userRating,omitempty"`
	UserReview     string    `json:"userReview,omitempty"`
	ReviewDate     string    `json:"reviewDate,omitempty"`
	Recommendation *Analysis `json:"recommendation,omitempty"`
	ScannedAt      string    `json:"scannedAt,omitempty"`
}

// ToHistory projects a library entry onto the reading-history shape used by
// scoring prompts.
func (e *LibraryEntry) ToHistory() HistoryEntry {
	return HistoryEntry{Title: e.Title, UserRating: e.UserRating}
}
