package model

import "time"

// Review is one append-only bookstore review. Reviews are never edited or
// deleted once written.
type Review struct {
	ID          string    `json:"id"`
	BookstoreID string    `json:"bookstoreId"`
	UserID      string    `json:"userId"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
