package store

import (
	"context"
	"time"

	"booksnap/backend/internal/model"

	"github.com/google/uuid"
)

// AddReview appends a review and returns its generated ID. Reviews are
// immutable once written.
func (db *DB) AddReview(ctx context.Context, bookstoreID, userID string, rating int, text string) (string, error) {
	id := uuid.New().String()
	_, err := db.ExecContext(ctx, `
		INSERT INTO reviews (id, bookstore_id, user_id, rating, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, bookstoreID, userID, rating, text, time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ReviewsForBookstore returns a bookstore's reviews, newest first.
func (db *DB) ReviewsForBookstore(ctx context.Context, bookstoreID string) ([]model.Review, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, bookstore_id, user_id, rating, text, created_at
		FROM reviews
		WHERE bookstore_id = ?
		ORDER BY created_at DESC`,
		bookstoreID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.BookstoreID, &r.UserID, &r.Rating, &r.Text, &r.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
