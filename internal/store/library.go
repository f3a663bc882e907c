package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"booksnap/backend/internal/model"

	"github.com/google/uuid"
)

// ErrEntryNotFound means the library entry does not exist or belongs to
// another user.
var ErrEntryNotFound = errors.New("library entry not found")

// AddLibraryEntry inserts a book into a user's library and returns the
// generated entry ID. The recommendation, if present, is frozen as stored
// JSON.
func (db *DB) AddLibraryEntry(ctx context.Context, userID string, entry *model.LibraryEntry) (string, error) {
	id := uuid.New().String()

	authors, err := json.Marshal(entry.Authors)
	if err != nil {
		return "", err
	}
	categories, err := json.Marshal(entry.Categories)
	if err != nil {
		return "", err
	}
	var recommendation sql.NullString
	if entry.Recommendation != nil {
		data, err := json.Marshal(entry.Recommendation)
		if err != nil {
			return "", err
		}
		recommendation = sql.NullString{String: string(data), Valid: true}
	}

	status := entry.ReadingStatus
	if status == "" {
		status = model.StatusToRead
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO library_entries (
			id, user_id, title, authors, categories, description, thumbnail,
			published_date, page_count, isbn, reading_status, user_rating,
			user_review, review_date, recommendation, scanned_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, entry.Title, string(authors), string(categories),
		entry.Description, entry.Thumbnail, entry.PublishedDate,
		entry.PageCount, entry.ISBN, status, entry.UserRating,
		entry.UserReview, entry.ReviewDate, recommendation, entry.ScannedAt,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Library returns all of a user's library entries.
func (db *DB) Library(ctx context.Context, userID string) ([]model.LibraryEntry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, authors, categories, description, thumbnail,
		       published_date, page_count, isbn, reading_status, user_rating,
		       user_review, review_date, recommendation, scanned_at
		FROM library_entries
		WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.LibraryEntry{}
	for rows.Next() {
		var e model.LibraryEntry
		var authors, categories string
		var recommendation sql.NullString
		if err := rows.Scan(
			&e.ID, &e.Title, &authors, &categories, &e.Description,
			&e.Thumbnail, &e.PublishedDate, &e.PageCount, &e.ISBN,
			&e.ReadingStatus, &e.UserRating, &e.UserReview, &e.ReviewDate,
			&recommendation, &e.ScannedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(authors), &e.Authors); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(categories), &e.Categories); err != nil {
			return nil, err
		}
		if recommendation.Valid {
			e.Recommendation = &model.Analysis{}
			if err := json.Unmarshal([]byte(recommendation.String), e.Recommendation); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LibraryUpdate holds the user-editable fields of a library entry. Nil
// fields are left unchanged; the frozen recommendation is never touched.
type LibraryUpdate struct {
	ReadingStatus *string `json:"readingStatus,omitempty"`
	UserRating    *int    `json:"userRating,omitempty"`
	UserReview    *string `json:"userReview,omitempty"`
	ReviewDate    *string `json:"reviewDate,omitempty"`
}

// UpdateLibraryEntry applies a user edit to one library entry.
func (db *DB) UpdateLibraryEntry(ctx context.Context, userID, entryID string, update LibraryUpdate) error {
	set := ""
	args := []any{}
	appendSet := func(column string, value any) {
		if set != "" {
			set += ", "
		}
		set += column + " = ?"
		args = append(args, value)
	}

	if update.ReadingStatus != nil {
		appendSet("reading_status", *update.ReadingStatus)
	}
	if update.UserRating != nil {
		appendSet("user_rating", *update.UserRating)
	}
	if update.UserReview != nil {
		appendSet("user_review", *update.UserReview)
	}
	if update.ReviewDate != nil {
		appendSet("review_date", *update.ReviewDate)
	}
	if set == "" {
		return nil
	}

	args = append(args, entryID, userID)
	res, err := db.ExecContext(ctx,
		"UPDATE library_entries SET "+set+" WHERE id = ? AND user_id = ?",
		args...,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteLibraryEntry removes one entry from a user's library.
func (db *DB) DeleteLibraryEntry(ctx context.Context, userID, entryID string) error {
	res, err := db.ExecContext(ctx,
		"DELETE FROM library_entries WHERE id = ? AND user_id = ?",
		entryID, userID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
