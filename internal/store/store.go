// Package store persists reviews and per-user library entries in SQLite,
// standing in for the app's cloud document database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle.
type DB struct {
	*sql.DB
}

// Open creates the database connection and initializes the schema.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	d := &DB{db}
	if err := d.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return d, nil
}

func (db *DB) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS reviews (
			id TEXT PRIMARY KEY,
			bookstore_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			rating INTEGER NOT NULL,
			text TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_reviews_bookstore
			ON reviews(bookstore_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS library_entries (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			authors TEXT NOT NULL DEFAULT '[]',
			categories TEXT NOT NULL DEFAULT '[]',
			description TEXT NOT NULL DEFAULT '',
			thumbnail TEXT NOT NULL DEFAULT '',
			published_date TEXT NOT NULL DEFAULT '',
			page_count INTEGER NOT NULL DEFAULT 0,
			isbn TEXT NOT NULL DEFAULT '',
			reading_status TEXT NOT NULL DEFAULT 'to-read',
			user_rating INTEGER NOT NULL DEFAULT 0,
			user_review TEXT NOT NULL DEFAULT '',
			review_date TEXT NOT NULL DEFAULT '',
			recommendation TEXT,
			scanned_at TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_library_user
			ON library_entries(user_id);
	`

	_, err := db.Exec(schema)
	return err
}
