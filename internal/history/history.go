// Package history persists the query history in a small SQLite database so
// recent searches survive across runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// schemaVersion is bumped whenever the table layout changes. An older or
// newer on-disk schema is dropped and recreated; history is a convenience,
// not data worth migrating.
const schemaVersion = 1

// Entry is one recorded query.
type Entry struct {
	Query      string    `json:"query"`
	Matches    int       `json:"matches"`
	ExecutedAt time.Time `json:"executed_at"`
}

// Store is the history database handle.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to read history schema version: %w", err)
	}
	if version != 0 && version != schemaVersion {
		if _, err := s.db.Exec("DROP TABLE IF EXISTS history"); err != nil {
			return fmt.Errorf("failed to reset history schema: %w", err)
		}
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			query       TEXT NOT NULL,
			matches     INTEGER NOT NULL,
			executed_at TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	if err != nil {
		return fmt.Errorf("failed to set history schema version: %w", err)
	}
	return nil
}

// Append records one executed query with its match count.
func (s *Store) Append(query string, matches int) error {
	_, err := s.db.Exec(
		"INSERT INTO history (query, matches, executed_at) VALUES (?, ?, ?)",
		query, matches, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT query, matches, executed_at FROM history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.Query, &e.Matches, &at); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.ExecutedAt, _ = time.Parse(time.RFC3339, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
