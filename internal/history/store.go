// Package history persists which packages the user has already looked up.
// The report reads the full set once per run; only the `seen` subcommand
// writes.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS seen (
    name TEXT PRIMARY KEY,
    marked_at TIMESTAMP NOT NULL
);
`

// Store provides SQLite-backed access to the looked-up history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at dbPath.
// Use ":memory:" for in-memory databases (useful for testing).
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite only allows one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record is one looked-up package.
type Record struct {
	Name     string
	MarkedAt time.Time
}

// Mark records names as looked up, updating the timestamp for names already
// recorded.
func (s *Store) Mark(names []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, name := range names {
		_, err := tx.Exec(
			`INSERT INTO seen (name, marked_at) VALUES (?, ?)
			 ON CONFLICT(name) DO UPDATE SET marked_at = excluded.marked_at`,
			name, now)
		if err != nil {
			return fmt.Errorf("failed to record %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// Forget removes names from the history. Unknown names are ignored.
func (s *Store) Forget(names []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, name := range names {
		if _, err := tx.Exec("DELETE FROM seen WHERE name = ?", name); err != nil {
			return fmt.Errorf("failed to forget %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// Clear removes the entire history.
func (s *Store) Clear() (int, error) {
	res, err := s.db.Exec("DELETE FROM seen")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Names returns the looked-up set.
func (s *Store) Names() (map[string]struct{}, error) {
	rows, err := s.db.Query("SELECT name FROM seen")
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	names := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		names[name] = struct{}{}
	}
	return names, rows.Err()
}

// List returns all records sorted by name.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query("SELECT name, marked_at FROM seen ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.MarkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
