package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// bestSlot is the key of the single best-score row.
const bestSlot = "best"

// SQLiteStore keeps the best score in a one-row SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

func init() {
	Register(BackendSQLite, func(opts Options) (Store, error) {
		return OpenSQLite(opts.Path)
	})
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// The value column is TEXT on purpose: whatever ended up in the slot is
// read back verbatim and validated by parseBest.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_score (
			slot TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Best returns the stored best score, or 0 if none was saved yet.
func (s *SQLiteStore) Best() (int, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM best_score WHERE slot = ?", bestSlot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return parseBest(raw)
}

// SetBest overwrites the best score.
func (s *SQLiteStore) SetBest(score int) error {
	value, err := formatBest(score)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO best_score (slot, value) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		bestSlot, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Reset deletes the stored best score.
func (s *SQLiteStore) Reset() error {
	if _, err := s.db.Exec("DELETE FROM best_score WHERE slot = ?", bestSlot); err != nil {
		return fmt.Errorf("storage: cannot reset best score: %w", err)
	}
	return nil
}
