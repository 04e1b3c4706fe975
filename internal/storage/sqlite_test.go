package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "best.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "best.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteOpenEmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Error("empty path should be rejected")
	}
}

func TestSQLiteOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := OpenSQLite("~/.runner/best.db")
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".runner", "best.db")); err != nil {
		t.Errorf("database should live under HOME: %v", err)
	}
}

func TestSQLiteEmptyBest(t *testing.T) {
	store := openTestSQLite(t)

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Best() = %d, expected 0 on a fresh database", best)
	}
}

func TestSQLiteSetAndReset(t *testing.T) {
	store := openTestSQLite(t)

	for _, score := range []int{12, 40, 7} {
		if err := store.SetBest(score); err != nil {
			t.Fatalf("SetBest(%d) failed: %v", score, err)
		}
	}

	// Last write wins; merging is the caller's job
	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("Best() = %d, expected 7", best)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if best, _ := store.Best(); best != 0 {
		t.Errorf("Best() after Reset = %d, expected 0", best)
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "best.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := store.SetBest(99); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	store.Close()

	store, err = OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if best, err := store.Best(); err != nil || best != 99 {
		t.Errorf("Best() = %d, %v; expected 99", best, err)
	}
}

func TestSQLiteMalformedValue(t *testing.T) {
	tests := []string{"abc", "-5", "12.5"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			store := openTestSQLite(t)
			if _, err := store.db.Exec("INSERT INTO best_score (slot, value) VALUES (?, ?)", bestSlot, raw); err != nil {
				t.Fatal(err)
			}

			_, err := store.Best()
			if !errors.Is(err, ErrMalformedBest) {
				t.Errorf("Best() error = %v, expected ErrMalformedBest", err)
			}
		})
	}
}

func TestSQLiteRejectsNegative(t *testing.T) {
	store := openTestSQLite(t)
	if err := store.SetBest(-1); err == nil {
		t.Error("negative best score should be rejected")
	}
}
