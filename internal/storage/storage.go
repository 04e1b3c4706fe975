// Package storage persists the runner's best score.
//
// The best score is a single integer slot. Backends register themselves in
// init() functions and are opened by name, so the CLI can pick one with a
// flag: "sqlite" (default, pure-Go modernc.org/sqlite driver), "gdata"
// (per-user application data directory) and "memory" (nothing persisted).
package storage

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendGdata  = "gdata"
	BackendMemory = "memory"
)

var (
	// ErrMalformedBest is returned when the stored value is not a
	// non-negative integer.
	ErrMalformedBest = errors.New("storage: malformed best score")

	// ErrUnknownBackend is returned by Open for unregistered backend names.
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// Store is a best-score slot. It satisfies runner.BestStore.
type Store interface {
	// Best returns the stored best score, 0 if nothing was stored yet.
	Best() (int, error)
	// SetBest overwrites the stored best score.
	SetBest(score int) error
	// Reset forgets the stored best score.
	Reset() error
	// Close releases the backend's resources.
	Close() error
}

// Options configures a backend. Each backend reads the fields it needs.
type Options struct {
	Path    string // SQLite database file; "~" expands to the home directory
	AppName string // gdata application name
}

// Opener creates a store from options.
type Opener func(opts Options) (Store, error)

var (
	openers = make(map[string]Opener)
	mu      sync.RWMutex
)

// Register adds a backend. Typically called from a backend's init().
// Panics if a backend with the same name is already registered.
func Register(name string, open Opener) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := openers[name]; exists {
		panic(fmt.Sprintf("storage: backend %q already registered", name))
	}
	openers[name] = open
}

// Open creates a store using the named backend.
func Open(name string, opts Options) (Store, error) {
	mu.RLock()
	open, ok := openers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return open(opts)
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseBest decodes a stored value. Empty means nothing stored.
func parseBest(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedBest, raw)
	}
	return n, nil
}

// formatBest encodes a score for storage.
func formatBest(score int) (string, error) {
	if score < 0 {
		return "", fmt.Errorf("storage: negative best score %d", score)
	}
	return strconv.Itoa(score), nil
}
