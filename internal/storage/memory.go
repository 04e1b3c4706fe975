package storage

import "sync"

// MemoryStore keeps the best score for the lifetime of the process only.
type MemoryStore struct {
	mu   sync.Mutex
	best int
}

func init() {
	Register(BackendMemory, func(Options) (Store, error) {
		return NewMemoryStore(), nil
	})
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Best returns the best score set during this process.
func (s *MemoryStore) Best() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, nil
}

// SetBest overwrites the best score.
func (s *MemoryStore) SetBest(score int) error {
	if _, err := formatBest(score); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = score
	return nil
}

// Reset forgets the best score.
func (s *MemoryStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = 0
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
