package workout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Store is the in-memory collection of logged sessions. Every mutation
// writes the full list through the repository before returning.
type Store struct {
	repo    Repository
	logger  *slog.Logger
	mu      sync.RWMutex
	entries []Entry
}

// NewStore creates an empty store backed by repo.
func NewStore(repo Repository, logger *slog.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// Load replaces the in-memory list with the persisted snapshot. A failed
// read leaves the store empty and is returned for reporting only.
func (s *Store) Load(ctx context.Context) error {
	entries, err := s.repo.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.entries = nil
		if s.logger != nil {
			s.logger.Warn("failed to load entries, starting empty", "error", err)
		}
		return fmt.Errorf("loading entries: %w", err)
	}
	s.entries = entries
	return nil
}

// Append adds entry to the front of the list.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)
	s.entries = next
	return s.persistLocked(ctx)
}

// Remove deletes the entry with id. It reports whether an entry was removed;
// removing an unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	next := make([]Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)
	s.entries = next
	return true, s.persistLocked(ctx)
}

// Clear empties the collection and returns how many entries it held.
func (s *Store) Clear(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.entries)
	s.entries = nil
	return removed, s.persistLocked(ctx)
}

// List returns a snapshot of the entries in store order.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) persistLocked(ctx context.Context) error {
	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	if err := s.repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}
