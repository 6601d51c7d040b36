package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/switchyard/pkg/domain"
)

// Store implements ports.CursorStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Cursor
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Cursor),
	}
}

// Save persists a copy of the cursor, so later mutations by the caller are not visible.
func (s *Store) Save(ctx context.Context, sessionID string, cursor *domain.Cursor) error {
	copied := cursor.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = copied
	return nil
}

// Load retrieves a copy of the cursor.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Cursor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cursor, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cursor.Clone(), nil
}

// Delete removes the cursor.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active sessions, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	sort.Strings(sessions)
	return sessions, nil
}
