package cache

import (
	"context"
	"sync"

	"github.com/samasante/backend/internal/domain/entities"
	"github.com/samasante/backend/internal/domain/providers"
)

// MemoryStore keeps remedy entries in process memory for the life of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]entities.Remedy
}

// NewMemoryStore creates an empty in-memory remedy store
func NewMemoryStore() providers.RemedyStore {
	return &MemoryStore{entries: make(map[string][]entities.Remedy)}
}

// Get returns a copy of the entry for key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]entities.Remedy, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	remedies, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return entities.CloneRemedies(remedies), true, nil
}

// Set stores a copy of remedies under key
func (s *MemoryStore) Set(ctx context.Context, key string, remedies []entities.Remedy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entities.CloneRemedies(remedies)
	return nil
}

// Clear drops every entry
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string][]entities.Remedy)
	return nil
}
