package security

import (
	"context"
	"sync"
)

// MemoryInvalidationStore : отозванные токены в памяти процесса.
// Записи не удаляются до перезапуска.
type MemoryInvalidationStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryInvalidationStore() *MemoryInvalidationStore {
	return &MemoryInvalidationStore{tokens: make(map[string]struct{})}
}

func (s *MemoryInvalidationStore) Add(_ context.Context, token string) error {
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *MemoryInvalidationStore) Contains(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok, nil
}
