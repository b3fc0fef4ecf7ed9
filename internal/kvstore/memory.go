package kvstore

import (
	"context"
	"sync"

	"fastlaundry/internal/domain"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an in-process Store. It is the fallback backend when
// no Postgres or Redis is configured, and the default in tests. State is
// lost on restart.
func NewMemory() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.values, key)
	return nil
}

func (s *memoryStore) Ping(_ context.Context) error {
	return nil
}
