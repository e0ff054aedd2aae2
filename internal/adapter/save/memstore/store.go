// Package memstore is the in-memory save store, used by tests and the
// ephemeral backend.
package memstore

import (
	"context"
	"sync"

	"horsekeep/internal/app/ports"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *Store {
	return &Store{data: map[string]string{}}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.data[key]
	if !ok {
		return "", ports.ErrNoSave
	}
	return payload, nil
}

func (s *Store) Put(_ context.Context, key, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = payload
	return nil
}
