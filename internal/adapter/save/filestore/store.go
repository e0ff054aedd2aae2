// Package filestore persists save slots as JSON files under a data
// directory, for runs without a database.
package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"horsekeep/internal/app/ports"
)

type Store struct {
	mu      sync.Mutex
	dataDir string
}

func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.slotPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ports.ErrNoSave
		}
		return "", err
	}
	return string(data), nil
}

// Put writes through a temp file and rename so a crash mid-write never
// leaves a torn slot.
func (s *Store) Put(_ context.Context, key, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := s.slotPath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(payload), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Store) slotPath(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dataDir, safe+".json")
}
