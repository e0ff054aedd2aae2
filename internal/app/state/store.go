// Package state owns the single mutable copy of the game state. The store is
// an explicitly injected container: the orchestrator mutates through Update,
// observers read isolated snapshots.
package state

import (
	"sync"
	"time"

	"horsekeep/internal/domain/horse"
)

type Store struct {
	mu    sync.RWMutex
	state horse.GameState
}

func NewStore(initial horse.GameState) *Store {
	return &Store{state: cloneState(initial)}
}

// Snapshot returns a deep copy; mutating it never touches the store.
func (s *Store) Snapshot() horse.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Update runs fn against the live state under the write lock.
func (s *Store) Update(fn func(*horse.GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Replace swaps the whole aggregate, used by load and reset.
func (s *Store) Replace(next horse.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneState(next)
}

func cloneState(in horse.GameState) horse.GameState {
	out := in
	out.Feeding.RecentFeedings = append([]time.Time(nil), in.Feeding.RecentFeedings...)
	out.GiftBoxes = append([]horse.GiftBox(nil), in.GiftBoxes...)
	out.Feeding.EatStart = cloneTime(in.Feeding.EatStart)
	out.Feeding.FullUntil = cloneTime(in.Feeding.FullUntil)
	out.Clock.StartedAt = cloneTime(in.Clock.StartedAt)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
