package game

import (
	"context"
	"sync"
	"time"

	"horsekeep/internal/adapter/sched"
	"horsekeep/internal/app/events"
	"horsekeep/internal/app/persist"
	"horsekeep/internal/app/ports"
	"horsekeep/internal/app/state"
	"horsekeep/internal/domain/horse"
)

type stubSaveStore struct {
	mu     sync.Mutex
	values map[string]string
	puts   int
}

func newStubSaveStore() *stubSaveStore {
	return &stubSaveStore{values: map[string]string{}}
}

func (s *stubSaveStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", ports.ErrNoSave
	}
	return value, nil
}

func (s *stubSaveStore) Put(_ context.Context, key, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = payload
	s.puts++
	return nil
}

type stubMetrics struct {
	mu       sync.Mutex
	success  map[string]int
	rejected map[string]int
	failure  map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{
		success:  map[string]int{},
		rejected: map[string]int{},
		failure:  map[string]int{},
	}
}

func (m *stubMetrics) RecordSuccess(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.success[action]++
}

func (m *stubMetrics) RecordRejected(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[action]++
}

func (m *stubMetrics) RecordFailure(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure[action]++
}

type testRig struct {
	orch    *Orchestrator
	clock   *sched.Manual
	store   *stubSaveStore
	metrics *stubMetrics
	bus     *events.Bus
}

// newTestRig wires an orchestrator onto a fresh initial state, a virtual
// clock for both Now and the feed scheduler, and stub persistence/metrics.
func newTestRig(start time.Time) *testRig {
	clock := sched.NewManual(start)
	saveStore := newStubSaveStore()
	metrics := newStubMetrics()
	bus := events.NewBus()
	orch := &Orchestrator{
		Store:   state.NewStore(horse.NewGameState(start)),
		Saves:   persist.Gateway{Store: saveStore, Now: clock.Now},
		Bus:     bus,
		Metrics: metrics,
		Sched:   clock,
		Now:     clock.Now,
	}
	return &testRig{orch: orch, clock: clock, store: saveStore, metrics: metrics, bus: bus}
}

// feedAndFinish runs one full feed: phase one plus enough virtual time for
// phase two to settle.
func (r *testRig) feedAndFinish(ctx context.Context) bool {
	if !r.orch.Feed(ctx) {
		return false
	}
	r.clock.Advance(horse.EatingDuration)
	return true
}
