// Package game is the action orchestrator: the single authoritative entry
// point for every player- or time-initiated state transition. It owns the
// store, enforces the invariants, and sequences the side effects
// (persistence, event publication, metrics).
package game

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"horsekeep/internal/app/events"
	"horsekeep/internal/app/persist"
	"horsekeep/internal/app/ports"
	"horsekeep/internal/app/state"
)

type Orchestrator struct {
	Store   *state.Store
	Saves   persist.Gateway
	Bus     *events.Bus
	Metrics ports.ActionMetrics
	Sched   ports.Scheduler
	Now     func() time.Time
	Roll    func() float64

	mu            sync.Mutex
	lastGiftCheck int64
}

func (o *Orchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *Orchestrator) roll() float64 {
	if o.Roll != nil {
		return o.Roll()
	}
	return rand.Float64()
}

// AutoSave persists the current state. The server's game loop calls it on
// a fixed interval; actions persist through persistState themselves.
func (o *Orchestrator) AutoSave(ctx context.Context) {
	o.persistState(ctx)
}

// persistState is fire-and-forget: a failed save costs persistence, never
// the running session.
func (o *Orchestrator) persistState(ctx context.Context) {
	if err := o.Saves.Save(ctx, o.Store.Snapshot()); err != nil {
		log.Printf("game: save failed: %v", err)
		o.recordFailure("save")
	}
}

func (o *Orchestrator) publish(eventType events.Type, at time.Time, data any) {
	if o.Bus == nil {
		return
	}
	o.Bus.Publish(events.Event{Type: eventType, At: at, Data: data})
}

func (o *Orchestrator) recordSuccess(action string) {
	if o.Metrics != nil {
		o.Metrics.RecordSuccess(action)
	}
}

func (o *Orchestrator) recordRejected(action string) {
	if o.Metrics != nil {
		o.Metrics.RecordRejected(action)
	}
}

func (o *Orchestrator) recordFailure(action string) {
	if o.Metrics != nil {
		o.Metrics.RecordFailure(action)
	}
}
