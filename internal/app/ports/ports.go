package ports

import (
	"context"
	"time"
)

// SaveStore is the string key-value medium the persistence gateway writes
// snapshots to. Get returns ErrNoSave when the key holds nothing.
type SaveStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, payload string) error
}

// Scheduler runs fn once after d. The returned cancel stops a pending run.
// The feed suspension is driven through this so tests can advance a virtual
// clock instead of sleeping.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// ActionMetrics records action outcomes for the KPI endpoint.
type ActionMetrics interface {
	RecordSuccess(action string)
	RecordRejected(action string)
	RecordFailure(action string)
}
