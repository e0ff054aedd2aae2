package inmemory

import "sync"

type ActionCounts struct {
	Success  uint64 `json:"success"`
	Rejected uint64 `json:"rejected"`
	Failure  uint64 `json:"failure"`
}

type Snapshot struct {
	ActionTotal    uint64                  `json:"action_total"`
	ActionSuccess  uint64                  `json:"action_success"`
	ActionRejected uint64                  `json:"action_rejected"`
	ActionFailure  uint64                  `json:"action_failure"`
	ByAction       map[string]ActionCounts `json:"by_action"`
}

type Recorder struct {
	mu       sync.Mutex
	byAction map[string]*ActionCounts
}

func NewRecorder() *Recorder {
	return &Recorder{byAction: map[string]*ActionCounts{}}
}

func (r *Recorder) RecordSuccess(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts(action).Success++
}

func (r *Recorder) RecordRejected(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts(action).Rejected++
}

func (r *Recorder) RecordFailure(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts(action).Failure++
}

func (r *Recorder) counts(action string) *ActionCounts {
	c, ok := r.byAction[action]
	if !ok {
		c = &ActionCounts{}
		r.byAction[action] = c
	}
	return c
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{ByAction: make(map[string]ActionCounts, len(r.byAction))}
	for action, c := range r.byAction {
		out.ByAction[action] = *c
		out.ActionSuccess += c.Success
		out.ActionRejected += c.Rejected
		out.ActionFailure += c.Failure
	}
	out.ActionTotal = out.ActionSuccess + out.ActionRejected + out.ActionFailure
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
