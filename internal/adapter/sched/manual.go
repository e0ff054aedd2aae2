package sched

import (
	"sort"
	"sync"
	"time"
)

// Manual is a virtual-clock scheduler. Nothing fires until Advance moves the
// clock past a timer's due time; callbacks run on the advancing goroutine in
// due order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	timers map[int]*manualTimer
}

type manualTimer struct {
	id  int
	due time.Time
	fn  func()
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start, timers: map[int]*manualTimer{}}
}

func (m *Manual) After(d time.Duration, fn func()) (cancel func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.timers[id] = &manualTimer{id: id, due: m.now.Add(d), fn: fn}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.timers, id)
	}
}

// Now is the virtual clock reading, suitable as an Orchestrator Now field.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward and fires every timer that comes due,
// setting the clock to each timer's due time while its callback runs so the
// callback observes the moment it was scheduled for.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		timer := m.popDueBefore(target)
		if timer == nil {
			break
		}
		timer.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

func (m *Manual) popDueBefore(target time.Time) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	due := make([]*manualTimer, 0, len(m.timers))
	for _, timer := range m.timers {
		if !timer.due.After(target) {
			due = append(due, timer)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	next := due[0]
	delete(m.timers, next.id)
	if next.due.After(m.now) {
		m.now = next.due
	}
	return next
}
