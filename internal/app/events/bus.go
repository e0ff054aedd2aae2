// Package events is the in-process publish/subscribe channel between the
// action orchestrator and its observers (stream pusher, logging).
package events

import (
	"sync"
	"time"
)

type Type string

const (
	TypeFeedStarted     Type = "feed_started"
	TypeFeedCompleted   Type = "feed_completed"
	TypeGroomed         Type = "groomed"
	TypePetted          Type = "petted"
	TypePurchase        Type = "purchase"
	TypeGiftSpawned     Type = "gift_spawned"
	TypeGiftClaimed     Type = "gift_claimed"
	TypeGameOver        Type = "game_over"
	TypeGameReset       Type = "game_reset"
	TypeLanguageChanged Type = "language_changed"
)

type Event struct {
	Type Type
	At   time.Time
	Data any
}

// Bus fans events out to subscribers synchronously, in subscription order.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Event)
	ids  []int
}

func NewBus() *Bus {
	return &Bus{subs: map[int]func(Event){}}
}

// Subscribe registers fn and returns its unsubscribe handle.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.ids = append(b.ids, id)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; !ok {
			return
		}
		delete(b.subs, id)
		for i, known := range b.ids {
			if known == id {
				b.ids = append(b.ids[:i], b.ids[i+1:]...)
				break
			}
		}
	}
}

func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.ids))
	for _, id := range b.ids {
		fns = append(fns, b.subs[id])
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(evt)
	}
}
