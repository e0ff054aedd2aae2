package game

import (
	"context"
	"log"

	"horsekeep/internal/app/events"
	"horsekeep/internal/domain/horse"
)

// Feed starts the two-phase feed. Phase one runs synchronously: preconditions
// (carrots in stock, no eating in flight, satiety/cooldown clear) are checked
// and the carrot deducted under the store lock, so a rapid second call can
// never double-feed. Phase two is scheduled for the fixed eating duration and
// settles the feeding. There is no cancellation; a started feed always
// completes.
func (o *Orchestrator) Feed(ctx context.Context) bool {
	now := o.now()
	started := false
	o.Store.Update(func(s *horse.GameState) {
		started = s.BeginEating(now)
	})
	if !started {
		log.Printf("game: feed rejected")
		o.recordRejected("feed")
		return false
	}

	o.Sched.After(horse.EatingDuration, func() {
		o.finishFeed(context.Background())
	})
	o.publish(events.TypeFeedStarted, now, nil)
	return true
}

func (o *Orchestrator) finishFeed(ctx context.Context) {
	now := o.now()
	finished := false
	o.Store.Update(func(s *horse.GameState) {
		finished = s.FinishEating(now)
	})
	if !finished {
		return
	}
	o.recordSuccess("feed")
	o.persistState(ctx)
	o.publish(events.TypeFeedCompleted, now, nil)
}
