package game

import (
	"context"
	"errors"
	"log"
	"time"

	"horsekeep/internal/app/events"
	"horsekeep/internal/app/ports"
	"horsekeep/internal/domain/gametime"
	"horsekeep/internal/domain/horse"
)

var decay horse.DecayService

// ApplyDecay lowers the meters for the elapsed interval and runs the
// game-over check. Zero elapsed is a no-op.
func (o *Orchestrator) ApplyDecay(ctx context.Context, elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	now := o.now()
	o.Store.Update(func(s *horse.GameState) {
		s.Horse = decay.Apply(s.Horse, elapsed)
		s.UpdatedAt = now
	})
	o.CheckGameOver(ctx)
}

// CheckGameOver flips the game-over flag exactly once when all meters reach
// zero. Further checks while already over are no-ops; only a reset clears it.
func (o *Orchestrator) CheckGameOver(ctx context.Context) bool {
	now := o.now()
	became := false
	o.Store.Update(func(s *horse.GameState) {
		became = s.MarkGameOver(now)
	})
	if !became {
		return false
	}
	log.Printf("game: game over, all meters depleted")
	o.persistState(ctx)
	o.publish(events.TypeGameOver, now, nil)
	return true
}

// ResetGame restores the initial state, restarts the session clock and
// persists immediately. The locale survives the reset.
func (o *Orchestrator) ResetGame(ctx context.Context) {
	now := o.now()
	language := o.Store.Snapshot().Language
	fresh := horse.NewGameState(now)
	fresh.Language = language
	o.Store.Replace(fresh)
	o.resetGiftCheck(0)
	o.persistState(ctx)
	o.publish(events.TypeGameReset, now, nil)
}

// Bootstrap seeds the store from the save slot. A missing or invalid save
// starts a fresh game; a valid one is replayed with offline decay for the
// time away, then re-checked for game over.
func (o *Orchestrator) Bootstrap(ctx context.Context) error {
	now := o.now()
	loaded, elapsed, err := o.Saves.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNoSave) {
			return err
		}
		o.Store.Replace(horse.NewGameState(now))
		o.resetGiftCheck(0)
		o.persistState(ctx)
		return nil
	}

	if loaded.Clock.StartedAt == nil {
		startedAt := now
		loaded.Clock.StartedAt = &startedAt
	}
	o.Store.Replace(loaded)
	o.ApplyDecay(ctx, elapsed)
	o.resetGiftCheck(o.ElapsedSeconds())
	o.persistState(ctx)
	return nil
}

// ElapsedSeconds is the current session-clock reading.
func (o *Orchestrator) ElapsedSeconds() int64 {
	snapshot := o.Store.Snapshot()
	return snapshot.ElapsedSessionSeconds(o.now())
}

// SessionClock is the display form of the session clock.
func (o *Orchestrator) SessionClock() string {
	return gametime.FormatClock(o.ElapsedSeconds())
}
