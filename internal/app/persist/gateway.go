// Package persist is the gateway between the live game state and the save
// store. Saves serialize one whole snapshot atomically; loads validate the
// schema and report elapsed real time since the last write.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"horsekeep/internal/app/ports"
	"horsekeep/internal/domain/horse"
)

const DefaultSlotKey = "horsekeep-save"

type Gateway struct {
	Store ports.SaveStore
	Key   string
	Now   func() time.Time
}

func NewGateway(store ports.SaveStore) Gateway {
	return Gateway{Store: store, Key: DefaultSlotKey}
}

// Save writes the persistable subset of state. Recent feedings are pruned
// first; the transient eating fields are forced to their idle values.
func (g Gateway) Save(ctx context.Context, state horse.GameState) error {
	now := g.now()
	payload, err := json.Marshal(snapshotFromState(state, now))
	if err != nil {
		return err
	}
	return g.Store.Put(ctx, g.key(), string(payload))
}

// Load reads the slot. It returns ports.ErrNoSave when nothing was saved,
// and treats corrupted or schema-invalid payloads the same way so the caller
// proceeds as a new game. On success the second return is the non-negative
// elapsed time since the snapshot was written, for offline decay.
func (g Gateway) Load(ctx context.Context) (horse.GameState, time.Duration, error) {
	payload, err := g.Store.Get(ctx, g.key())
	if err != nil {
		if !errors.Is(err, ports.ErrNoSave) {
			log.Printf("persist: load failed, starting fresh: %v", err)
			err = ports.ErrNoSave
		}
		return horse.GameState{}, 0, err
	}

	if !validSnapshot([]byte(payload)) {
		log.Printf("persist: invalid save data, starting fresh")
		return horse.GameState{}, 0, ports.ErrNoSave
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		log.Printf("persist: unreadable save data, starting fresh: %v", err)
		return horse.GameState{}, 0, ports.ErrNoSave
	}

	elapsed := g.now().Sub(time.UnixMilli(snap.Timestamp))
	if elapsed < 0 {
		elapsed = 0
	}
	return snap.toState(), elapsed, nil
}

func (g Gateway) key() string {
	if g.Key == "" {
		return DefaultSlotKey
	}
	return g.Key
}

func (g Gateway) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
