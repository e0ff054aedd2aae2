package persist

import (
	"encoding/json"
	"time"

	"horsekeep/internal/domain/horse"
)

// Snapshot is the persisted save-slot record. Timestamps are epoch
// milliseconds. The economy group (currency, game_clock, gift_boxes,
// is_game_over) and locale are optional so snapshots written by older save
// versions still load.
type Snapshot struct {
	Version   string          `json:"version"`
	Timestamp int64           `json:"timestamp"`
	Horse     snapHorse       `json:"horse"`
	Inventory snapInventory   `json:"inventory"`
	Feeding   snapFeeding     `json:"feeding"`
	Locale    *snapLocale     `json:"locale,omitempty"`
	Currency  *int            `json:"currency,omitempty"`
	GameClock *snapClock      `json:"game_clock,omitempty"`
	GiftBoxes []horse.GiftBox `json:"gift_boxes,omitempty"`
	GameOver  *bool           `json:"is_game_over,omitempty"`
}

type snapHorse struct {
	Hunger      int `json:"hunger"`
	Cleanliness int `json:"cleanliness"`
	Happiness   int `json:"happiness"`
}

type snapInventory struct {
	Carrots   int `json:"carrots"`
	BrushUses int `json:"brush_uses"`
}

type snapFeeding struct {
	// IsEating and EatStartTime are defined as non-survivable: every write
	// forces false/null regardless of the live value.
	IsEating       bool    `json:"is_eating"`
	EatStartTime   *int64  `json:"eat_start_time"`
	RecentFeedings []int64 `json:"recent_feedings"`
	FullUntil      *int64  `json:"full_until"`
}

type snapLocale struct {
	Language string `json:"language"`
}

type snapClock struct {
	StartTimestamp *int64 `json:"start_timestamp"`
}

func snapshotFromState(state horse.GameState, now time.Time) Snapshot {
	feedings := horse.PruneExpiredFeedings(state.Feeding.RecentFeedings, horse.SatietyWindow, now)
	feedingMillis := make([]int64, 0, len(feedings))
	for _, fed := range feedings {
		feedingMillis = append(feedingMillis, fed.UnixMilli())
	}

	currency := state.Currency
	gameOver := state.GameOver
	snap := Snapshot{
		Version:   state.Version,
		Timestamp: now.UnixMilli(),
		Horse: snapHorse{
			Hunger:      state.Horse.Hunger,
			Cleanliness: state.Horse.Cleanliness,
			Happiness:   state.Horse.Happiness,
		},
		Inventory: snapInventory{
			Carrots:   state.Inventory.Carrots,
			BrushUses: state.Inventory.BrushUses,
		},
		Feeding: snapFeeding{
			IsEating:       false,
			EatStartTime:   nil,
			RecentFeedings: feedingMillis,
			FullUntil:      millisPtr(state.Feeding.FullUntil),
		},
		Locale:    &snapLocale{Language: state.Language},
		Currency:  &currency,
		GameClock: &snapClock{StartTimestamp: millisPtr(state.Clock.StartedAt)},
		GiftBoxes: append([]horse.GiftBox{}, state.GiftBoxes...),
		GameOver:  &gameOver,
	}
	return snap
}

func (snap Snapshot) toState() horse.GameState {
	state := horse.GameState{
		Version:   snap.Version,
		UpdatedAt: time.UnixMilli(snap.Timestamp),
		Horse: horse.HorseStatus{
			Hunger:      snap.Horse.Hunger,
			Cleanliness: snap.Horse.Cleanliness,
			Happiness:   snap.Horse.Happiness,
		},
		Inventory: horse.Inventory{
			Carrots:   snap.Inventory.Carrots,
			BrushUses: snap.Inventory.BrushUses,
		},
		Feeding: horse.FeedingState{
			RecentFeedings: make([]time.Time, 0, len(snap.Feeding.RecentFeedings)),
			FullUntil:      timePtr(snap.Feeding.FullUntil),
		},
		Language:  horse.DefaultLanguage,
		Currency:  horse.StartingBalance,
		GiftBoxes: []horse.GiftBox{},
	}
	for _, ms := range snap.Feeding.RecentFeedings {
		state.Feeding.RecentFeedings = append(state.Feeding.RecentFeedings, time.UnixMilli(ms))
	}
	if snap.Locale != nil && snap.Locale.Language != "" {
		state.Language = snap.Locale.Language
	}
	if snap.Currency != nil {
		state.Currency = *snap.Currency
	}
	if snap.GameClock != nil {
		state.Clock.StartedAt = timePtr(snap.GameClock.StartTimestamp)
	}
	if snap.GiftBoxes != nil {
		state.GiftBoxes = append(state.GiftBoxes, snap.GiftBoxes...)
	}
	if snap.GameOver != nil {
		state.GameOver = *snap.GameOver
	}
	return state
}

// validSnapshot checks every required field's presence and primitive type,
// mirroring the strictness split: version, timestamp, horse.*, inventory.*
// and the feeding block are mandatory, the economy group is not.
func validSnapshot(payload []byte) bool {
	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return false
	}
	if _, ok := raw["version"].(string); !ok {
		return false
	}
	if _, ok := raw["timestamp"].(float64); !ok {
		return false
	}

	horseRaw, ok := raw["horse"].(map[string]any)
	if !ok {
		return false
	}
	for _, field := range []string{"hunger", "cleanliness", "happiness"} {
		if _, ok := horseRaw[field].(float64); !ok {
			return false
		}
	}

	inventoryRaw, ok := raw["inventory"].(map[string]any)
	if !ok {
		return false
	}
	for _, field := range []string{"carrots", "brush_uses"} {
		if _, ok := inventoryRaw[field].(float64); !ok {
			return false
		}
	}

	feedingRaw, ok := raw["feeding"].(map[string]any)
	if !ok {
		return false
	}
	if feedings, present := feedingRaw["recent_feedings"]; present && feedings != nil {
		if _, ok := feedings.([]any); !ok {
			return false
		}
	}
	return true
}

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func timePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
