package state

import (
	"testing"
	"time"

	"horsekeep/internal/domain/horse"
)

func TestStore_SnapshotIsIsolated(t *testing.T) {
	now := time.Unix(1700000000, 0)
	initial := horse.NewGameState(now)
	initial.Feeding.RecentFeedings = []time.Time{now}
	initial.GiftBoxes = []horse.GiftBox{{ID: "gift-1"}}
	store := NewStore(initial)

	snap := store.Snapshot()
	snap.Horse.Hunger = 0
	snap.Inventory.Carrots = 0
	snap.Feeding.RecentFeedings[0] = now.Add(time.Hour)
	snap.GiftBoxes[0].Claimed = true
	*snap.Clock.StartedAt = now.Add(time.Hour)

	fresh := store.Snapshot()
	if fresh.Horse.Hunger != horse.InitialHunger {
		t.Fatalf("snapshot mutation reached the store: hunger %d", fresh.Horse.Hunger)
	}
	if !fresh.Feeding.RecentFeedings[0].Equal(now) {
		t.Fatalf("feedings slice shared with snapshot")
	}
	if fresh.GiftBoxes[0].Claimed {
		t.Fatalf("gift slice shared with snapshot")
	}
	if !fresh.Clock.StartedAt.Equal(now) {
		t.Fatalf("clock pointer shared with snapshot")
	}
}

func TestStore_UpdateMutatesLiveState(t *testing.T) {
	store := NewStore(horse.NewGameState(time.Unix(1700000000, 0)))

	store.Update(func(s *horse.GameState) {
		s.Inventory.Carrots = 3
	})

	if got := store.Snapshot().Inventory.Carrots; got != 3 {
		t.Fatalf("carrots %d after update, want 3", got)
	}
}

func TestStore_ReplaceSwapsAggregate(t *testing.T) {
	store := NewStore(horse.NewGameState(time.Unix(1700000000, 0)))

	next := horse.NewGameState(time.Unix(1800000000, 0))
	next.Currency = 7
	store.Replace(next)
	next.Currency = 123

	if got := store.Snapshot().Currency; got != 7 {
		t.Fatalf("currency %d after replace, want 7", got)
	}
}
