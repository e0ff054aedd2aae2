package game

import (
	"context"
	"testing"
	"time"

	"horsekeep/internal/app/events"
	"horsekeep/internal/domain/horse"
)

func TestOrchestrator_FeedTwoPhase(t *testing.T) {
	start := time.Unix(1700000000, 0)
	rig := newTestRig(start)
	rig.orch.Store.Update(func(s *horse.GameState) { s.Horse.Hunger = 50 })

	if !rig.orch.Feed(context.Background()) {
		t.Fatalf("feed should start on a fresh state")
	}

	mid := rig.orch.Store.Snapshot()
	if mid.Inventory.Carrots != horse.InitialCarrots-1 {
		t.Fatalf("carrot not deducted at phase one: %d", mid.Inventory.Carrots)
	}
	if !mid.Feeding.Eating {
		t.Fatalf("eating flag not set during the interval")
	}
	if mid.Horse.Hunger != 50 {
		t.Fatalf("hunger gained before the interval settled: %d", mid.Horse.Hunger)
	}

	rig.clock.Advance(horse.EatingDuration)

	done := rig.orch.Store.Snapshot()
	if done.Feeding.Eating || done.Feeding.EatStart != nil {
		t.Fatalf("eating interval not settled: %+v", done.Feeding)
	}
	if done.Horse.Hunger != 70 {
		t.Fatalf("hunger %d after feed, want 70", done.Horse.Hunger)
	}
	if len(done.Feeding.RecentFeedings) != 1 {
		t.Fatalf("feeding not recorded: %v", done.Feeding.RecentFeedings)
	}
	if rig.metrics.success["feed"] != 1 {
		t.Fatalf("feed success not recorded")
	}
}

func TestOrchestrator_FeedRefusedWhileEating(t *testing.T) {
	rig := newTestRig(time.Unix(1700000000, 0))
	ctx := context.Background()

	rig.orch.Feed(ctx)
	if rig.orch.Feed(ctx) {
		t.Fatalf("second feed during an eating interval should be refused")
	}
	if got := rig.orch.Store.Snapshot().Inventory.Carrots; got != horse.InitialCarrots-1 {
		t.Fatalf("refused feed cost a carrot: %d", got)
	}
	if rig.metrics.rejected["feed"] != 1 {
		t.Fatalf("feed rejection not recorded")
	}
}

func TestOrchestrator_ThirdFeedArmsFullCooldown(t *testing.T) {
	start := time.Unix(1700000000, 0)
	rig := newTestRig(start)
	ctx := context.Background()

	for i := 0; i < horse.SatietyLimit; i++ {
		if !rig.feedAndFinish(ctx) {
			t.Fatalf("feed %d refused", i+1)
		}
	}

	snap := rig.orch.Store.Snapshot()
	if snap.Feeding.FullUntil == nil {
		t.Fatalf("three quick feeds should arm the fullness cooldown")
	}
	thirdDone := start.Add(3 * horse.EatingDuration)
	if want := thirdDone.Add(horse.SatietyCooldown); !snap.Feeding.FullUntil.Equal(want) {
		t.Fatalf("cooldown until %v, want %v", snap.Feeding.FullUntil, want)
	}

	if rig.orch.Feed(ctx) {
		t.Fatalf("fourth feed during the cooldown should be refused")
	}
	if got := rig.orch.Store.Snapshot().Inventory.Carrots; got != horse.InitialCarrots-3 {
		t.Fatalf("carrots %d after three feeds and one refusal, want %d", got, horse.InitialCarrots-3)
	}

	// The cooldown outlasts the window: even with the feedings expired the
	// refusal holds until FullUntil passes.
	rig.clock.Advance(horse.SatietyWindow)
	if rig.orch.Feed(ctx) {
		t.Fatalf("feed should stay refused while the cooldown runs")
	}
	rig.clock.Advance(horse.SatietyCooldown)
	if !rig.orch.Feed(ctx) {
		t.Fatalf("feed should be allowed once the cooldown expired")
	}
}

func TestOrchestrator_SpreadFeedsStayBelowSatiety(t *testing.T) {
	start := time.Unix(1700000000, 0)
	rig := newTestRig(start)
	ctx := context.Background()

	// 15s between feed starts keeps the window population at one.
	for i := 0; i < 4; i++ {
		if !rig.feedAndFinish(ctx) {
			t.Fatalf("spread feed %d refused", i+1)
		}
		rig.clock.Advance(15*time.Second - horse.EatingDuration)
	}

	if snap := rig.orch.Store.Snapshot(); snap.Feeding.FullUntil != nil {
		t.Fatalf("spread feeds armed the cooldown: %v", snap.Feeding.FullUntil)
	}
}

func TestOrchestrator_FeedPersistsAndPublishesOnCompletion(t *testing.T) {
	rig := newTestRig(time.Unix(1700000000, 0))

	var types []events.Type
	rig.bus.Subscribe(func(evt events.Event) { types = append(types, evt.Type) })

	rig.feedAndFinish(context.Background())

	if len(types) != 2 || types[0] != events.TypeFeedStarted || types[1] != events.TypeFeedCompleted {
		t.Fatalf("event sequence %v", types)
	}
	if rig.store.puts == 0 {
		t.Fatalf("completed feed should persist a snapshot")
	}
}
