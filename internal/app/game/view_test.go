package game

import (
	"context"
	"testing"
	"time"

	"horsekeep/internal/domain/horse"
)

func TestOrchestrator_ViewDerivedFields(t *testing.T) {
	start := time.Unix(1700000000, 0)
	rig := newTestRig(start)
	ctx := context.Background()

	for i := 0; i < horse.SatietyLimit; i++ {
		rig.feedAndFinish(ctx)
	}
	rig.clock.Advance(time.Second)

	view := rig.orch.View()
	if view.CanFeed {
		t.Fatalf("view should report feeding blocked during the cooldown")
	}
	if !view.IsFull {
		t.Fatalf("view should report fullness")
	}
	if view.SatietyCount != horse.SatietyLimit {
		t.Fatalf("satiety count %d, want %d", view.SatietyCount, horse.SatietyLimit)
	}
	if view.CooldownRemainingMs <= 0 || view.CooldownRemainingMs > horse.SatietyCooldown.Milliseconds() {
		t.Fatalf("cooldown remaining %dms out of range", view.CooldownRemainingMs)
	}
	if view.Inventory.Carrots != horse.InitialCarrots-horse.SatietyLimit {
		t.Fatalf("carrots %d in view", view.Inventory.Carrots)
	}
	if view.SessionClock != "00:00:08" {
		t.Fatalf("session clock %q, want 00:00:08", view.SessionClock)
	}
	if view.ElapsedSeconds != 8 {
		t.Fatalf("elapsed %d, want 8", view.ElapsedSeconds)
	}
}
