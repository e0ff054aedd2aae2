package game

import (
	"context"
	"log"

	"horsekeep/internal/app/events"
	"horsekeep/internal/domain/horse"
)

// EarnCurrency credits the balance, clamped at the cap. Non-positive amounts
// are rejected with no mutation.
func (o *Orchestrator) EarnCurrency(ctx context.Context, amount int) bool {
	ok := false
	o.Store.Update(func(s *horse.GameState) {
		ok = s.Earn(amount)
	})
	if !ok {
		return false
	}
	o.persistState(ctx)
	return true
}

// SpendCurrency debits the balance, failing closed when it cannot cover the
// amount.
func (o *Orchestrator) SpendCurrency(ctx context.Context, amount int) bool {
	ok := false
	o.Store.Update(func(s *horse.GameState) {
		ok = s.Spend(amount)
	})
	if !ok {
		return false
	}
	o.persistState(ctx)
	return true
}

func (o *Orchestrator) CanAfford(amount int) bool {
	snapshot := o.Store.Snapshot()
	return snapshot.CanAfford(amount)
}

// PurchaseItem looks up the fixed catalog, deducts the price and grants the
// item's reward in one store pass.
func (o *Orchestrator) PurchaseItem(ctx context.Context, itemID string) bool {
	item, known := horse.CatalogItem(itemID)
	if !known {
		log.Printf("game: purchase rejected, unknown item %q", itemID)
		o.recordRejected("purchase")
		return false
	}

	now := o.now()
	ok := false
	o.Store.Update(func(s *horse.GameState) {
		if s.GameOver || !s.Spend(item.Price) {
			return
		}
		s.GrantReward(item.Reward)
		s.UpdatedAt = now
		ok = true
	})
	if !ok {
		log.Printf("game: purchase rejected, insufficient funds for %q", itemID)
		o.recordRejected("purchase")
		return false
	}
	o.recordSuccess("purchase")
	o.persistState(ctx)
	o.publish(events.TypePurchase, now, item.ID)
	return true
}
