package game

import (
	"context"
	"log"

	"horsekeep/internal/app/events"
	"horsekeep/internal/domain/horse"
)

// SpawnGiftBox creates an unclaimed gift at the given position, or returns
// nil when the unclaimed cap is reached. The position comes from the caller;
// placement belongs to the presentation layer.
func (o *Orchestrator) SpawnGiftBox(ctx context.Context, pos horse.Position) *horse.GiftBox {
	now := o.now()
	var spawned *horse.GiftBox
	o.Store.Update(func(s *horse.GameState) {
		if s.GameOver || s.UnclaimedGiftCount() >= horse.MaxUnclaimedGifts {
			return
		}
		gift := horse.NewGiftBox(s.ElapsedSessionSeconds(now), pos)
		s.GiftBoxes = append(s.GiftBoxes, gift)
		s.UpdatedAt = now
		spawned = &gift
	})
	if spawned == nil {
		o.recordRejected("gift_spawn")
		return nil
	}
	o.recordSuccess("gift_spawn")
	o.persistState(ctx)
	o.publish(events.TypeGiftSpawned, now, spawned.ID)
	return spawned
}

// ClaimGiftBox removes the gift and grants a weighted-random reward,
// returning its descriptor. Unknown or already claimed ids yield nil.
func (o *Orchestrator) ClaimGiftBox(ctx context.Context, giftID string) *horse.Reward {
	now := o.now()
	reward := horse.RollGiftReward(o.roll())
	claimed := false
	o.Store.Update(func(s *horse.GameState) {
		if s.GameOver {
			return
		}
		for i, gift := range s.GiftBoxes {
			if gift.ID != giftID || gift.Claimed {
				continue
			}
			s.GiftBoxes = append(s.GiftBoxes[:i], s.GiftBoxes[i+1:]...)
			s.GrantReward(reward)
			s.UpdatedAt = now
			claimed = true
			return
		}
	})
	if !claimed {
		log.Printf("game: gift claim rejected for %q", giftID)
		o.recordRejected("gift_claim")
		return nil
	}
	o.recordSuccess("gift_claim")
	o.persistState(ctx)
	o.publish(events.TypeGiftClaimed, now, reward)
	return &reward
}

// CheckGiftSpawns spawns one gift per crossed spawn interval since the last
// check, driven from the game loop. Missed intervals are bounded by the
// unclaimed cap via SpawnGiftBox.
func (o *Orchestrator) CheckGiftSpawns(ctx context.Context) {
	elapsed := o.ElapsedSeconds()

	o.mu.Lock()
	lastInterval := o.lastGiftCheck / horse.GiftSpawnIntervalSeconds
	currentInterval := elapsed / horse.GiftSpawnIntervalSeconds
	o.lastGiftCheck = elapsed
	o.mu.Unlock()

	if elapsed == 0 || currentInterval <= lastInterval {
		return
	}
	crossed := currentInterval - lastInterval
	if crossed > horse.MaxUnclaimedGifts {
		crossed = horse.MaxUnclaimedGifts
	}
	for i := int64(0); i < crossed; i++ {
		if o.SpawnGiftBox(ctx, horse.Position{}) == nil {
			return
		}
	}
}

// resetGiftCheck realigns the spawn tracker, preventing an immediate spawn
// right after load or reset.
func (o *Orchestrator) resetGiftCheck(elapsed int64) {
	o.mu.Lock()
	o.lastGiftCheck = elapsed
	o.mu.Unlock()
}
