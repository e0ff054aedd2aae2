package horse

import "time"

// BeginEating starts the eating interval: the carrot is deducted up front so
// rapid repeat calls cannot double-feed, and the Eating flag refuses a second
// start while one is in flight. Returns false with no mutation when any
// precondition fails.
func (s *GameState) BeginEating(now time.Time) bool {
	if s.GameOver || s.Inventory.Carrots <= 0 || s.Feeding.Eating || !CanFeed(*s, now) {
		return false
	}
	s.Inventory.Carrots--
	s.Feeding.Eating = true
	start := now
	s.Feeding.EatStart = &start
	s.UI.LastInteraction = now
	s.UpdatedAt = now
	return true
}

// FinishEating completes the interval: the feeding is recorded, the window
// pruned, the cooldown armed when the satiety limit is reached, and the
// hunger gain applied. A no-op when no eating interval is in flight.
func (s *GameState) FinishEating(now time.Time) bool {
	if !s.Feeding.Eating {
		return false
	}
	feedings := PruneExpiredFeedings(s.Feeding.RecentFeedings, SatietyWindow, now)
	feedings = append(feedings, now)
	s.Feeding.RecentFeedings = feedings
	if SatietyCount(feedings, now) >= SatietyLimit {
		until := now.Add(SatietyCooldown)
		s.Feeding.FullUntil = &until
	}
	s.Horse.Hunger = clampStat(s.Horse.Hunger + FeedHungerGain)
	s.Feeding.Eating = false
	s.Feeding.EatStart = nil
	s.UpdatedAt = now
	return true
}

// ApplyGroom consumes one brush use for a cleanliness gain.
func (s *GameState) ApplyGroom(now time.Time) bool {
	if s.GameOver || s.Inventory.BrushUses <= 0 {
		return false
	}
	s.Inventory.BrushUses--
	s.Horse.Cleanliness = clampStat(s.Horse.Cleanliness + GroomCleanlinessGain)
	s.UI.LastInteraction = now
	s.UpdatedAt = now
	return true
}

// ApplyPet raises happiness, gated by its own cooldown since the last pet.
func (s *GameState) ApplyPet(now time.Time) bool {
	if s.GameOver || now.Sub(s.UI.LastPet) < PetCooldown {
		return false
	}
	s.Horse.Happiness = clampStat(s.Horse.Happiness + PetHappinessGain)
	s.UI.LastPet = now
	s.UI.LastInteraction = now
	s.UpdatedAt = now
	return true
}

// MarkGameOver records the all-meters-zero terminal state. Idempotent; only
// a reset clears it.
func (s *GameState) MarkGameOver(now time.Time) bool {
	if s.GameOver || !AllDepleted(s.Horse) {
		return false
	}
	s.GameOver = true
	s.UpdatedAt = now
	return true
}
