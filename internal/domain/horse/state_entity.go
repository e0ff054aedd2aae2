package horse

import "time"

// NewGameState returns the fixed initial state with the session clock
// started at now.
func NewGameState(now time.Time) GameState {
	startedAt := now
	return GameState{
		Version:   SaveVersion,
		UpdatedAt: now,
		Horse: HorseStatus{
			Hunger:      InitialHunger,
			Cleanliness: InitialCleanliness,
			Happiness:   InitialHappiness,
		},
		Inventory: Inventory{
			Carrots:   InitialCarrots,
			BrushUses: InitialBrushUses,
		},
		Feeding:   FeedingState{RecentFeedings: []time.Time{}},
		Language:  DefaultLanguage,
		Currency:  StartingBalance,
		Clock:     GameClockState{StartedAt: &startedAt},
		GiftBoxes: []GiftBox{},
	}
}

func (s *GameState) AddCarrots(amount int) {
	if amount <= 0 {
		return
	}
	s.Inventory.Carrots += amount
}

func (s *GameState) AddBrushUses(amount int) {
	if amount <= 0 {
		return
	}
	s.Inventory.BrushUses += amount
}

// Earn credits the balance, clamped at MaxBalance. Non-positive amounts are
// rejected at the boundary.
func (s *GameState) Earn(amount int) bool {
	if amount <= 0 {
		return false
	}
	s.Currency += amount
	if s.Currency > MaxBalance {
		s.Currency = MaxBalance
	}
	return true
}

// Spend fails closed: the balance is only debited when it covers the full
// amount.
func (s *GameState) Spend(amount int) bool {
	if amount <= 0 || s.Currency < amount {
		return false
	}
	s.Currency -= amount
	return true
}

func (s *GameState) CanAfford(amount int) bool {
	return amount >= 0 && s.Currency >= amount
}

// GrantReward dispatches a reward to the matching stock. Currency rewards go
// through the capped ledger.
func (s *GameState) GrantReward(r Reward) {
	switch r.Type {
	case RewardCarrots:
		s.AddCarrots(r.Amount)
	case RewardBrushUses:
		s.AddBrushUses(r.Amount)
	case RewardCurrency:
		s.Earn(r.Amount)
	}
}

func (s *GameState) UnclaimedGiftCount() int {
	count := 0
	for _, gift := range s.GiftBoxes {
		if !gift.Claimed {
			count++
		}
	}
	return count
}

// ElapsedSessionSeconds is the wall-clock seconds since the session clock
// started, or 0 when the clock has not been started.
func (s *GameState) ElapsedSessionSeconds(now time.Time) int64 {
	if s.Clock.StartedAt == nil || now.Before(*s.Clock.StartedAt) {
		return 0
	}
	return int64(now.Sub(*s.Clock.StartedAt) / time.Second)
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
