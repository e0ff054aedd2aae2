package horse

import "github.com/google/uuid"

// NewGiftBox creates an unclaimed gift record. The position comes from the
// caller; the presentation layer owns placement.
func NewGiftBox(elapsedSeconds int64, pos Position) GiftBox {
	return GiftBox{
		ID:        "gift-" + uuid.NewString(),
		SpawnTime: elapsedSeconds,
		Position:  pos,
	}
}

// RollGiftReward maps a uniform roll in [0,1) onto the fixed gift reward
// distribution: 50% carrots, 30% brush uses, 20% currency.
func RollGiftReward(roll float64) Reward {
	switch {
	case roll < 0.5:
		return Reward{Type: RewardCarrots, Amount: GiftRewardCarrots}
	case roll < 0.8:
		return Reward{Type: RewardBrushUses, Amount: GiftRewardBrushUses}
	default:
		return Reward{Type: RewardCurrency, Amount: GiftRewardCurrency}
	}
}
