package horse

import "time"

const (
	SaveVersion = "1.3.0"

	// Meter decay per elapsed second. Rates are deliberately unequal so the
	// meters drift apart under idle pressure.
	HungerDecayPerSecond      = 1.0 / 6.0
	CleanlinessDecayPerSecond = 1.0 / 12.0
	HappinessDecayPerSecond   = 1.0 / 7.5

	FeedHungerGain       = 20
	GroomCleanlinessGain = 5
	PetHappinessGain     = 10

	InitialHunger      = 80
	InitialCleanliness = 70
	InitialHappiness   = 90
	InitialCarrots     = 10
	InitialBrushUses   = 100

	EatingDuration  = 2500 * time.Millisecond
	SatietyLimit    = 3
	SatietyWindow   = 10 * time.Second
	SatietyCooldown = 30 * time.Second

	PetCooldown = 1 * time.Second

	StartingBalance = 50
	MaxBalance      = 999999

	GiftSpawnIntervalSeconds = 300
	MaxUnclaimedGifts        = 3

	GiftRewardCarrots   = 3
	GiftRewardBrushUses = 20
	GiftRewardCurrency  = 10

	DefaultLanguage = "de"

	AutoSaveInterval = 10 * time.Second
)
