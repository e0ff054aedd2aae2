package horse

import (
	"math"
	"time"
)

// DecayService lowers the status meters for elapsed real time. Each meter
// drops floor(elapsedSeconds × rate) points and is clamped to [0,100].
type DecayService struct{}

func (DecayService) Apply(status HorseStatus, elapsed time.Duration) HorseStatus {
	if elapsed <= 0 {
		return status
	}
	seconds := elapsed.Seconds()
	status.Hunger = clampStat(status.Hunger - decayAmount(seconds, HungerDecayPerSecond))
	status.Cleanliness = clampStat(status.Cleanliness - decayAmount(seconds, CleanlinessDecayPerSecond))
	status.Happiness = clampStat(status.Happiness - decayAmount(seconds, HappinessDecayPerSecond))
	return status
}

func decayAmount(seconds, ratePerSecond float64) int {
	points := math.Floor(seconds * ratePerSecond)
	// A meter can lose at most its full range; this also keeps the float→int
	// conversion safe for absurd elapsed values (machine closed for days).
	if points > 100 {
		return 100
	}
	return int(points)
}

// AllDepleted reports whether every meter sits at zero, the game-over
// condition.
func AllDepleted(status HorseStatus) bool {
	return status.Hunger == 0 && status.Cleanliness == 0 && status.Happiness == 0
}
