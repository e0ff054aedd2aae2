package horse

import "time"

// CanFeed reports whether a feed action is currently permitted. The fullness
// cooldown is checked first and takes precedence; otherwise the sliding
// satiety window decides.
func CanFeed(state GameState, now time.Time) bool {
	if IsFull(state, now) {
		return false
	}
	pruned := PruneExpiredFeedings(state.Feeding.RecentFeedings, SatietyWindow, now)
	return SatietyCount(pruned, now) < SatietyLimit
}

// IsFull reports whether the fullness cooldown is active.
func IsFull(state GameState, now time.Time) bool {
	return state.Feeding.FullUntil != nil && now.Before(*state.Feeding.FullUntil)
}

// PruneExpiredFeedings returns a new slice holding only feedings still inside
// the window. The input is never mutated. A feeding exactly at the window
// edge counts as expired (strict boundary).
func PruneExpiredFeedings(feedings []time.Time, window time.Duration, now time.Time) []time.Time {
	cutoff := now.Add(-window)
	kept := make([]time.Time, 0, len(feedings))
	for _, fed := range feedings {
		if fed.After(cutoff) {
			kept = append(kept, fed)
		}
	}
	return kept
}

// SatietyCount counts feedings inside the satiety window, using the same
// strict boundary as PruneExpiredFeedings. Callers may pass a pruned or
// unpruned list.
func SatietyCount(feedings []time.Time, now time.Time) int {
	cutoff := now.Add(-SatietyWindow)
	count := 0
	for _, fed := range feedings {
		if fed.After(cutoff) {
			count++
		}
	}
	return count
}

// FullCooldownRemaining is the time left on the fullness cooldown, zero when
// none is active.
func FullCooldownRemaining(state GameState, now time.Time) time.Duration {
	if !IsFull(state, now) {
		return 0
	}
	return state.Feeding.FullUntil.Sub(now)
}
