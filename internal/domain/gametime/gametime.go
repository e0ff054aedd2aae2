// Package gametime holds the pure time helpers shared by the game core:
// wall-clock deltas and the session-clock display format.
package gametime

import (
	"fmt"
	"time"
)

// Elapsed is the non-negative wall-clock duration between since and now.
func Elapsed(since, now time.Time) time.Duration {
	if now.Before(since) {
		return 0
	}
	return now.Sub(since)
}

func MsToSeconds(ms int64) float64 {
	return float64(ms) / 1000
}

func SecondsToMs(seconds float64) int64 {
	return int64(seconds * 1000)
}

// FormatClock renders elapsed session seconds as HH:MM:SS. Hours keep two
// digits up to 99 and grow unpadded past that (360000 → "100:00:00").
func FormatClock(totalSeconds int64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
