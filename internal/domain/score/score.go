// Package score turns raw submission scores into normalized values and
// review intervals. Everything here is a pure function; the revisit curve
// is a lookup table, not a formula, so the bucket boundaries are exact.
package score

import "time"

// Clamp forces a score into the closed interval [0, 1].
func Clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Compress maps a score from [lower, upper] into [0, 1], clamped.
// A degenerate range (upper == lower) compresses everything to 0.
func Compress(s, lower, upper float64) float64 {
	if upper == lower {
		return 0
	}
	return Clamp((s - lower) / (upper - lower))
}

// DaysUntilReview returns how many days until a task with the given score
// should resurface. Low scores come back fast, high scores are parked for
// up to a month.
func DaysUntilReview(s float64) int {
	switch s = Clamp(s); {
	case s < 0.2:
		return 1
	case s < 0.4:
		return 3
	case s < 0.6:
		return 7
	case s < 0.8:
		return 16
	default:
		return 30
	}
}

// NextRevisitDate returns now + DaysUntilReview(s) days.
// Days are counted as exact 24h intervals, independent of calendars and DST.
func NextRevisitDate(now time.Time, s float64) time.Time {
	return now.Add(time.Duration(DaysUntilReview(s)) * 24 * time.Hour)
}
