// Package rules holds the pure reward and progression arithmetic. Nothing in
// here touches the clock, storage, or the state itself.
package rules

import (
	"math"
	"time"

	"github.com/immortalfoodie/Ecosphere/internal/model"
)

// PointsPerLevel is the fixed width of one level tier.
const PointsPerLevel = 250

// ClampPoints rounds and floors a point total at zero.
func ClampPoints(points float64) int {
	return int(math.Max(0, math.Round(points)))
}

// ComputeLevel derives the level tier from a point total. Level 1 is the floor
// even for zero points.
func ComputeLevel(points int) int {
	level := points/PointsPerLevel + 1
	if level < 1 {
		level = 1
	}
	return level
}

// ScanPoints awards by eco-score tier.
func ScanPoints(ecoScore int) int {
	switch {
	case ecoScore >= 80:
		return 12
	case ecoScore >= 60:
		return 8
	default:
		return 4
	}
}

// TrackerPoints awards by daily total carbon: the lower the footprint, the
// higher the reward.
func TrackerPoints(totalCarbon float64) int {
	switch {
	case totalCarbon <= 20:
		return 30
	case totalCarbon <= 40:
		return 20
	default:
		return 10
	}
}

// TotalCarbon sums the four carbon sub-values of one tracker log.
func TotalCarbon(c model.CarbonData) float64 {
	return c.Electricity + c.Transport + c.Food + c.Waste
}

// CarbonSaved is the kg credited for one log against the 40kg daily baseline.
func CarbonSaved(totalCarbon float64) float64 {
	return math.Max(0, 40-totalCarbon)
}

// DayDiff counts whole 24h periods from last to now, floored. A negative
// elapsed time (clock skew, stale data) floors toward minus infinity, which
// NextStreak treats as a reset.
func DayDiff(last, now time.Time) int {
	return int(math.Floor(now.Sub(last).Hours() / 24))
}

// NextStreak applies the streak transition: a log exactly one day after the
// previous one extends the streak, a same-day log leaves it alone, anything
// else starts over at 1.
func NextStreak(dayDiff, current int) int {
	switch dayDiff {
	case 1:
		return current + 1
	case 0:
		return current
	default:
		return 1
	}
}
