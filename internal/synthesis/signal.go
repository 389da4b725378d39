package synthesis

import (
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
)

const (
	baseSignalMin = 100
	baseSignalMax = 150
	weekendFactor = 0.7

	meanSignal = (baseSignalMin + baseSignalMax) / 2.0
)

// Signal is the interaction volume for the period ending at ts: a uniform base draw
// damped on weekends and, for hourly points, shaped by the time of day.
func Signal(r Rand, ts time.Time, iv analytics.Interval) float64 {
	base := uniform(r, baseSignalMin, baseSignalMax)
	return base * WeekdayFactor(ts) * TimeOfDayFactor(ts, iv)
}

func WeekdayFactor(ts time.Time) float64 {
	switch ts.Weekday() {
	case time.Saturday, time.Sunday:
		return weekendFactor
	default:
		return 1.0
	}
}

// TimeOfDayFactor is 1 unless iv is hourly.
func TimeOfDayFactor(ts time.Time, iv analytics.Interval) float64 {
	if iv != analytics.IntervalHour {
		return 1.0
	}
	switch h := ts.Hour(); {
	case h < 6:
		return 0.4
	case h < 12:
		return 0.9
	case h < 18:
		return 1.1
	default:
		return 0.8
	}
}
