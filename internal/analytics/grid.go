package analytics

import (
	"slices"
	"time"
)

// Grid returns the period-end timestamps for (tf, iv), ascending, ending at now.
func Grid(now time.Time, tf Timeframe, iv Interval) ([]time.Time, error) {
	n, err := PointCount(tf, iv)
	if err != nil {
		return nil, err
	}

	grid := make([]time.Time, n)
	for i := 0; i < n; i++ {
		grid[i] = stepBack(now, iv, i)
	}
	slices.Reverse(grid)
	return grid, nil
}

func stepBack(t time.Time, iv Interval, steps int) time.Time {
	switch iv {
	case IntervalHour:
		return t.Add(-time.Duration(steps) * time.Hour)
	case IntervalDay:
		return t.AddDate(0, 0, -steps)
	case IntervalWeek:
		return t.AddDate(0, 0, -7*steps)
	default:
		return monthsBack(t, steps)
	}
}

// monthsBack clamps the day so Mar 31 minus one month is Feb 28/29, not Mar 3.
func monthsBack(t time.Time, steps int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, -steps, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return target.AddDate(0, 0, day-1)
}
