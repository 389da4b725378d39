package synthesis

import (
	"math"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
)

// RevenuePerToken is the list price applied to synthetic token volume.
const RevenuePerToken = 0.00002

// Series turns an ascending grid into synthetic points. Tokens derive from
// interactions and revenue from tokens, so each point is internally consistent.
func Series(r Rand, grid []time.Time, iv analytics.Interval) []analytics.TimeSeriesPoint {
	return ScaledSeries(r, grid, iv, 1)
}

// ScaledSeries is Series with every signal multiplied by scale, for charts that cover
// more (or less) than one model's worth of traffic.
func ScaledSeries(r Rand, grid []time.Time, iv analytics.Interval, scale float64) []analytics.TimeSeriesPoint {
	if scale < 0 {
		scale = 0
	}
	points := make([]analytics.TimeSeriesPoint, 0, len(grid))
	for _, ts := range grid {
		points = append(points, point(r, ts, Signal(r, ts, iv)*scale))
	}
	return points
}

func point(r Rand, ts time.Time, signal float64) analytics.TimeSeriesPoint {
	interactions := roundCount(signal)
	input := roundCount(float64(interactions) * uniform(r, 10, 20))
	output := roundCount(float64(interactions) * uniform(r, 20, 40))
	tokens := analytics.NewTokenCounts(input, output)

	revenue := analytics.Round2(float64(tokens.Total) * RevenuePerToken * uniform(r, 0.8, 1.2))

	users := roundCount(float64(interactions) * uniform(r, 0.6, 0.9))
	if users > interactions {
		users = interactions
	}

	return analytics.TimeSeriesPoint{
		Timestamp:    ts,
		Interactions: interactions,
		Tokens:       tokens,
		Revenue:      revenue,
		UniqueUsers:  users,
	}
}

func roundCount(v float64) int64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int64(math.Round(v))
}
