package synthesis

import (
	"github.com/eleven-am/marketplace-analytics/internal/analytics"
)

const declineProbability = 0.2

type band struct{ lo, hi float64 }

var growthBands = struct {
	interactions, revenue, tokens, users band
}{
	interactions: band{10, 40},
	revenue:      band{15, 50},
	tokens:       band{5, 30},
	users:        band{8, 40},
}

// Baseline builds a summary without a time series: per-day volumes drawn from fixed
// bands, scaled by popularity, multiplied by the timeframe's day count.
func Baseline(r Rand, tf analytics.Timeframe, popularity float64) analytics.Summary {
	if popularity < 0 {
		popularity = 0
	}
	days := float64(tf.PeriodDays())

	dailyInteractions := uniform(r, 100, 500) * popularity
	dailyTokens := dailyInteractions * uniform(r, 30, 60)
	dailyRevenue := dailyTokens * RevenuePerToken * uniform(r, 0.8, 1.2)

	interactions := roundCount(dailyInteractions * days)
	total := roundCount(dailyTokens * days)
	input := roundCount(float64(total) * uniform(r, 0.3, 0.4))

	users := roundCount(float64(interactions) * uniform(r, 0.6, 0.9))
	if users > interactions {
		users = interactions
	}

	s := analytics.Summary{
		Interactions: interactions,
		Revenue:      analytics.Round2(dailyRevenue * days),
		Tokens:       analytics.NewTokenCounts(input, total-input),
		UniqueUsers:  users,
	}
	s.Metrics = analytics.DeriveMetrics(s, tf)
	return s
}

// Growth is decorative: positive draws per metric, with an occasional decline on one
// randomly chosen metric. It is not a statistical model and is not reproducible
// unless r is seeded.
func Growth(r Rand) *analytics.Growth {
	g := &analytics.Growth{
		Interactions: drawGrowth(r, growthBands.interactions),
		Revenue:      drawGrowth(r, growthBands.revenue),
		Tokens:       drawGrowth(r, growthBands.tokens),
		Users:        drawGrowth(r, growthBands.users),
	}

	if r.Float64() < declineProbability {
		decline := analytics.Round(uniform(r, -15, 0), 1)
		switch r.Intn(4) {
		case 0:
			g.Interactions = decline
		case 1:
			g.Revenue = decline
		case 2:
			g.Tokens = decline
		default:
			g.Users = decline
		}
	}
	return g
}

func drawGrowth(r Rand, b band) float64 {
	return analytics.Round(uniform(r, b.lo, b.hi), 1)
}

// withGrowth attaches a growth block to a copy of s.
func withGrowth(r Rand, s analytics.Summary) analytics.Summary {
	s.Metrics.Growth = Growth(r)
	return s
}
