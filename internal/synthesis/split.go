package synthesis

import (
	"cmp"
	"math"
	"slices"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/samber/lo"
)

// splitTotals replaces each weighted model's stats with its share of totals. Models
// with zero weight keep their stats. Growth blocks are preserved.
func splitTotals(tf analytics.Timeframe, models []analytics.ModelPerformanceEntry, weights []int64, totals analytics.Summary) {
	interactions := apportion(totals.Interactions, weights)
	input := apportion(totals.Tokens.Input, weights)
	output := apportion(totals.Tokens.Output, weights)
	users := apportion(totals.UniqueUsers, weights)
	cents := apportion(int64(math.Round(totals.Revenue*100)), weights)

	for i := range models {
		if weights[i] <= 0 {
			continue
		}
		s := analytics.Summary{
			Interactions: interactions[i],
			Revenue:      analytics.Round2(float64(cents[i]) / 100),
			Tokens:       analytics.NewTokenCounts(input[i], output[i]),
			UniqueUsers:  min(users[i], interactions[i]),
		}
		s.Metrics = analytics.DeriveMetrics(s, tf)
		s.Metrics.Growth = models[i].Stats.Metrics.Growth
		models[i].Stats = s
	}
}

// apportion splits total into integer shares proportional to weights using largest
// remainders. The shares always sum to total; non-positive weights get nothing.
func apportion(total int64, weights []int64) []int64 {
	out := make([]int64, len(weights))
	sum := lo.SumBy(weights, func(w int64) int64 { return max(w, 0) })
	if total <= 0 || sum <= 0 {
		return out
	}

	type remainder struct {
		idx int
		rem int64
	}
	rems := make([]remainder, 0, len(weights))
	var given int64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		out[i] = total * w / sum
		given += out[i]
		rems = append(rems, remainder{idx: i, rem: total * w % sum})
	}

	slices.SortStableFunc(rems, func(a, b remainder) int { return cmp.Compare(b.rem, a.rem) })
	for k := 0; given < total; k++ {
		out[rems[k%len(rems)].idx]++
		given++
	}
	return out
}
