package analytics

import (
	"math"

	"github.com/samber/lo"
)

// SummarizeSeries sums every field of the series and derives metrics for tf.
// Growth is left nil; it is not derivable from a single window.
func SummarizeSeries(points []TimeSeriesPoint, tf Timeframe) Summary {
	s := Summary{
		Interactions: lo.SumBy(points, func(p TimeSeriesPoint) int64 { return p.Interactions }),
		Revenue:      SumMoney(lo.Map(points, func(p TimeSeriesPoint, _ int) float64 { return p.Revenue })...),
		Tokens: NewTokenCounts(
			lo.SumBy(points, func(p TimeSeriesPoint) int64 { return p.Tokens.Input }),
			lo.SumBy(points, func(p TimeSeriesPoint) int64 { return p.Tokens.Output }),
		),
		UniqueUsers: lo.SumBy(points, func(p TimeSeriesPoint) int64 { return p.UniqueUsers }),
	}
	s.Metrics = DeriveMetrics(s, tf)
	return s
}

// DeriveMetrics computes the per-unit rates and projections of s. Zero denominators yield 0.
func DeriveMetrics(s Summary, tf Timeframe) DerivedMetrics {
	interactions := float64(s.Interactions)
	totalTokens := float64(s.Tokens.Total)

	m := DerivedMetrics{
		RevenuePerInteraction: Round(SafeDiv(s.Revenue, interactions), 4),
		TokensPerInteraction:  int64(math.Round(SafeDiv(totalTokens, interactions))),
		CostPerToken:          Round(SafeDiv(s.Revenue, totalTokens), 6),
		RetentionRate:         Round(SafeDiv(float64(s.UniqueUsers), interactions)*100, 1),
	}

	dailyAvg := SafeDiv(interactions, float64(tf.PeriodDays()))
	m.ProjectedMonthlyRevenue = Round2(dailyAvg * 30 * m.RevenuePerInteraction)
	m.ProjectedYearlyRevenue = Round2(m.ProjectedMonthlyRevenue * 12)
	return m
}
