package synthesis

import (
	"fmt"
	"slices"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/eleven-am/marketplace-analytics/internal/shared"
	"github.com/samber/lo"
)

const (
	draftProbability    = 0.2
	perTokenProbability = 0.7
	minDefaultModels    = 3
)

var subscriptionPrices = []float64{9.99, 19.99, 29.99, 49.99}

// Generator assembles synthetic dashboard and per-model payloads. It holds only
// immutable configuration plus the random source, so one instance serves all requests.
type Generator struct {
	rand    Rand
	now     func() time.Time
	catalog Catalog
	geo     GeoPool
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithCatalog(c Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

func WithGeoPool(p GeoPool) Option {
	return func(g *Generator) { g.geo = p }
}

// NewGenerator falls back to the default catalog and geo pool when the options leave
// either empty or the pool without a dominant country.
func NewGenerator(r Rand, opts ...Option) *Generator {
	g := &Generator{
		rand:    r,
		now:     time.Now,
		catalog: DefaultCatalog(),
		geo:     DefaultGeoPool(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.catalog.Len() == 0 {
		g.catalog = DefaultCatalog()
	}
	if g.geo.Dominant == "" {
		g.geo = DefaultGeoPool()
	}
	return g
}

type ModelRequest struct {
	ModelID   string
	Timeframe analytics.Timeframe
	Interval  analytics.Interval
	// Model carries real listing metadata when the caller's catalog had it.
	Model *analytics.ModelInfo
}

// Dashboard synthesizes a dashboard with exactly modelCount catalog models.
func (g *Generator) Dashboard(tf analytics.Timeframe, modelCount int) (*analytics.Dashboard, error) {
	grid, err := analytics.Grid(g.now(), tf, analytics.DefaultInterval(tf))
	if err != nil {
		return nil, err
	}
	return g.dashboard(tf, grid, g.Models(tf, modelCount)), nil
}

// DashboardFor synthesizes a dashboard over the caller's real listings. Their metadata is
// kept as-is and only the stats are drawn; drafts stay at zero.
func (g *Generator) DashboardFor(tf analytics.Timeframe, listings []analytics.ModelInfo) (*analytics.Dashboard, error) {
	grid, err := analytics.Grid(g.now(), tf, analytics.DefaultInterval(tf))
	if err != nil {
		return nil, err
	}

	entries := make([]analytics.ModelPerformanceEntry, 0, len(listings))
	for i, info := range listings {
		entries = append(entries, analytics.ModelPerformanceEntry{
			ModelInfo: info,
			Stats:     g.stats(tf, info.Status, i),
		})
	}
	return g.dashboard(tf, grid, entries), nil
}

// dashboard sizes the chart to the models' combined baseline volume and then splits the
// chart totals back across the models by that baseline, so the rows add up to the
// headline figures and the headline figures to the chart.
func (g *Generator) dashboard(tf analytics.Timeframe, grid []time.Time, models []analytics.ModelPerformanceEntry) *analytics.Dashboard {
	weights := make([]int64, len(models))
	for i, m := range models {
		weights[i] = m.Stats.Interactions
	}
	volume := lo.Sum(weights)

	scale := 1.0
	switch {
	case volume > 0:
		scale = float64(volume) / (float64(len(grid)) * meanSignal)
	case len(models) > 0:
		// only drafts: nothing has been served
		scale = 0
	}

	series := ScaledSeries(g.rand, grid, analytics.DefaultInterval(tf), scale)
	totals := analytics.SummarizeSeries(series, tf)
	if volume > 0 {
		splitTotals(tf, models, weights, totals)
	}

	return &analytics.Dashboard{
		TotalModels:       len(models),
		TotalInteractions: totals.Interactions,
		TotalRevenue:      totals.Revenue,
		TotalTokens:       totals.Tokens.Total,
		ModelsPerformance: models,
		TimeSeriesData:    series,
	}
}

// ModelAnalytics synthesizes the per-model payload for req.
func (g *Generator) ModelAnalytics(req ModelRequest) (*analytics.ModelAnalytics, error) {
	grid, err := analytics.Grid(g.now(), req.Timeframe, req.Interval)
	if err != nil {
		return nil, err
	}

	series := Series(g.rand, grid, req.Interval)
	summary := withGrowth(g.rand, analytics.SummarizeSeries(series, req.Timeframe))

	var info analytics.ModelInfo
	if req.Model != nil {
		info = *req.Model
	} else {
		tmpl := g.catalog.At(g.rand.Intn(g.catalog.Len()))
		info = g.info(tmpl, true)
	}
	if req.ModelID != "" {
		info.ID = req.ModelID
	}

	return &analytics.ModelAnalytics{
		Model:           info,
		Summary:         summary,
		TimeSeriesData:  series,
		GeoDistribution: GeoDistribution(g.rand, g.geo),
	}, nil
}

// DefaultModelCount is used when no real model count is known.
func (g *Generator) DefaultModelCount() int {
	hi := g.catalog.Len()
	if hi < minDefaultModels {
		hi = minDefaultModels
	}
	return uniformInt(g.rand, minDefaultModels, hi)
}

// Models builds n entries from the catalog in popularity order.
func (g *Generator) Models(tf analytics.Timeframe, n int) []analytics.ModelPerformanceEntry {
	if n <= 0 {
		return []analytics.ModelPerformanceEntry{}
	}

	seeded := min(n, g.catalog.Len())
	entries := make([]analytics.ModelPerformanceEntry, 0, seeded)
	for i := 0; i < seeded; i++ {
		entries = append(entries, g.entry(tf, g.catalog.At(i), i))
	}
	return g.Resize(tf, entries, n)
}

// Resize returns exactly n entries: the first n when there are more, otherwise the
// originals followed by relabelled clones with fresh IDs and fresh stats.
func (g *Generator) Resize(tf analytics.Timeframe, entries []analytics.ModelPerformanceEntry, n int) []analytics.ModelPerformanceEntry {
	if n <= 0 {
		return []analytics.ModelPerformanceEntry{}
	}
	if len(entries) >= n {
		return slices.Clone(entries[:n])
	}
	if len(entries) == 0 {
		entries = []analytics.ModelPerformanceEntry{g.entry(tf, g.catalog.At(0), 0)}
	}

	out := make([]analytics.ModelPerformanceEntry, 0, n)
	out = append(out, entries...)
	originals := len(entries)
	for i := originals; i < n; i++ {
		src := entries[i%originals]
		clone := src
		clone.ID = g.newID()
		clone.Name = fmt.Sprintf("%s %d", src.Name, i/originals+1)
		clone.Stats = g.stats(tf, clone.Status, i)
		out = append(out, clone)
	}
	return out
}

func (g *Generator) entry(tf analytics.Timeframe, tmpl ModelTemplate, rank int) analytics.ModelPerformanceEntry {
	// The most popular listing is always published.
	active := rank == 0 || g.rand.Float64() >= draftProbability
	info := g.info(tmpl, active)
	return analytics.ModelPerformanceEntry{
		ModelInfo: info,
		Stats:     g.stats(tf, info.Status, rank),
	}
}

func (g *Generator) info(tmpl ModelTemplate, active bool) analytics.ModelInfo {
	createdAt := g.now().AddDate(0, 0, -uniformInt(g.rand, 30, 365)).UTC()
	info := analytics.ModelInfo{
		ID:          g.newID(),
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Category:    tmpl.Category.String(),
		Status:      analytics.ModelStatusDraft,
		CreatedAt:   createdAt,
		Pricing:     g.pricing(),
	}
	if active {
		published := createdAt.AddDate(0, 0, uniformInt(g.rand, 1, 14))
		info.Status = analytics.ModelStatusActive
		info.PublishedAt = &published
	}
	return info
}

func (g *Generator) pricing() analytics.Pricing {
	if g.rand.Float64() < perTokenProbability {
		return analytics.Pricing{
			Model:      analytics.PricingPerToken,
			TokenPrice: analytics.Round(uniform(g.rand, 0.00001, 0.00005), 6),
		}
	}
	return analytics.Pricing{
		Model:             analytics.PricingSubscription,
		SubscriptionPrice: subscriptionPrices[g.rand.Intn(len(subscriptionPrices))],
	}
}

// stats gives drafts an all-zero summary; they have never been served.
func (g *Generator) stats(tf analytics.Timeframe, status analytics.ModelStatus, rank int) analytics.Summary {
	if status == analytics.ModelStatusDraft {
		s := analytics.Summary{}
		s.Metrics = analytics.DeriveMetrics(s, tf)
		return s
	}
	return withGrowth(g.rand, Baseline(g.rand, tf, g.popularity(rank)))
}

func (g *Generator) popularity(rank int) float64 {
	return uniform(g.rand, 0.85, 1.15) / (1 + 0.35*float64(rank))
}

func (g *Generator) newID() string {
	return shared.IDFromSeed("model_", uint64(g.rand.Int63()), uint64(g.rand.Int63()))
}
