package analytics

import "time"

type TokenCounts struct {
	Input  int64 `json:"input"`
	Output int64 `json:"output"`
	Total  int64 `json:"total"`
}

func NewTokenCounts(input, output int64) TokenCounts {
	return TokenCounts{Input: input, Output: output, Total: input + output}
}

type TimeSeriesPoint struct {
	Timestamp    time.Time   `json:"timestamp"`
	Interactions int64       `json:"interactions"`
	Tokens       TokenCounts `json:"tokens"`
	Revenue      float64     `json:"revenue"`
	UniqueUsers  int64       `json:"uniqueUsers"`
}

// Growth holds signed period-over-period percentages.
type Growth struct {
	Interactions float64 `json:"interactions"`
	Revenue      float64 `json:"revenue"`
	Tokens       float64 `json:"tokens"`
	Users        float64 `json:"users"`
}

type DerivedMetrics struct {
	RevenuePerInteraction   float64 `json:"revenuePerInteraction"`
	TokensPerInteraction    int64   `json:"tokensPerInteraction"`
	CostPerToken            float64 `json:"costPerToken"`
	RetentionRate           float64 `json:"retentionRate"`
	ProjectedMonthlyRevenue float64 `json:"projectedMonthlyRevenue"`
	ProjectedYearlyRevenue  float64 `json:"projectedYearlyRevenue"`
	Growth                  *Growth `json:"growth,omitempty"`
}

type Summary struct {
	Interactions int64          `json:"interactions"`
	Revenue      float64        `json:"revenue"`
	Tokens       TokenCounts    `json:"tokens"`
	UniqueUsers  int64          `json:"uniqueUsers"`
	Metrics      DerivedMetrics `json:"metrics"`
}

type GeoEntry struct {
	CountryCode string `json:"countryCode"`
	Count       int64  `json:"count"`
}

type ModelStatus string

const (
	ModelStatusActive ModelStatus = "active"
	ModelStatusDraft  ModelStatus = "draft"
)

type PricingModel string

const (
	PricingPerToken     PricingModel = "per-token"
	PricingSubscription PricingModel = "subscription"
)

type Pricing struct {
	Model             PricingModel `json:"model"`
	TokenPrice        float64      `json:"tokenPrice"`
	SubscriptionPrice float64      `json:"subscriptionPrice"`
}

type ModelInfo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Status      ModelStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	PublishedAt *time.Time  `json:"publishedAt"`
	Pricing     Pricing     `json:"pricing"`
}

type ModelPerformanceEntry struct {
	ModelInfo
	Stats Summary `json:"stats"`
}

// Dashboard is the payload of GET /analytics/dashboard.
type Dashboard struct {
	TotalModels       int                     `json:"totalModels"`
	TotalInteractions int64                   `json:"totalInteractions"`
	TotalRevenue      float64                 `json:"totalRevenue"`
	TotalTokens       int64                   `json:"totalTokens"`
	ModelsPerformance []ModelPerformanceEntry `json:"modelsPerformance"`
	TimeSeriesData    []TimeSeriesPoint       `json:"timeSeriesData"`
}

// IsEmpty reports whether the dashboard carries no usable data.
func (d *Dashboard) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.ModelsPerformance) == 0 && len(d.TimeSeriesData) == 0 && d.TotalInteractions == 0
}

// ModelAnalytics is the payload of GET /analytics/models/:id.
type ModelAnalytics struct {
	Model           ModelInfo         `json:"model"`
	Summary         Summary           `json:"summary"`
	TimeSeriesData  []TimeSeriesPoint `json:"timeSeriesData"`
	GeoDistribution []GeoEntry        `json:"geoDistribution"`
}

func (m *ModelAnalytics) IsEmpty() bool {
	if m == nil {
		return true
	}
	return len(m.TimeSeriesData) == 0 && m.Summary.Interactions == 0
}
