package dto

import "github.com/eleven-am/marketplace-analytics/internal/analytics"

// DashboardResponse mirrors the upstream envelope so clients cannot tell which path served it.
type DashboardResponse struct {
	Success bool                 `json:"success" example:"true"`
	Data    *analytics.Dashboard `json:"data"`
}

type ModelAnalyticsResponse struct {
	Success bool                      `json:"success" example:"true"`
	Data    *analytics.ModelAnalytics `json:"data"`
}
