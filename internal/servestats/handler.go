package servestats

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eleven-am/marketplace-analytics/internal/dto"
	"github.com/eleven-am/marketplace-analytics/internal/fallback"
	"github.com/eleven-am/marketplace-analytics/internal/shared"
	"github.com/labstack/echo/v4"
)

const (
	defaultHours = 24
	maxHours     = 7 * 24
)

type Handler struct {
	store  *Store
	logger *slog.Logger
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/serving", h.GetCounters)
	g.GET("/serving/summary", h.GetSummary)
}

func countersToResponse(c *Counters) dto.ServeCountersResponse {
	return dto.ServeCountersResponse{
		Endpoint:      c.Endpoint,
		Date:          c.Date,
		Hour:          c.Hour,
		Real:          c.Real,
		Synthetic:     c.Synthetic,
		ContextErrors: c.ContextErrors,
	}
}

func parseHours(raw string) int {
	if raw == "" {
		return defaultHours
	}
	if hr, err := strconv.Atoi(raw); err == nil && hr > 0 && hr <= maxHours {
		return hr
	}
	return defaultHours
}

// GetCounters godoc
// @Summary      Hourly serve-path counters
// @Description  Returns per-hour counts of real and synthetic responses for each analytics endpoint
// @Tags         ops
// @Produce      json
// @Param        hours     query     int     false  "Hours to look back (default 24, max 168)"
// @Param        endpoint  query     string  false  "dashboard or model (default both)"
// @Success      200       {object}  dto.ServeCountersListResponse
// @Failure      400       {object}  shared.APIError
// @Failure      500       {object}  shared.APIError
// @Router       /ops/serving [get]
func (h *Handler) GetCounters(c echo.Context) error {
	hours := parseHours(c.QueryParam("hours"))
	ctx := c.Request().Context()

	var (
		counters []*Counters
		err      error
	)
	switch endpoint := c.QueryParam("endpoint"); endpoint {
	case "":
		counters, err = h.store.GetAllCounters(ctx, hours)
	case fallback.EndpointDashboard, fallback.EndpointModel:
		counters, err = h.store.GetCounters(ctx, endpoint, hours)
	default:
		return shared.BadRequest("invalid_endpoint", "endpoint must be dashboard or model")
	}
	if err != nil {
		h.logger.Error("failed to get serve counters", "error", err)
		return shared.InternalError("get_counters_failed", "failed to get serve counters")
	}

	response := make([]dto.ServeCountersResponse, len(counters))
	for i, m := range counters {
		response[i] = countersToResponse(m)
	}

	return c.JSON(http.StatusOK, dto.ServeCountersListResponse{
		Hours:    hours,
		Counters: response,
	})
}

// GetSummary godoc
// @Summary      Serve-path summary
// @Description  Totals real and synthetic responses and reports the synthetic share
// @Tags         ops
// @Produce      json
// @Param        hours  query     int  false  "Hours to look back (default 24, max 168)"
// @Success      200    {object}  dto.ServeSummaryResponse
// @Failure      500    {object}  shared.APIError
// @Router       /ops/serving/summary [get]
func (h *Handler) GetSummary(c echo.Context) error {
	hours := parseHours(c.QueryParam("hours"))

	counters, err := h.store.GetAllCounters(c.Request().Context(), hours)
	if err != nil {
		h.logger.Error("failed to get serve summary", "error", err)
		return shared.InternalError("get_counters_failed", "failed to get serve counters")
	}

	summary := Summarize(counters)
	return c.JSON(http.StatusOK, dto.ServeSummaryResponse{
		Period:         strconv.Itoa(hours) + "h",
		TotalServed:    summary.Total(),
		Real:           summary.Real,
		Synthetic:      summary.Synthetic,
		ContextErrors:  summary.ContextErrors,
		SyntheticShare: summary.SyntheticShare(),
	})
}
