package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/eleven-am/marketplace-analytics/internal/dto"
	"github.com/eleven-am/marketplace-analytics/internal/fallback"
	"github.com/eleven-am/marketplace-analytics/internal/shared"
	"github.com/eleven-am/marketplace-analytics/internal/upstream"
	"github.com/labstack/echo/v4"
)

// OriginHeader tells operators whether a response was real or synthesized. The body is
// identical either way.
const OriginHeader = "X-Analytics-Origin"

const defaultTimeframe = analytics.TimeframeWeek

type Handler struct {
	orchestrator *fallback.Orchestrator
	logger       *slog.Logger
}

func NewHandler(orchestrator *fallback.Orchestrator, logger *slog.Logger) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.GetDashboard)
	g.GET("/models/:id", h.GetModelAnalytics)
}

// GetDashboard godoc
// @Summary      Get marketplace dashboard
// @Description  Returns headline totals, per-model performance and a time series for the caller's models
// @Tags         analytics
// @Produce      json
// @Param        timeframe  query     string  false  "day, week, month or year (default week)"
// @Success      200        {object}  dto.DashboardResponse
// @Failure      400        {object}  shared.APIError
// @Failure      500        {object}  shared.APIError
// @Security     BearerAuth
// @Router       /analytics/dashboard [get]
func (h *Handler) GetDashboard(c echo.Context) error {
	tf, err := parseTimeframe(c.QueryParam("timeframe"))
	if err != nil {
		return invalidTimeframe(err)
	}

	res, err := h.orchestrator.Dashboard(callerContext(c), tf)
	if err != nil {
		return h.failure(err, "dashboard")
	}

	c.Response().Header().Set(OriginHeader, string(res.Origin))
	return c.JSON(http.StatusOK, dto.DashboardResponse{
		Success: true,
		Data:    res.Data,
	})
}

// GetModelAnalytics godoc
// @Summary      Get model analytics
// @Description  Returns summary, time series and geographic distribution for one model
// @Tags         analytics
// @Produce      json
// @Param        id         path      string  true   "Model ID"
// @Param        timeframe  query     string  false  "day, week, month or year (default week)"
// @Param        interval   query     string  false  "hour, day, week or month (default depends on timeframe)"
// @Success      200        {object}  dto.ModelAnalyticsResponse
// @Failure      400        {object}  shared.APIError
// @Failure      500        {object}  shared.APIError
// @Security     BearerAuth
// @Router       /analytics/models/{id} [get]
func (h *Handler) GetModelAnalytics(c echo.Context) error {
	modelID := strings.TrimSpace(c.Param("id"))
	if modelID == "" {
		return shared.BadRequest("invalid_model_id", "model id is required")
	}

	tf, err := parseTimeframe(c.QueryParam("timeframe"))
	if err != nil {
		return invalidTimeframe(err)
	}

	iv, err := analytics.ParseInterval(tf, c.QueryParam("interval"))
	if err != nil {
		return invalidInterval(tf, err)
	}

	res, err := h.orchestrator.ModelAnalytics(callerContext(c), modelID, tf, iv)
	if err != nil {
		return h.failure(err, "model analytics")
	}

	c.Response().Header().Set(OriginHeader, string(res.Origin))
	return c.JSON(http.StatusOK, dto.ModelAnalyticsResponse{
		Success: true,
		Data:    res.Data,
	})
}

func (h *Handler) failure(err error, what string) error {
	var cfgErr *analytics.ConfigurationError
	if errors.As(err, &cfgErr) {
		if cfgErr.Timeframe.Valid() {
			return invalidInterval(cfgErr.Timeframe, cfgErr)
		}
		return invalidTimeframe(cfgErr)
	}
	if errors.Is(err, context.Canceled) {
		h.logger.Debug("request canceled", "endpoint", what)
		return shared.ClientClosedRequest("request_canceled", "request canceled")
	}

	h.logger.Error("failed to serve "+what, "error", err)
	return shared.InternalError("analytics_failed", "failed to load analytics")
}

func invalidTimeframe(err error) error {
	return shared.NewAPIError("invalid_timeframe", "timeframe must be one of day, week, month, year").
		WithDetails([]dto.ValidationError{{Field: "timeframe", Message: err.Error()}}).
		ToHTTP(http.StatusBadRequest)
}

func invalidInterval(tf analytics.Timeframe, err error) error {
	supported := make([]string, 0, 4)
	for _, iv := range analytics.Supported(tf) {
		supported = append(supported, string(iv))
	}
	return shared.NewAPIError("invalid_interval", "interval for "+string(tf)+" must be one of "+strings.Join(supported, ", ")).
		WithDetails([]dto.ValidationError{{Field: "interval", Message: err.Error()}}).
		ToHTTP(http.StatusBadRequest)
}

func parseTimeframe(raw string) (analytics.Timeframe, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultTimeframe, nil
	}
	return analytics.ParseTimeframe(raw)
}

// callerContext forwards the caller's bearer token so upstream calls run as the caller.
func callerContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
		return upstream.WithCallerToken(ctx, token)
	}
	return ctx
}
