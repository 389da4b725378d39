package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/eleven-am/marketplace-analytics/internal/dto"
	"github.com/eleven-am/marketplace-analytics/internal/fallback"
	"github.com/eleven-am/marketplace-analytics/internal/shared"
	"github.com/eleven-am/marketplace-analytics/internal/synthesis"
	"github.com/eleven-am/marketplace-analytics/internal/upstream"
	"github.com/labstack/echo/v4"
)

type stubSource struct {
	dashboard *analytics.Dashboard
	model     *analytics.ModelAnalytics
	err       error
	models    []analytics.ModelInfo
}

func (s *stubSource) Dashboard(ctx context.Context, tf analytics.Timeframe) (*analytics.Dashboard, error) {
	return s.dashboard, s.err
}

func (s *stubSource) ModelAnalytics(ctx context.Context, modelID string, tf analytics.Timeframe, iv analytics.Interval) (*analytics.ModelAnalytics, error) {
	return s.model, s.err
}

func (s *stubSource) Models(ctx context.Context) ([]analytics.ModelInfo, error) {
	return s.models, nil
}

func newTestHandler(src fallback.Source) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := synthesis.NewGenerator(synthesis.NewRand(1), synthesis.WithClock(func() time.Time {
		return time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)
	}))
	return NewHandler(fallback.New(src, gen, logger), logger)
}

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h := newTestHandler(&stubSource{})
	e := echo.New()
	h.RegisterRoutes(e.Group("/analytics"))

	routePaths := make(map[string]bool)
	for _, r := range e.Routes() {
		routePaths[r.Path] = true
	}
	for _, path := range []string{"/analytics/dashboard", "/analytics/models/:id"} {
		if !routePaths[path] {
			t.Errorf("expected route %s to be registered", path)
		}
	}
}

func TestHandler_GetDashboard_Real(t *testing.T) {
	src := &stubSource{dashboard: &analytics.Dashboard{
		TotalModels:       1,
		TotalInteractions: 77,
		ModelsPerformance: []analytics.ModelPerformanceEntry{{ModelInfo: analytics.ModelInfo{ID: "m1"}}},
		TimeSeriesData:    []analytics.TimeSeriesPoint{},
	}}
	h := newTestHandler(src)

	c, rec := newContext("/analytics/dashboard?timeframe=month")
	if err := h.GetDashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(OriginHeader); got != "real" {
		t.Errorf("expected origin real, got %q", got)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			TotalInteractions int64 `json:"totalInteractions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Data.TotalInteractions != 77 {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestHandler_GetDashboard_SyntheticSameShape(t *testing.T) {
	src := &stubSource{err: errors.New("down"), models: make([]analytics.ModelInfo, 5)}
	h := newTestHandler(src)

	c, rec := newContext("/analytics/dashboard?timeframe=week")
	if err := h.GetDashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.Header().Get(OriginHeader); got != "synthetic" {
		t.Errorf("expected origin synthetic, got %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != true {
		t.Errorf("expected success true")
	}
	data := body["data"].(map[string]any)
	for _, key := range []string{"totalModels", "totalInteractions", "totalRevenue", "totalTokens", "modelsPerformance", "timeSeriesData"} {
		if _, ok := data[key]; !ok {
			t.Errorf("expected key %s in synthetic dashboard", key)
		}
	}
	if n := len(data["modelsPerformance"].([]any)); n != 5 {
		t.Errorf("expected 5 models, got %d", n)
	}
	if n := len(data["timeSeriesData"].([]any)); n != 7 {
		t.Errorf("expected 7 points, got %d", n)
	}
}

func TestHandler_GetDashboard_DefaultTimeframe(t *testing.T) {
	h := newTestHandler(&stubSource{err: errors.New("down")})

	c, rec := newContext("/analytics/dashboard")
	if err := h.GetDashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Data struct {
			TimeSeriesData []json.RawMessage `json:"timeSeriesData"`
		} `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body.Data.TimeSeriesData) != 7 {
		t.Errorf("expected weekly series by default, got %d points", len(body.Data.TimeSeriesData))
	}
}

func TestHandler_GetDashboard_InvalidTimeframe(t *testing.T) {
	h := newTestHandler(&stubSource{})

	c, _ := newContext("/analytics/dashboard?timeframe=quarter")
	err := h.GetDashboard(c)
	if err == nil {
		t.Fatal("expected error for invalid timeframe")
	}
	httpErr := err.(*echo.HTTPError)
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, httpErr.Code)
	}
}

func TestHandler_GetModelAnalytics(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantPoints int
	}{
		{"day hour", "?timeframe=day&interval=hour", http.StatusOK, 24},
		{"week day", "?timeframe=week&interval=day", http.StatusOK, 7},
		{"year month", "?timeframe=year&interval=month", http.StatusOK, 12},
		{"default interval", "?timeframe=month", http.StatusOK, 30},
		{"unsupported pair", "?timeframe=day&interval=month", http.StatusBadRequest, 0},
		{"unknown interval", "?timeframe=week&interval=minute", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubSource{err: errors.New("down")})

			c, rec := newContext("/analytics/models/m1" + tt.query)
			c.SetParamNames("id")
			c.SetParamValues("m1")

			err := h.GetModelAnalytics(c)
			if tt.wantStatus != http.StatusOK {
				httpErr, ok := err.(*echo.HTTPError)
				if !ok || httpErr.Code != tt.wantStatus {
					t.Fatalf("expected status %d, got %v", tt.wantStatus, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var body struct {
				Data struct {
					Model struct {
						ID string `json:"id"`
					} `json:"model"`
					TimeSeriesData  []json.RawMessage `json:"timeSeriesData"`
					GeoDistribution []json.RawMessage `json:"geoDistribution"`
				} `json:"data"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Model.ID != "m1" {
				t.Errorf("expected model id m1, got %s", body.Data.Model.ID)
			}
			if len(body.Data.TimeSeriesData) != tt.wantPoints {
				t.Errorf("expected %d points, got %d", tt.wantPoints, len(body.Data.TimeSeriesData))
			}
			if len(body.Data.GeoDistribution) == 0 {
				t.Error("expected geo distribution")
			}
		})
	}
}

func TestHandler_GetModelAnalytics_MissingID(t *testing.T) {
	h := newTestHandler(&stubSource{})

	c, _ := newContext("/analytics/models/")
	c.SetParamNames("id")
	c.SetParamValues(" ")

	err := h.GetModelAnalytics(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_ForwardsCallerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer caller-123" {
			t.Errorf("expected caller token on %s, got %q", r.URL.Path, got)
		}
		w.Write([]byte(`{"success":true,"data":{"totalModels":1,"totalInteractions":5,"modelsPerformance":[{"id":"m1"}],"timeSeriesData":[]}}`))
	}))
	defer server.Close()

	h := newTestHandler(upstream.NewClient(upstream.Config{BaseURL: server.URL}))

	c, rec := newContext("/analytics/dashboard?timeframe=day")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer caller-123")
	if err := h.GetDashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get(OriginHeader); got != "real" {
		t.Errorf("expected real origin, got %q", got)
	}
}

func TestHandler_InvalidInterval_Details(t *testing.T) {
	h := newTestHandler(&stubSource{})

	c, _ := newContext("/analytics/models/m1?timeframe=day&interval=week")
	c.SetParamNames("id")
	c.SetParamValues("m1")

	err := h.GetModelAnalytics(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}

	apiErr, ok := httpErr.Message.(*shared.APIError)
	if !ok {
		t.Fatalf("expected *shared.APIError, got %T", httpErr.Message)
	}
	if apiErr.Code != "invalid_interval" {
		t.Errorf("expected code invalid_interval, got %s", apiErr.Code)
	}
	if apiErr.Message != "interval for day must be one of hour" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
	details, ok := apiErr.Details.([]dto.ValidationError)
	if !ok || len(details) != 1 || details[0].Field != "interval" {
		t.Errorf("unexpected details %#v", apiErr.Details)
	}
}

func TestHandler_CanceledRequest(t *testing.T) {
	h := newTestHandler(&stubSource{err: errors.New("down")})

	c, _ := newContext("/analytics/dashboard")
	ctx, cancel := context.WithCancel(c.Request().Context())
	cancel()
	c.SetRequest(c.Request().WithContext(ctx))

	err := h.GetDashboard(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != shared.StatusClientClosedRequest {
		t.Fatalf("expected %d, got %v", shared.StatusClientClosedRequest, err)
	}
}
