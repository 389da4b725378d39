package bootstrap

import (
	"log/slog"
	"os"

	_ "github.com/eleven-am/marketplace-analytics/docs"
	"github.com/eleven-am/marketplace-analytics/internal/dashboard"
	"github.com/eleven-am/marketplace-analytics/internal/fallback"
	"github.com/eleven-am/marketplace-analytics/internal/servestats"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

type HandlerParams struct {
	fx.In

	DashboardHandler  *dashboard.Handler
	ServeStatsHandler *servestats.Handler
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/v1")

	params.DashboardHandler.RegisterRoutes(api.Group("/analytics"))
	params.ServeStatsHandler.RegisterRoutes(api.Group("/ops"))

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler())
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideDashboardHandler(orchestrator *fallback.Orchestrator, logger *slog.Logger) *dashboard.Handler {
	return dashboard.NewHandler(orchestrator, logger.With("handler", "dashboard"))
}

func ProvideServeStatsHandler(store *servestats.Store, logger *slog.Logger) *servestats.Handler {
	return servestats.NewHandler(store, logger.With("handler", "servestats"))
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideDashboardHandler,
		ProvideServeStatsHandler,
	),
	fx.Invoke(RegisterRoutes),
)
