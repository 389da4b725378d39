package bootstrap

import (
	"log/slog"

	"github.com/eleven-am/marketplace-analytics/internal/fallback"
	"github.com/eleven-am/marketplace-analytics/internal/servestats"
	"github.com/eleven-am/marketplace-analytics/internal/synthesis"
	"github.com/eleven-am/marketplace-analytics/internal/upstream"
	"go.uber.org/fx"
)

func ProvideOrchestrator(client *upstream.Client, generator *synthesis.Generator, stats *servestats.Store, logger *slog.Logger) *fallback.Orchestrator {
	return fallback.New(client, generator, logger.With("component", "fallback"), fallback.WithRecorder(stats))
}

var AnalyticsModule = fx.Options(
	fx.Provide(ProvideOrchestrator),
)
