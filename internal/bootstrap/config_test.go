package bootstrap

import (
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("SYNTHESIS_SEED", "")

	cfg := LoadConfig()
	if cfg.ServerAddr != ":8080" {
		t.Errorf("expected default server addr, got %s", cfg.ServerAddr)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("expected default upstream timeout, got %v", cfg.UpstreamTimeout)
	}
	if cfg.SynthesisSeed != 0 {
		t.Errorf("expected zero seed, got %d", cfg.SynthesisSeed)
	}
	if cfg.ServeStatsTTL != 7*24*time.Hour {
		t.Errorf("expected 7d serve stats ttl, got %v", cfg.ServeStatsTTL)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.com")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_SCOPES", "analytics.read, models.read")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SYNTHESIS_SEED", "42")
	t.Setenv("SERVE_STATS_TTL", "not-a-duration")

	cfg := LoadConfig()
	if cfg.UpstreamBaseURL != "https://api.example.com" {
		t.Errorf("unexpected base url %s", cfg.UpstreamBaseURL)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.UpstreamTimeout)
	}
	if len(cfg.UpstreamScopes) != 2 || cfg.UpstreamScopes[1] != "models.read" {
		t.Errorf("unexpected scopes %v", cfg.UpstreamScopes)
	}
	if cfg.RedisDB != 2 {
		t.Errorf("expected redis db 2, got %d", cfg.RedisDB)
	}
	if cfg.SynthesisSeed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.SynthesisSeed)
	}
	if cfg.ServeStatsTTL != 7*24*time.Hour {
		t.Errorf("expected invalid ttl to fall back to default, got %v", cfg.ServeStatsTTL)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestModulesValidate(t *testing.T) {
	err := fx.ValidateApp(
		fx.Provide(LoadConfig),
		InfrastructureModule,
		StoresModule,
		ServerModule,
		AnalyticsModule,
		HandlersModule,
		HealthModule,
	)
	if err != nil {
		t.Fatalf("dependency graph invalid: %v", err)
	}
}
