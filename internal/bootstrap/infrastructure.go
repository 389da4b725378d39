package bootstrap

import (
	"github.com/eleven-am/marketplace-analytics/internal/synthesis"
	"github.com/eleven-am/marketplace-analytics/internal/upstream"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func ProvideRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func ProvideUpstreamClient(cfg *Config) *upstream.Client {
	return upstream.NewClient(upstream.Config{
		BaseURL:      cfg.UpstreamBaseURL,
		Timeout:      cfg.UpstreamTimeout,
		ClientID:     cfg.UpstreamClientID,
		ClientSecret: cfg.UpstreamClientSecret,
		TokenURL:     cfg.UpstreamTokenURL,
		Scopes:       cfg.UpstreamScopes,
	})
}

func ProvideGenerator(cfg *Config) *synthesis.Generator {
	return synthesis.NewGenerator(synthesis.NewRand(cfg.SynthesisSeed))
}

var InfrastructureModule = fx.Options(
	fx.Provide(
		ProvideRedisClient,
		ProvideUpstreamClient,
		ProvideGenerator,
	),
)
