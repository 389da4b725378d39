package bootstrap

import (
	"github.com/eleven-am/marketplace-analytics/internal/servestats"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func ProvideServeStatsStore(redisClient *redis.Client, cfg *Config) *servestats.Store {
	return servestats.NewStore(redisClient, cfg.ServeStatsTTL)
}

var StoresModule = fx.Options(
	fx.Provide(
		ProvideServeStatsStore,
	),
)
