package bootstrap

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	LogLevel   string

	UpstreamBaseURL      string
	UpstreamTimeout      time.Duration
	UpstreamClientID     string
	UpstreamClientSecret string
	UpstreamTokenURL     string
	UpstreamScopes       []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SynthesisSeed pins the synthetic data generator; 0 seeds from the clock.
	SynthesisSeed int64
	ServeStatsTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		UpstreamBaseURL:      getEnv("UPSTREAM_BASE_URL", "http://localhost:3000/api"),
		UpstreamTimeout:      getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamClientID:     getEnv("UPSTREAM_CLIENT_ID", ""),
		UpstreamClientSecret: getEnv("UPSTREAM_CLIENT_SECRET", ""),
		UpstreamTokenURL:     getEnv("UPSTREAM_TOKEN_URL", ""),
		UpstreamScopes:       parseList(getEnv("UPSTREAM_SCOPES", "")),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SynthesisSeed: int64(getEnvInt("SYNTHESIS_SEED", 0)),
		ServeStatsTTL: getEnvDuration("SERVE_STATS_TTL", 7*24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseList(envValue string) []string {
	var out []string
	for _, item := range strings.Split(envValue, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
