package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/bootstrap"
	"github.com/eleven-am/marketplace-analytics/internal/fallback"
	"github.com/eleven-am/marketplace-analytics/internal/servestats"
	"github.com/eleven-am/marketplace-analytics/internal/synthesis"
)

// Backfills hourly serve counters so the ops endpoints have history to show
// in a fresh environment.
func main() {
	cfg := bootstrap.LoadConfig()

	hours := 24
	if v := os.Getenv("SEED_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 168 {
			fmt.Fprintf(os.Stderr, "SEED_HOURS must be between 1 and 168, got %q\n", v)
			os.Exit(1)
		}
		hours = n
	}

	client := bootstrap.ProvideRedisClient(cfg)
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to redis: %v\n", err)
		os.Exit(1)
	}

	store := servestats.NewStore(client, cfg.ServeStatsTTL)
	rng := synthesis.NewRand(cfg.SynthesisSeed)
	now := time.Now().UTC()

	var total, synthetic int
	for i := 0; i < hours; i++ {
		at := now.Add(-time.Duration(i) * time.Hour)
		for _, endpoint := range servestats.Endpoints {
			requests := 5 + rng.Intn(40)
			for j := 0; j < requests; j++ {
				ev := fallback.Event{Endpoint: endpoint, Origin: fallback.OriginReal}
				if rng.Float64() < 0.2 {
					ev.Origin = fallback.OriginSynthetic
					ev.Reason = fallback.ErrUpstreamUnavailable
					synthetic++
				}
				if err := store.RecordAt(ctx, ev, at); err != nil {
					fmt.Fprintf(os.Stderr, "Failed to record: %v\n", err)
					os.Exit(1)
				}
				total++
			}
		}
	}

	fmt.Println("Serve counters seeded successfully!")
	fmt.Println("")
	fmt.Printf("Hours:     %d\n", hours)
	fmt.Printf("Responses: %d (%d synthetic)\n", total, synthetic)
}
