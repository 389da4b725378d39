package servestats

import (
	"context"
	"time"

	"github.com/eleven-am/marketplace-analytics/internal/fallback"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 7 * 24 * time.Hour

// Endpoints lists every endpoint the orchestrator reports on.
var Endpoints = []string{fallback.EndpointDashboard, fallback.EndpointModel}

type Store struct {
	redis *redis.Client
	ttl   time.Duration
	now   func() time.Time
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{redis: redisClient, ttl: ttl, now: time.Now}
}

// Record implements fallback.Recorder.
func (s *Store) Record(ctx context.Context, ev fallback.Event) error {
	return s.RecordAt(ctx, ev, s.now())
}

// RecordAt counts ev in the hourly bucket containing at.
func (s *Store) RecordAt(ctx context.Context, ev fallback.Event, at time.Time) error {
	at = at.UTC()
	key := CountersRedisKey(ev.Endpoint, at.Format("2006-01-02"), at.Hour())

	field := fieldReal
	if ev.Origin == fallback.OriginSynthetic {
		field = fieldSynthetic
	}

	pipe := s.redis.Pipeline()
	pipe.HIncrBy(ctx, key, field, 1)
	if ev.ContextErr != nil {
		pipe.HIncrBy(ctx, key, fieldContextErrors, 1)
	}
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// GetCounters returns the non-empty hourly counters for endpoint, newest first.
func (s *Store) GetCounters(ctx context.Context, endpoint string, hours int) ([]*Counters, error) {
	now := s.now().UTC()
	var counters []*Counters

	for i := 0; i < hours; i++ {
		t := now.Add(-time.Duration(i) * time.Hour)
		key := CountersRedisKey(endpoint, t.Format("2006-01-02"), t.Hour())

		data, err := s.redis.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			continue
		}

		c := &Counters{
			Endpoint: endpoint,
			Date:     t.Format("2006-01-02"),
			Hour:     t.Hour(),
		}
		parseCounters(c, data)
		counters = append(counters, c)
	}

	return counters, nil
}

// GetAllCounters returns counters for every endpoint.
func (s *Store) GetAllCounters(ctx context.Context, hours int) ([]*Counters, error) {
	var all []*Counters
	for _, endpoint := range Endpoints {
		counters, err := s.GetCounters(ctx, endpoint, hours)
		if err != nil {
			return nil, err
		}
		all = append(all, counters...)
	}
	return all, nil
}
