package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"stablebook/internal/pkg/config"
	"stablebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps computed per-day availability in redis. Every
// operation fails open: redis being down degrades to recomputing from
// Postgres, never to an error.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: cfg.AvailabilityTTL}
}

func availabilityKey(day time.Time) string {
	return "availability:" + day.Format("2006-01-02")
}

func (c *AvailabilityCache) Get(ctx context.Context, day time.Time) (*queries.DayAvailabilityView, bool) {
	raw, err := c.client.Get(ctx, availabilityKey(day)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache read failed", "day", day.Format("2006-01-02"), "error", err.Error())
		}
		return nil, false
	}

	var view queries.DayAvailabilityView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Warn("availability cache entry is corrupt", "day", day.Format("2006-01-02"), "error", err.Error())
		return nil, false
	}

	return &view, true
}

func (c *AvailabilityCache) Set(ctx context.Context, view *queries.DayAvailabilityView) {
	raw, err := json.Marshal(view)
	if err != nil {
		slog.Warn("availability cache encode failed", "error", err.Error())
		return
	}

	if err := c.client.Set(ctx, availabilityKey(view.Day), raw, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "day", view.Day.Format("2006-01-02"), "error", err.Error())
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, day time.Time) {
	if err := c.client.Del(ctx, availabilityKey(day)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "day", day.Format("2006-01-02"), "error", err.Error())
	}
}

// NoopAvailabilityCache always misses, for deployments without redis and
// for tests that want deterministic reads.
type NoopAvailabilityCache struct{}

func NewNoopAvailabilityCache() *NoopAvailabilityCache {
	return &NoopAvailabilityCache{}
}

func (NoopAvailabilityCache) Get(context.Context, time.Time) (*queries.DayAvailabilityView, bool) {
	return nil, false
}

func (NoopAvailabilityCache) Set(context.Context, *queries.DayAvailabilityView) {}

func (NoopAvailabilityCache) Invalidate(context.Context, time.Time) {}
