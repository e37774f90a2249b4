package service

import (
	"context"
	"encoding/json"
	"time"

	"inventaris/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dashboardCacheKey = "inventaris:dashboard"

// DashboardCache is a nil-safe wrapper around the optional Redis client.
// A nil client disables caching entirely; cache failures are logged and
// swallowed — the database is always authoritative.
type DashboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDashboardCache(rdb *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

func (c *DashboardCache) Get(ctx context.Context) (*dto.DashboardResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var resp dto.DashboardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *DashboardCache) Set(ctx context.Context, resp dto.DashboardResponse) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, dashboardCacheKey, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("dashboard cache set failed")
	}
}

// Invalidate drops the cached summary; called after every write so the
// dashboard never lags behind by more than an in-flight request.
func (c *DashboardCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, dashboardCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("dashboard cache invalidation failed")
	}
}
