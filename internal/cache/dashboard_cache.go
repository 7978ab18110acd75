// Package cache stores computed dashboard snapshots in Redis
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/studyshelf/backend/internal/models"
	"go.uber.org/zap"
)

// DashboardKey is the Redis key of the cached dashboard
const DashboardKey = "studyshelf:dashboard"

// redisDashboardCache keeps the dashboard as JSON with a TTL.
// Redis errors are logged and treated as cache misses.
type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisDashboardCache creates a dashboard cache on an existing client
func NewRedisDashboardCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *redisDashboardCache {
	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached dashboard, if any
func (c *redisDashboardCache) Get(ctx context.Context) (*models.Dashboard, bool) {
	data, err := c.client.Get(ctx, DashboardKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("failed to read dashboard cache", zap.Error(err))
		return nil, false
	}

	var dashboard models.Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		c.logger.Warn("failed to decode dashboard cache", zap.Error(err))
		return nil, false
	}

	return &dashboard, true
}

// Set stores the dashboard
func (c *redisDashboardCache) Set(ctx context.Context, dashboard *models.Dashboard) {
	data, err := json.Marshal(dashboard)
	if err != nil {
		c.logger.Warn("failed to encode dashboard cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, DashboardKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write dashboard cache", zap.Error(err))
	}
}

// Invalidate drops the cached dashboard
func (c *redisDashboardCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, DashboardKey).Err(); err != nil {
		c.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

// nopDashboardCache is used when Redis is not configured
type nopDashboardCache struct{}

// NewNopDashboardCache creates a cache that never stores anything
func NewNopDashboardCache() nopDashboardCache {
	return nopDashboardCache{}
}

func (nopDashboardCache) Get(ctx context.Context) (*models.Dashboard, bool) { return nil, false }

func (nopDashboardCache) Set(ctx context.Context, dashboard *models.Dashboard) {}

func (nopDashboardCache) Invalidate(ctx context.Context) {}
