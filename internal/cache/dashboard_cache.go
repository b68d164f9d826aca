package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

// DashboardCache holds short-lived rendered dashboards in Redis. The TTL is
// the only invalidation; ingest does not purge entries, so a dashboard can
// lag a fresh reading by up to the TTL.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl}
}

func dashboardKey(userID string) string {
	return fmt.Sprintf("dashboard:user:%s", userID)
}

// Get returns the cached dashboard for a user, or nil on a miss. Redis
// failures are logged and treated as misses.
func (c *DashboardCache) Get(ctx context.Context, userID string) (*models.DashboardView, error) {
	data, err := c.client.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		slog.Warn("Dashboard cache read failed", "user_id", userID, "error", err)
		return nil, nil
	}

	var view models.DashboardView
	if err := json.Unmarshal(data, &view); err != nil {
		slog.Warn("Dashboard cache entry corrupt", "user_id", userID, "error", err)
		return nil, nil
	}
	return &view, nil
}

// Set stores a rendered dashboard. Failures only log; the response has
// already been built from the store.
func (c *DashboardCache) Set(ctx context.Context, userID string, view *models.DashboardView) {
	data, err := json.Marshal(view)
	if err != nil {
		slog.Warn("Failed to marshal dashboard for cache", "user_id", userID, "error", err)
		return
	}
	if err := c.client.Set(ctx, dashboardKey(userID), data, c.ttl).Err(); err != nil {
		slog.Warn("Dashboard cache write failed", "user_id", userID, "error", err)
	}
}
