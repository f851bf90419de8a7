package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/ports"
	"session-analytics-service/pkg/apperrors"
)

const keyPrefix = "analytics:dashboard"

// Cmdable is the subset of the go-redis client the cache needs.
type Cmdable interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

type DashboardCache struct {
	client Cmdable
	ttl    time.Duration
}

func NewDashboardCache(client Cmdable, ttl time.Duration) *DashboardCache {
	return &DashboardCache{client: client, ttl: ttl}
}

var _ ports.DashboardCachePort = (*DashboardCache)(nil)

func dashboardKey(from, to time.Time) string {
	return fmt.Sprintf("%s:%d:%d", keyPrefix, from.Unix(), to.Unix())
}

func (c *DashboardCache) GetDashboard(ctx context.Context, from, to time.Time) (*domain.DashboardMetrics, bool, error) {
	raw, err := c.client.Get(ctx, dashboardKey(from, to)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewExternalError("dashboard cache get", err)
	}

	var m domain.DashboardMetrics
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false, apperrors.NewInternalError("decode cached dashboard", err)
	}
	return &m, true, nil
}

func (c *DashboardCache) SetDashboard(ctx context.Context, from, to time.Time, m *domain.DashboardMetrics) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return apperrors.NewInternalError("encode dashboard", err)
	}
	if err := c.client.Set(ctx, dashboardKey(from, to), raw, c.ttl).Err(); err != nil {
		return apperrors.NewExternalError("dashboard cache set", err)
	}
	return nil
}
