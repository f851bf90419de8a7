package ports

import (
	"context"
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

type DashboardCachePort interface {
	// GetDashboard reports a miss with found = false and a nil error.
	GetDashboard(ctx context.Context, from, to time.Time) (m *domain.DashboardMetrics, found bool, err error)
	SetDashboard(ctx context.Context, from, to time.Time, m *domain.DashboardMetrics) error
}
