package ports

import (
	"context"
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

type SentimentStorePort interface {
	SaveSentiment(ctx context.Context, r *domain.SentimentRecord) error
	HasRecentSentiment(ctx context.Context, userID string, since time.Time) (bool, error)
	// LatestSentiment returns nil, nil when nothing was stored for the user.
	LatestSentiment(ctx context.Context, userID string) (*domain.SentimentRecord, error)
}
