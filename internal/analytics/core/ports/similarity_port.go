package ports

import (
	"context"

	"session-analytics-service/internal/analytics/core/domain"
)

// SimilarityPort is the external nearest-neighbor service. Results keep the
// order and scores the service returns.
type SimilarityPort interface {
	FindSimilarUsers(ctx context.Context, userID string, device *string, limit int) ([]domain.SimilarUser, error)
}
