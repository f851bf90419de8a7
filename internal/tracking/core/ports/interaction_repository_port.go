package ports

import (
	"context"

	"session-analytics-service/internal/tracking/core/domain"
)

type InteractionRepositoryPort interface {
	// InsertInteraction returns false when the dedupe key already exists.
	InsertInteraction(ctx context.Context, i *domain.Interaction) (bool, error)
}
