package postgres

import (
	"context"
	"encoding/json"

	"session-analytics-service/internal/tracking/core/domain"
	"session-analytics-service/internal/tracking/core/ports"
	"session-analytics-service/pkg/apperrors"
)

type InteractionRepository struct {
	db DB
}

func NewInteractionRepository(db DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

var _ ports.InteractionRepositoryPort = (*InteractionRepository)(nil)

const insertInteractionSQL = `
INSERT INTO interactions (
    user_id,
    session_id,
    page,
    interaction_type,
    occurred_at,
    metadata,
    dedupe_key
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *InteractionRepository) InsertInteraction(ctx context.Context, i *domain.Interaction) (bool, error) {
	var sessionID any
	if i.SessionID != "" {
		sessionID = i.SessionID
	}

	metadataJSON, err := json.Marshal(i.Metadata)
	if err != nil {
		return false, apperrors.NewValidationError("metadata is not serializable")
	}

	res, err := r.db.ExecContext(ctx, insertInteractionSQL,
		i.UserID,
		sessionID,
		i.Page,
		i.Type,
		i.OccurredAt,
		metadataJSON,
		i.DedupeKey,
	)
	if err != nil {
		return false, apperrors.NewStoreError("insert interaction", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.NewStoreError("insert interaction rows affected", err)
	}

	// 0 rows means ON CONFLICT skipped a duplicate
	return rows > 0, nil
}
