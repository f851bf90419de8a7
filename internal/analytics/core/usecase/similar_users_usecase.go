package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/ports"
)

const (
	DefaultSimilarLimit = 10
	maxSimilarLimit     = 100
)

type SimilarUsersInput struct {
	UserID string
	Device *string
	Limit  int // 0 = DefaultSimilarLimit
}

type SimilarUsersUseCase struct {
	store      ports.EventStorePort
	similarity ports.SimilarityPort // nil when no service is configured
	log        zerolog.Logger
}

func NewSimilarUsersUseCase(store ports.EventStorePort, similarity ports.SimilarityPort, log zerolog.Logger) *SimilarUsersUseCase {
	return &SimilarUsersUseCase{store: store, similarity: similarity, log: log}
}

// Execute returns nil, nil when the user is unknown.
func (uc *SimilarUsersUseCase) Execute(ctx context.Context, in SimilarUsersInput) ([]domain.SimilarUser, error) {
	if in.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if in.Limit == 0 {
		in.Limit = DefaultSimilarLimit
	}
	if in.Limit < 0 || in.Limit > maxSimilarLimit {
		return nil, ErrInvalidLimit
	}
	if uc.similarity == nil {
		return nil, ErrSimilarityDisabled
	}

	user, err := uc.store.FindUser(ctx, in.UserID)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "similar_users").Str("user_id", in.UserID).Msg("loading user failed")
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	out, err := uc.similarity.FindSimilarUsers(ctx, in.UserID, in.Device, in.Limit)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "similar_users").Str("user_id", in.UserID).Msg("similarity lookup failed")
		return nil, err
	}
	if out == nil {
		out = []domain.SimilarUser{}
	}
	return out, nil
}
