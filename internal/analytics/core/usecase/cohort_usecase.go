package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

type CohortInput struct {
	Period domain.Period // "" = weekly
	Device *string
}

type CohortUseCase struct {
	store ports.EventStorePort
	log   zerolog.Logger
}

func NewCohortUseCase(store ports.EventStorePort, log zerolog.Logger) *CohortUseCase {
	return &CohortUseCase{store: store, log: log}
}

// Execute loads the cohort members and their session aggregates with a
// single grouped call, then buckets them by registration date.
func (uc *CohortUseCase) Execute(ctx context.Context, in CohortInput) ([]domain.CohortResult, error) {
	period, err := resolvePeriod(in.Period, domain.PeriodWeekly)
	if err != nil {
		return nil, err
	}

	users, err := uc.store.FindUsers(ctx, ports.UserFilter{Device: in.Device})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "cohort").Msg("loading users failed")
		return nil, err
	}
	if len(users) == 0 {
		return []domain.CohortResult{}, nil
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}

	stats, err := uc.store.SessionStatsByUser(ctx, ids)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "cohort").Int("users", len(ids)).Msg("loading session stats failed")
		return nil, err
	}

	return engine.CohortRetention(users, stats, period), nil
}
