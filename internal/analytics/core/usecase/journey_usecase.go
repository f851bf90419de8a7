package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

const DefaultMinSessions = 2

type JourneyInput struct {
	Device      *string
	Window      TimeWindow
	MinSessions int // 0 = DefaultMinSessions
}

type JourneyUseCase struct {
	store ports.EventStorePort
	log   zerolog.Logger
}

func NewJourneyUseCase(store ports.EventStorePort, log zerolog.Logger) *JourneyUseCase {
	return &JourneyUseCase{store: store, log: log}
}

func (uc *JourneyUseCase) Execute(ctx context.Context, in JourneyInput) ([]domain.JourneyPattern, error) {
	if in.MinSessions == 0 {
		in.MinSessions = DefaultMinSessions
	}
	if in.MinSessions < 1 {
		return nil, ErrInvalidMinSessions
	}
	if err := in.Window.validate(); err != nil {
		return nil, err
	}

	sessions, err := uc.store.FindSessions(ctx, ports.SessionFilter{
		Device: in.Device,
		From:   in.Window.From,
		To:     in.Window.To,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "journeys").Msg("loading sessions failed")
		return nil, err
	}

	return engine.MineJourneys(sessions, in.MinSessions), nil
}
