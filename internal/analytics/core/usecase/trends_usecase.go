package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

type TrendsInput struct {
	Period domain.Period // "" = daily
	Device *string
	Window TimeWindow
}

type TrendsUseCase struct {
	store ports.EventStorePort
	log   zerolog.Logger
}

func NewTrendsUseCase(store ports.EventStorePort, log zerolog.Logger) *TrendsUseCase {
	return &TrendsUseCase{store: store, log: log}
}

func (uc *TrendsUseCase) Execute(ctx context.Context, in TrendsInput) ([]domain.TrendPoint, error) {
	period, err := resolvePeriod(in.Period, domain.PeriodDaily)
	if err != nil {
		return nil, err
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
		uc.log.Error().Err(err).Str("op", "conversion_trends").Str("period", string(period)).Msg("loading sessions failed")
		return nil, err
	}

	return engine.ConversionTrends(sessions, period), nil
}
