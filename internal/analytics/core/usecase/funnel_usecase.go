package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

type FunnelInput struct {
	Device *string // nil = one result per device
	Window TimeWindow
}

type FunnelUseCase struct {
	store ports.EventStorePort
	log   zerolog.Logger
}

func NewFunnelUseCase(store ports.EventStorePort, log zerolog.Logger) *FunnelUseCase {
	return &FunnelUseCase{store: store, log: log}
}

func (uc *FunnelUseCase) Execute(ctx context.Context, in FunnelInput) ([]domain.FunnelAnalysisResult, error) {
	if err := in.Window.validate(); err != nil {
		return nil, err
	}

	sessions, err := uc.store.FindSessions(ctx, ports.SessionFilter{
		Device: in.Device,
		From:   in.Window.From,
		To:     in.Window.To,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "funnel").Msg("loading sessions failed")
		return nil, err
	}

	if in.Device != nil {
		return []domain.FunnelAnalysisResult{engine.CalculateFunnel(sessions, *in.Device)}, nil
	}
	return engine.GroupFunnelByDevice(sessions), nil
}
