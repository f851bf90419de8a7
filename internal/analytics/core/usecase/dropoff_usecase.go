package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

const maxDropoffLimit = 100

type DropoffInput struct {
	Device *string
	Window TimeWindow
	Limit  int // 0 = engine.DefaultDropoffLimit
}

type DropoffUseCase struct {
	store ports.EventStorePort
	log   zerolog.Logger
}

func NewDropoffUseCase(store ports.EventStorePort, log zerolog.Logger) *DropoffUseCase {
	return &DropoffUseCase{store: store, log: log}
}

func (uc *DropoffUseCase) Execute(ctx context.Context, in DropoffInput) ([]domain.DropoffPoint, error) {
	if in.Limit < 0 || in.Limit > maxDropoffLimit {
		return nil, ErrInvalidLimit
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
		uc.log.Error().Err(err).Str("op", "dropoff").Msg("loading sessions failed")
		return nil, err
	}

	return engine.AnalyzeDropoffs(sessions, in.Limit), nil
}
