package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

const dashboardDropoffLimit = 5

type DashboardInput struct {
	Window TimeWindow
}

type DashboardUseCase struct {
	store  ports.EventStorePort
	scorer *engine.Scorer
	cache  ports.DashboardCachePort // optional
	log    zerolog.Logger
}

// NewDashboardUseCase builds the use case. cache may be nil.
func NewDashboardUseCase(store ports.EventStorePort, scorer *engine.Scorer, cache ports.DashboardCachePort, log zerolog.Logger) *DashboardUseCase {
	return &DashboardUseCase{store: store, scorer: scorer, cache: cache, log: log}
}

// Execute composes the dashboard for a closed window. Cache failures are
// logged and never fail the request.
func (uc *DashboardUseCase) Execute(ctx context.Context, in DashboardInput) (*domain.DashboardMetrics, error) {
	w := in.Window
	if w.From == nil || w.To == nil {
		return nil, ErrInvalidTimeRange
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, found, err := uc.cache.GetDashboard(ctx, *w.From, *w.To)
		if err != nil {
			uc.log.Warn().Err(err).Msg("dashboard cache read failed")
		} else if found {
			return cached, nil
		}
	}

	sessions, err := uc.store.FindSessions(ctx, ports.SessionFilter{From: w.From, To: w.To})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "dashboard").Msg("loading sessions failed")
		return nil, err
	}

	interactions, err := uc.store.FindInteractions(ctx, ports.InteractionFilter{From: w.From, To: w.To})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "dashboard").Msg("loading interactions failed")
		return nil, err
	}

	m := compose(sessions, interactions, uc.scorer)

	if uc.cache != nil {
		if err := uc.cache.SetDashboard(ctx, *w.From, *w.To, m); err != nil {
			uc.log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}

	return m, nil
}

func compose(sessions []domain.Session, interactions []domain.Interaction, scorer *engine.Scorer) *domain.DashboardMetrics {
	users := make(map[string]struct{})
	converted := 0
	for _, s := range sessions {
		users[s.UserID] = struct{}{}
		if s.ConversionCompleted {
			converted++
		}
	}

	byDevice := make(map[string]float64)
	for _, f := range engine.GroupFunnelByDevice(sessions) {
		byDevice[f.DeviceType] = f.OverallConversionRate
	}

	return &domain.DashboardMetrics{
		TotalUsers:                len(users),
		TotalSessions:             len(sessions),
		OverallConversionRate:     domain.Round2(domain.Percent(converted, len(sessions))),
		MobileVsDesktopConversion: byDevice,
		TopDropOffPoints:          engine.AnalyzeDropoffs(sessions, dashboardDropoffLimit),
		DailyMetrics:              engine.ConversionTrends(sessions, domain.PeriodDaily),
		SentimentDistribution:     scorer.Distribution(interactions),
	}
}
