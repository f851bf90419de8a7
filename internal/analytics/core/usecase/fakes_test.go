package usecase_test

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

var (
	nopLog = zerolog.Nop()
	t0     = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func defaultScorer() *engine.Scorer { return engine.NewScorer(engine.DefaultScoringConfig()) }

// fakeEventStore fakes EventStorePort for tests.
type fakeEventStore struct {
	CountSessionsFn      func(ctx context.Context, f ports.SessionFilter) (int64, error)
	FindSessionsFn       func(ctx context.Context, f ports.SessionFilter) ([]domain.Session, error)
	FindUsersFn          func(ctx context.Context, f ports.UserFilter) ([]domain.User, error)
	FindUserFn           func(ctx context.Context, userID string) (*domain.User, error)
	FindInteractionsFn   func(ctx context.Context, f ports.InteractionFilter) ([]domain.Interaction, error)
	CountInteractionsFn  func(ctx context.Context, f ports.InteractionFilter) (int64, error)
	SessionStatsByUserFn func(ctx context.Context, ids []string) (map[string]domain.UserSessionStats, error)

	sessionCalls int
	statsCalls   int
}

func (f *fakeEventStore) CountSessions(ctx context.Context, flt ports.SessionFilter) (int64, error) {
	if f.CountSessionsFn != nil {
		return f.CountSessionsFn(ctx, flt)
	}
	return 0, nil
}

func (f *fakeEventStore) FindSessions(ctx context.Context, flt ports.SessionFilter) ([]domain.Session, error) {
	f.sessionCalls++
	if f.FindSessionsFn != nil {
		return f.FindSessionsFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeEventStore) FindUsers(ctx context.Context, flt ports.UserFilter) ([]domain.User, error) {
	if f.FindUsersFn != nil {
		return f.FindUsersFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeEventStore) FindUser(ctx context.Context, userID string) (*domain.User, error) {
	if f.FindUserFn != nil {
		return f.FindUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeEventStore) FindInteractions(ctx context.Context, flt ports.InteractionFilter) ([]domain.Interaction, error) {
	if f.FindInteractionsFn != nil {
		return f.FindInteractionsFn(ctx, flt)
	}
	return nil, nil
}

func (f *fakeEventStore) CountInteractions(ctx context.Context, flt ports.InteractionFilter) (int64, error) {
	if f.CountInteractionsFn != nil {
		return f.CountInteractionsFn(ctx, flt)
	}
	return 0, nil
}

func (f *fakeEventStore) SessionStatsByUser(ctx context.Context, ids []string) (map[string]domain.UserSessionStats, error) {
	f.statsCalls++
	if f.SessionStatsByUserFn != nil {
		return f.SessionStatsByUserFn(ctx, ids)
	}
	return map[string]domain.UserSessionStats{}, nil
}

type fakeSentimentStore struct {
	SaveFn   func(ctx context.Context, r *domain.SentimentRecord) error
	RecentFn func(ctx context.Context, userID string, since time.Time) (bool, error)
	LatestFn func(ctx context.Context, userID string) (*domain.SentimentRecord, error)

	saved []*domain.SentimentRecord
}

func (f *fakeSentimentStore) SaveSentiment(ctx context.Context, r *domain.SentimentRecord) error {
	if f.SaveFn != nil {
		if err := f.SaveFn(ctx, r); err != nil {
			return err
		}
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeSentimentStore) HasRecentSentiment(ctx context.Context, userID string, since time.Time) (bool, error) {
	if f.RecentFn != nil {
		return f.RecentFn(ctx, userID, since)
	}
	return false, nil
}

func (f *fakeSentimentStore) LatestSentiment(ctx context.Context, userID string) (*domain.SentimentRecord, error) {
	if f.LatestFn != nil {
		return f.LatestFn(ctx, userID)
	}
	return nil, nil
}

type fakeSimilarity struct {
	FindFn func(ctx context.Context, userID string, device *string, limit int) ([]domain.SimilarUser, error)
}

func (f *fakeSimilarity) FindSimilarUsers(ctx context.Context, userID string, device *string, limit int) ([]domain.SimilarUser, error) {
	if f.FindFn != nil {
		return f.FindFn(ctx, userID, device, limit)
	}
	return nil, nil
}

type fakeDashboardCache struct {
	GetFn func(ctx context.Context, from, to time.Time) (*domain.DashboardMetrics, bool, error)
	SetFn func(ctx context.Context, from, to time.Time, m *domain.DashboardMetrics) error

	setCalls int
}

func (f *fakeDashboardCache) GetDashboard(ctx context.Context, from, to time.Time) (*domain.DashboardMetrics, bool, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, from, to)
	}
	return nil, false, nil
}

func (f *fakeDashboardCache) SetDashboard(ctx context.Context, from, to time.Time, m *domain.DashboardMetrics) error {
	f.setCalls++
	if f.SetFn != nil {
		return f.SetFn(ctx, from, to, m)
	}
	return nil
}
