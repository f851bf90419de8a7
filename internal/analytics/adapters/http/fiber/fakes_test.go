package fiber_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "session-analytics-service/internal/analytics/adapters/http/fiber"
	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeFunnelUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.FunnelInput) ([]domain.FunnelAnalysisResult, error)
	lastInput usecase.FunnelInput
	called    bool
}

func (f *fakeFunnelUseCase) Execute(ctx context.Context, in usecase.FunnelInput) ([]domain.FunnelAnalysisResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeDropoffUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.DropoffInput) ([]domain.DropoffPoint, error)
	lastInput usecase.DropoffInput
	called    bool
}

func (f *fakeDropoffUseCase) Execute(ctx context.Context, in usecase.DropoffInput) ([]domain.DropoffPoint, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeTrendsUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.TrendsInput) ([]domain.TrendPoint, error)
	lastInput usecase.TrendsInput
	called    bool
}

func (f *fakeTrendsUseCase) Execute(ctx context.Context, in usecase.TrendsInput) ([]domain.TrendPoint, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeCohortUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.CohortInput) ([]domain.CohortResult, error)
	lastInput usecase.CohortInput
}

func (f *fakeCohortUseCase) Execute(ctx context.Context, in usecase.CohortInput) ([]domain.CohortResult, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeJourneyUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.JourneyInput) ([]domain.JourneyPattern, error)
	lastInput usecase.JourneyInput
	called    bool
}

func (f *fakeJourneyUseCase) Execute(ctx context.Context, in usecase.JourneyInput) ([]domain.JourneyPattern, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.DashboardInput) (*domain.DashboardMetrics, error)
	lastInput usecase.DashboardInput
}

func (f *fakeDashboardUseCase) Execute(ctx context.Context, in usecase.DashboardInput) (*domain.DashboardMetrics, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.DashboardMetrics{}, nil
}

type fakeBehaviorUseCase struct {
	ExecuteFn func(ctx context.Context, userID string) (*domain.UserBehavior, error)
}

func (f *fakeBehaviorUseCase) Execute(ctx context.Context, userID string) (*domain.UserBehavior, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, userID)
	}
	return nil, nil
}

type fakeSimilarUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.SimilarUsersInput) ([]domain.SimilarUser, error)
	lastInput usecase.SimilarUsersInput
}

func (f *fakeSimilarUseCase) Execute(ctx context.Context, in usecase.SimilarUsersInput) ([]domain.SimilarUser, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

type fakeSentimentUseCase struct {
	AnalyzeUserFn    func(ctx context.Context, userID string) (*domain.UserSentiment, error)
	PageSentimentsFn func(ctx context.Context, in usecase.PageSentimentInput) ([]domain.PageSentiment, error)
	TrendsFn         func(ctx context.Context, in usecase.SentimentTrendsInput) ([]domain.SentimentTrendPoint, error)

	lastPageInput  usecase.PageSentimentInput
	lastTrendInput usecase.SentimentTrendsInput
}

func (f *fakeSentimentUseCase) AnalyzeUser(ctx context.Context, userID string) (*domain.UserSentiment, error) {
	if f.AnalyzeUserFn != nil {
		return f.AnalyzeUserFn(ctx, userID)
	}
	return &domain.UserSentiment{UserID: userID}, nil
}

func (f *fakeSentimentUseCase) PageSentiments(ctx context.Context, in usecase.PageSentimentInput) ([]domain.PageSentiment, error) {
	f.lastPageInput = in
	if f.PageSentimentsFn != nil {
		return f.PageSentimentsFn(ctx, in)
	}
	return nil, nil
}

func (f *fakeSentimentUseCase) Trends(ctx context.Context, in usecase.SentimentTrendsInput) ([]domain.SentimentTrendPoint, error) {
	f.lastTrendInput = in
	if f.TrendsFn != nil {
		return f.TrendsFn(ctx, in)
	}
	return nil, nil
}

type fakeBackfillUseCase struct {
	ExecuteFn func(ctx context.Context, limit int) ([]usecase.BackfillItemResult, error)
	lastLimit int
}

func (f *fakeBackfillUseCase) Execute(ctx context.Context, limit int) ([]usecase.BackfillItemResult, error) {
	f.lastLimit = limit
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, limit)
	}
	return nil, nil
}

type fakes struct {
	funnel    *fakeFunnelUseCase
	dropoff   *fakeDropoffUseCase
	trends    *fakeTrendsUseCase
	cohort    *fakeCohortUseCase
	journey   *fakeJourneyUseCase
	dashboard *fakeDashboardUseCase
	behavior  *fakeBehaviorUseCase
	similar   *fakeSimilarUseCase
	sentiment *fakeSentimentUseCase
	backfill  *fakeBackfillUseCase
}

func newFakes() *fakes {
	return &fakes{
		funnel:    &fakeFunnelUseCase{},
		dropoff:   &fakeDropoffUseCase{},
		trends:    &fakeTrendsUseCase{},
		cohort:    &fakeCohortUseCase{},
		journey:   &fakeJourneyUseCase{},
		dashboard: &fakeDashboardUseCase{},
		behavior:  &fakeBehaviorUseCase{},
		similar:   &fakeSimilarUseCase{},
		sentiment: &fakeSentimentUseCase{},
		backfill:  &fakeBackfillUseCase{},
	}
}

func setupApp(t *testing.T, f *fakes) *fiber.App {
	t.Helper()
	app := fiber.New()

	analytics := httpadapter.NewAnalyticsHandler(httpadapter.AnalyticsUseCases{
		Funnel:    f.funnel,
		Dropoff:   f.dropoff,
		Trends:    f.trends,
		Cohort:    f.cohort,
		Journey:   f.journey,
		Dashboard: f.dashboard,
	})
	users := httpadapter.NewUserHandler(f.behavior, f.similar)
	sentiment := httpadapter.NewSentimentHandler(f.sentiment, f.backfill)

	app.Get("/health", httpadapter.Health("session-analytics-service"))
	app.Get("/dashboard/metrics", analytics.GetDashboard)
	app.Get("/funnel/analysis", analytics.GetFunnel)
	app.Get("/funnel/dropoff", analytics.GetDropoffs)
	app.Get("/analytics/conversion-trends", analytics.GetConversionTrends)
	app.Get("/analytics/cohort", analytics.GetCohorts)
	app.Get("/analytics/user-journey", analytics.GetJourneys)
	app.Get("/users/similar/:user_id", users.GetSimilar)
	app.Get("/users/:user_id/behavior", users.GetBehavior)
	app.Get("/users/:user_id/sentiment", sentiment.GetUserSentiment)
	app.Get("/sentiment/analysis", sentiment.GetPageSentiments)
	app.Get("/sentiment/trends", sentiment.GetSentimentTrends)
	app.Post("/sentiment/backfill", sentiment.RunBackfill)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decoding body %q: %v", string(body), err)
	}
}

func floatPtr(v float64) *float64 { return &v }
