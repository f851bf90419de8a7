package usecase

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

type PageSentimentInput struct {
	Page   *string // nil = every page
	Window TimeWindow
}

type SentimentTrendsInput struct {
	Period domain.Period // "" = daily
	Page   *string
	Window TimeWindow
}

type SentimentUseCase struct {
	store  ports.EventStorePort
	scorer *engine.Scorer
	log    zerolog.Logger
}

func NewSentimentUseCase(store ports.EventStorePort, scorer *engine.Scorer, log zerolog.Logger) *SentimentUseCase {
	return &SentimentUseCase{store: store, scorer: scorer, log: log}
}

// AnalyzeUser scores every interaction of a user. A user without
// interactions gets a neutral zero result.
func (uc *SentimentUseCase) AnalyzeUser(ctx context.Context, userID string) (*domain.UserSentiment, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	interactions, err := uc.store.FindInteractions(ctx, ports.InteractionFilter{UserID: &userID})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "user_sentiment").Str("user_id", userID).Msg("loading interactions failed")
		return nil, err
	}

	res := uc.scorer.ScoreUser(userID, interactions)
	return &res, nil
}

// PageSentiments returns one aggregate per page, ordered by page name.
func (uc *SentimentUseCase) PageSentiments(ctx context.Context, in PageSentimentInput) ([]domain.PageSentiment, error) {
	if err := in.Window.validate(); err != nil {
		return nil, err
	}

	interactions, err := uc.store.FindInteractions(ctx, ports.InteractionFilter{
		Page: in.Page,
		From: in.Window.From,
		To:   in.Window.To,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "page_sentiment").Msg("loading interactions failed")
		return nil, err
	}

	byPage := make(map[string][]domain.Interaction)
	for _, it := range interactions {
		if it.Page == "" {
			continue
		}
		byPage[it.Page] = append(byPage[it.Page], it)
	}

	pages := make([]string, 0, len(byPage))
	for p := range byPage {
		pages = append(pages, p)
	}
	sort.Strings(pages)

	out := make([]domain.PageSentiment, 0, len(pages))
	for _, p := range pages {
		out = append(out, uc.scorer.ScorePage(p, byPage[p]))
	}
	return out, nil
}

func (uc *SentimentUseCase) Trends(ctx context.Context, in SentimentTrendsInput) ([]domain.SentimentTrendPoint, error) {
	period, err := resolvePeriod(in.Period, domain.PeriodDaily)
	if err != nil {
		return nil, err
	}
	if err := in.Window.validate(); err != nil {
		return nil, err
	}

	interactions, err := uc.store.FindInteractions(ctx, ports.InteractionFilter{
		Page: in.Page,
		From: in.Window.From,
		To:   in.Window.To,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "sentiment_trends").Msg("loading interactions failed")
		return nil, err
	}

	return uc.scorer.Trends(interactions, period), nil
}
