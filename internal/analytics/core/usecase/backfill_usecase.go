package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/engine"
	"session-analytics-service/internal/analytics/core/ports"
)

const (
	DefaultBackfillLimit = 1000
	DefaultRecentWindow  = 7 * 24 * time.Hour

	backfillProgressEvery = 100
	overallPage           = "overall"
)

// BackfillItemResult is the outcome for one user. Skipped users already had
// a recent snapshot.
type BackfillItemResult struct {
	UserID  string
	OK      bool
	Skipped bool
	Err     error
}

type BackfillSummary struct {
	TotalProcessed int
	SuccessCount   int
	SkippedCount   int
	FailureCount   int
}

func Summarize(results []BackfillItemResult) BackfillSummary {
	s := BackfillSummary{TotalProcessed: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			s.SkippedCount++
		case r.OK:
			s.SuccessCount++
		default:
			s.FailureCount++
		}
	}
	return s
}

type SentimentBackfillUseCase struct {
	store        ports.EventStorePort
	sentiments   ports.SentimentStorePort
	scorer       *engine.Scorer
	recentWindow time.Duration
	now          func() time.Time
	log          zerolog.Logger
}

func NewSentimentBackfillUseCase(
	store ports.EventStorePort,
	sentiments ports.SentimentStorePort,
	scorer *engine.Scorer,
	recentWindow time.Duration,
	log zerolog.Logger,
) *SentimentBackfillUseCase {
	if recentWindow <= 0 {
		recentWindow = DefaultRecentWindow
	}
	return &SentimentBackfillUseCase{
		store:        store,
		sentiments:   sentiments,
		scorer:       scorer,
		recentWindow: recentWindow,
		now:          time.Now,
		log:          log,
	}
}

// Execute scores up to limit users and stores one snapshot per user. A
// failing user is recorded and the batch moves on. Only a failure to list
// the candidate users, or cancellation, stops it early.
func (uc *SentimentBackfillUseCase) Execute(ctx context.Context, limit int) ([]BackfillItemResult, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultBackfillLimit
	}

	users, err := uc.store.FindUsers(ctx, ports.UserFilter{Limit: limit})
	if err != nil {
		uc.log.Error().Err(err).Str("op", "sentiment_backfill").Msg("listing users failed")
		return nil, err
	}

	uc.log.Info().Int("candidates", len(users)).Msg("starting sentiment backfill")

	cutoff := uc.now().Add(-uc.recentWindow)
	results := make([]BackfillItemResult, 0, len(users))
	analyzed := 0

	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := uc.backfillUser(ctx, u.UserID, cutoff)
		if res.Err != nil {
			uc.log.Error().Err(res.Err).Str("user_id", u.UserID).Msg("sentiment backfill failed for user")
		}
		results = append(results, res)

		if res.OK && !res.Skipped {
			analyzed++
			if analyzed%backfillProgressEvery == 0 {
				uc.log.Info().Int("analyzed", analyzed).Msg("sentiment backfill progress")
			}
		}
	}

	sum := Summarize(results)
	uc.log.Info().
		Int("processed", sum.TotalProcessed).
		Int("succeeded", sum.SuccessCount).
		Int("skipped", sum.SkippedCount).
		Int("failed", sum.FailureCount).
		Msg("sentiment backfill finished")

	return results, nil
}

func (uc *SentimentBackfillUseCase) backfillUser(ctx context.Context, userID string, cutoff time.Time) BackfillItemResult {
	res := BackfillItemResult{UserID: userID}

	recent, err := uc.sentiments.HasRecentSentiment(ctx, userID, cutoff)
	if err != nil {
		res.Err = err
		return res
	}
	if recent {
		res.OK, res.Skipped = true, true
		return res
	}

	interactions, err := uc.store.FindInteractions(ctx, ports.InteractionFilter{UserID: &userID})
	if err != nil {
		res.Err = err
		return res
	}

	overall := uc.scorer.Score(userID, interactions)
	rec := &domain.SentimentRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		Page:       overallPage,
		Score:      overall.Score,
		Label:      overall.Label,
		Confidence: overall.Confidence,
		Patterns:   overall.Patterns,
		AnalyzedAt: uc.now().UTC(),
	}
	if err := uc.sentiments.SaveSentiment(ctx, rec); err != nil {
		res.Err = err
		return res
	}

	res.OK = true
	return res
}
