package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-analytics-service/internal/analytics/core/domain"
)

func newScorer() *Scorer { return NewScorer(DefaultScoringConfig()) }

// ---- Score ----

func TestScore_RapidClickThenBack(t *testing.T) {
	evs := []domain.Interaction{
		event("u1", "home_page", domain.InteractionClick, t0),
		event("u1", "home_page", domain.InteractionClick, t0.Add(time.Second)),
		event("u1", "home_page", domain.InteractionBack, t0.Add(2*time.Second)),
	}

	res := newScorer().Score("u1", evs)

	assert.Equal(t, 3, res.Scores.Frustrated)
	assert.Equal(t, 2, res.Scores.Engaged)
	assert.InDelta(t, -0.2, res.Score, 1e-9)
	assert.Equal(t, domain.SentimentNegative, res.Label)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, []string{domain.PatternBackPress, domain.PatternRapidClicking}, res.Patterns)
}

func TestScore_ConversionAndLongPause(t *testing.T) {
	evs := []domain.Interaction{
		event("u1", "payment_page", domain.InteractionFormFill, t0),
		event("u1", "payment_page", domain.InteractionPurchase, t0.Add(45*time.Second)),
	}

	res := newScorer().Score("u1", evs)

	assert.Equal(t, 2, res.Scores.Engaged)
	assert.Equal(t, 3, res.Scores.Satisfied)
	assert.Equal(t, 1, res.Scores.Confused)
	assert.InDelta(t, 4.0/6.0, res.Score, 1e-9)
	assert.Equal(t, domain.SentimentPositive, res.Label)
	assert.Equal(t, []string{
		domain.PatternConversionAction,
		domain.PatternFormInteraction,
		domain.PatternLongPause,
	}, res.Patterns)
}

func TestScore_Empty(t *testing.T) {
	res := newScorer().Score("u1", nil)

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, domain.SentimentNeutral, res.Label)
	assert.Empty(t, res.Patterns)
}

func TestScore_UnknownTypesOnlyIsNeutral(t *testing.T) {
	evs := []domain.Interaction{event("u1", "home_page", "zoom", t0)}

	res := newScorer().Score("u1", evs)

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, domain.SentimentNeutral, res.Label)
}

func TestScore_TypeIsCaseInsensitive(t *testing.T) {
	evs := []domain.Interaction{event("u1", "home_page", "BACK", t0)}

	res := newScorer().Score("u1", evs)

	assert.Equal(t, 2, res.Scores.Frustrated)
}

func TestScore_SortsChronologically(t *testing.T) {
	sorted := []domain.Interaction{
		event("u1", "home_page", domain.InteractionScroll, t0),
		event("u1", "home_page", domain.InteractionClick, t0.Add(500*time.Millisecond)),
		event("u1", "home_page", domain.InteractionHover, t0.Add(40*time.Second)),
		event("u1", "home_page", domain.InteractionBack, t0.Add(41*time.Second)),
	}
	shuffled := []domain.Interaction{sorted[2], sorted[0], sorted[3], sorted[1]}

	s := newScorer()
	a := s.Score("u1", sorted)
	b := s.Score("u1", shuffled)
	again := s.Score("u1", sorted)

	assert.Equal(t, a, b)
	assert.Equal(t, a, again)
	assert.Equal(t, domain.InteractionHover, shuffled[0].Type, "input must not be reordered")
}

func TestScore_Bounds(t *testing.T) {
	types := []domain.InteractionType{
		domain.InteractionBack, domain.InteractionClick, domain.InteractionScroll,
		domain.InteractionHover, domain.InteractionFormFill, domain.InteractionPurchase,
	}
	gaps := []time.Duration{0, time.Second, 3 * time.Second, time.Minute}

	s := newScorer()
	for _, typ := range types {
		for _, gap := range gaps {
			evs := []domain.Interaction{
				event("u1", "p", domain.InteractionBack, t0),
				event("u1", "p", typ, t0.Add(gap)),
			}
			res := s.Score("u1", evs)
			assert.GreaterOrEqual(t, res.Score, -1.0)
			assert.LessOrEqual(t, res.Score, 1.0)
			assert.GreaterOrEqual(t, res.Confidence, 0.0)
			assert.LessOrEqual(t, res.Confidence, 1.0)
		}
	}
}

func TestScore_ConfigBoundaries(t *testing.T) {
	cfg := DefaultScoringConfig()
	s := NewScorer(cfg)

	// exactly at the rapid-click window is not rapid
	atWindow := s.Score("u1", []domain.Interaction{
		event("u1", "p", domain.InteractionClick, t0),
		event("u1", "p", domain.InteractionClick, t0.Add(cfg.RapidClickWindow)),
	})
	assert.Equal(t, 0, atWindow.Scores.Frustrated)

	// exactly at the pause window is not a pause
	atPause := s.Score("u1", []domain.Interaction{
		event("u1", "p", domain.InteractionScroll, t0),
		event("u1", "p", domain.InteractionScroll, t0.Add(cfg.LongPauseWindow)),
	})
	assert.Equal(t, 0, atPause.Scores.Confused)

	cfg.RapidClickWindow = 5 * time.Second
	wider := NewScorer(cfg).Score("u1", []domain.Interaction{
		event("u1", "p", domain.InteractionClick, t0),
		event("u1", "p", domain.InteractionClick, t0.Add(4*time.Second)),
	})
	assert.Equal(t, 1, wider.Scores.Frustrated)
}

func TestLabel_Threshold(t *testing.T) {
	s := newScorer()

	assert.Equal(t, domain.SentimentNeutral, s.Label(0.1))
	assert.Equal(t, domain.SentimentNeutral, s.Label(-0.1))
	assert.Equal(t, domain.SentimentPositive, s.Label(0.11))
	assert.Equal(t, domain.SentimentNegative, s.Label(-0.11))
}

// ---- ScorePage ----

func TestScorePage_UnweightedMean(t *testing.T) {
	evs := []domain.Interaction{
		// u1: one back, score -1
		event("u1", "home_page", domain.InteractionBack, t0),
		// u2: many scrolls, score 1
		event("u2", "home_page", domain.InteractionScroll, t0),
		event("u2", "home_page", domain.InteractionScroll, t0.Add(3*time.Second)),
		event("u2", "home_page", domain.InteractionScroll, t0.Add(6*time.Second)),
		event("u2", "home_page", domain.InteractionScroll, t0.Add(9*time.Second)),
		// anonymous, ignored for per-user results
		event("", "home_page", domain.InteractionBack, t0),
	}

	res := newScorer().ScorePage("home_page", evs)

	assert.Equal(t, "home_page", res.Page)
	assert.InDelta(t, 0.0, res.OverallSentiment, 1e-9)
	assert.Equal(t, 1, res.SentimentDistribution[domain.SentimentPositive])
	assert.Equal(t, 1, res.SentimentDistribution[domain.SentimentNegative])
	assert.Equal(t, 0, res.SentimentDistribution[domain.SentimentNeutral])
	assert.InDelta(t, 1.0, res.AvgConfidence, 1e-9)
	assert.Equal(t, 6, res.TotalInteractions)
	assert.Len(t, res.UserSentiments, 2)
}

func TestScorePage_Empty(t *testing.T) {
	res := newScorer().ScorePage("home_page", nil)

	assert.Equal(t, 0.0, res.OverallSentiment)
	assert.Len(t, res.SentimentDistribution, 3)
	assert.Empty(t, res.UserSentiments)
}

// ---- ScoreUser / Distribution / Trends ----

func TestScoreUser_PerPage(t *testing.T) {
	evs := []domain.Interaction{
		event("u1", "home_page", domain.InteractionScroll, t0),
		event("u1", "payment_page", domain.InteractionBack, t0.Add(5*time.Second)),
	}

	res := newScorer().ScoreUser("u1", evs)

	assert.Equal(t, "u1", res.UserID)
	require.Len(t, res.PageSentiments, 2)
	assert.Equal(t, domain.SentimentPositive, res.PageSentiments["home_page"].Label)
	assert.Equal(t, domain.SentimentNegative, res.PageSentiments["payment_page"].Label)
	assert.InDelta(t, -1.0/3.0, res.Overall.Score, 1e-9)
}

func TestDistribution_CountsUsers(t *testing.T) {
	evs := []domain.Interaction{
		event("u1", "p", domain.InteractionBack, t0),
		event("u2", "p", domain.InteractionPurchase, t0),
		event("u3", "p", domain.InteractionPurchase, t0),
	}

	dist := newScorer().Distribution(evs)

	assert.Equal(t, map[domain.SentimentLabel]int{
		domain.SentimentPositive: 2,
		domain.SentimentNeutral:  0,
		domain.SentimentNegative: 1,
	}, dist)
}

func TestTrends_Daily(t *testing.T) {
	day2 := t0.Add(24 * time.Hour)
	evs := []domain.Interaction{
		event("u1", "p", domain.InteractionPurchase, day2),
		event("u1", "p", domain.InteractionBack, t0),
	}

	res := newScorer().Trends(evs, domain.PeriodDaily)

	require.Len(t, res, 2)
	assert.Equal(t, "2024-03-05", res[0].Date)
	assert.Equal(t, -1.0, res[0].SentimentScore)
	assert.Equal(t, 1, res[0].InteractionCount)
	assert.Equal(t, "2024-03-06", res[1].Date)
	assert.Equal(t, 1.0, res[1].SentimentScore)
}
