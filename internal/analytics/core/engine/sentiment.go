package engine

import (
	"sort"
	"strings"
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

// ScoringConfig is the rule table of the sentiment scorer.
type ScoringConfig struct {
	RapidClickWindow time.Duration // click closer than this to the previous event is frustrated
	LongPauseWindow  time.Duration // gap longer than this is confused
	LabelThreshold   float64

	BackPoints       int
	RapidClickPoints int
	EngagePoints     int // click, scroll, hover
	FormFillPoints   int
	ConversionPoints int // purchase, form_submit
	LongPausePoints  int
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		RapidClickWindow: 2 * time.Second,
		LongPauseWindow:  30 * time.Second,
		LabelThreshold:   0.1,
		BackPoints:       2,
		RapidClickPoints: 1,
		EngagePoints:     1,
		FormFillPoints:   2,
		ConversionPoints: 3,
		LongPausePoints:  1,
	}
}

// Scorer infers a sentiment from interaction timing and type sequences.
type Scorer struct {
	cfg ScoringConfig
}

func NewScorer(cfg ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

func (s *Scorer) Config() ScoringConfig { return s.cfg }

// Score evaluates one subject. The input slice is not modified.
func (s *Scorer) Score(subject string, interactions []domain.Interaction) domain.SentimentResult {
	res := domain.SentimentResult{
		Subject:  subject,
		Label:    domain.SentimentNeutral,
		Patterns: []string{},
	}
	if len(interactions) == 0 {
		return res
	}

	events := make([]domain.Interaction, len(interactions))
	copy(events, interactions)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	var sc domain.PatternScores
	tags := make(map[string]struct{})

	for i, ev := range events {
		var gap time.Duration
		hasPrev := i > 0
		if hasPrev {
			gap = ev.Timestamp.Sub(events[i-1].Timestamp)
		}

		switch domain.InteractionType(strings.ToLower(string(ev.Type))) {
		case domain.InteractionBack:
			sc.Frustrated += s.cfg.BackPoints
			tags[domain.PatternBackPress] = struct{}{}
		case domain.InteractionClick:
			if hasPrev && gap < s.cfg.RapidClickWindow {
				sc.Frustrated += s.cfg.RapidClickPoints
				tags[domain.PatternRapidClicking] = struct{}{}
			}
			sc.Engaged += s.cfg.EngagePoints
		case domain.InteractionScroll, domain.InteractionHover:
			sc.Engaged += s.cfg.EngagePoints
		case domain.InteractionFormFill:
			sc.Engaged += s.cfg.FormFillPoints
			tags[domain.PatternFormInteraction] = struct{}{}
		case domain.InteractionPurchase, domain.InteractionFormSubmit:
			sc.Satisfied += s.cfg.ConversionPoints
			tags[domain.PatternConversionAction] = struct{}{}
		}

		if hasPrev && gap > s.cfg.LongPauseWindow {
			sc.Confused += s.cfg.LongPausePoints
			tags[domain.PatternLongPause] = struct{}{}
		}
	}

	pos, neg := sc.Positive(), sc.Negative()
	if total := pos + neg; total > 0 {
		res.Score = float64(pos-neg) / float64(total)
		res.Confidence = min(1, float64(total)/float64(len(events)))
	}
	res.Label = s.Label(res.Score)
	res.Scores = sc

	for t := range tags {
		res.Patterns = append(res.Patterns, t)
	}
	sort.Strings(res.Patterns)

	return res
}

func (s *Scorer) Label(score float64) domain.SentimentLabel {
	switch {
	case score > s.cfg.LabelThreshold:
		return domain.SentimentPositive
	case score < -s.cfg.LabelThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// ScoreUsers scores every user separately. Interactions without a user are
// ignored.
func (s *Scorer) ScoreUsers(interactions []domain.Interaction) map[string]domain.SentimentResult {
	byUser := make(map[string][]domain.Interaction)
	for _, in := range interactions {
		if in.UserID == "" {
			continue
		}
		byUser[in.UserID] = append(byUser[in.UserID], in)
	}

	out := make(map[string]domain.SentimentResult, len(byUser))
	for u, evs := range byUser {
		out[u] = s.Score(u, evs)
	}
	return out
}

// ScorePage aggregates per-user results of one page. The overall sentiment
// is the unweighted mean of user scores.
func (s *Scorer) ScorePage(page string, interactions []domain.Interaction) domain.PageSentiment {
	users := s.ScoreUsers(interactions)

	ps := domain.PageSentiment{
		Page:                  page,
		SentimentDistribution: domain.NewLabelDistribution(),
		TotalInteractions:     len(interactions),
		UserSentiments:        users,
	}
	if len(users) == 0 {
		return ps
	}

	var scoreSum, confSum float64
	for _, r := range users {
		scoreSum += r.Score
		confSum += r.Confidence
		ps.SentimentDistribution[r.Label]++
	}
	ps.OverallSentiment = scoreSum / float64(len(users))
	ps.AvgConfidence = confSum / float64(len(users))

	return ps
}

// ScoreUser returns the overall result of a user plus one result per page.
// Interactions without a page only count toward the overall result.
func (s *Scorer) ScoreUser(userID string, interactions []domain.Interaction) domain.UserSentiment {
	byPage := make(map[string][]domain.Interaction)
	for _, in := range interactions {
		if in.Page == "" {
			continue
		}
		byPage[in.Page] = append(byPage[in.Page], in)
	}

	pages := make(map[string]domain.SentimentResult, len(byPage))
	for p, evs := range byPage {
		pages[p] = s.Score(p, evs)
	}

	return domain.UserSentiment{
		UserID:         userID,
		Overall:        s.Score(userID, interactions),
		PageSentiments: pages,
	}
}

// Distribution counts per-user labels over the whole input.
func (s *Scorer) Distribution(interactions []domain.Interaction) map[domain.SentimentLabel]int {
	dist := domain.NewLabelDistribution()
	for _, r := range s.ScoreUsers(interactions) {
		dist[r.Label]++
	}
	return dist
}

// Trends buckets interactions by timestamp and aggregates each bucket the
// way a page is aggregated.
func (s *Scorer) Trends(interactions []domain.Interaction, period domain.Period) []domain.SentimentTrendPoint {
	keys, groups := groupByBucket(interactions, period, func(in domain.Interaction) time.Time { return in.Timestamp })

	points := make([]domain.SentimentTrendPoint, 0, len(keys))
	for _, k := range keys {
		agg := s.ScorePage(k.String(), groups[k])
		points = append(points, domain.SentimentTrendPoint{
			Date:                  k.String(),
			Period:                k.Period,
			SentimentScore:        agg.OverallSentiment,
			SentimentDistribution: agg.SentimentDistribution,
			Confidence:            agg.AvgConfidence,
			InteractionCount:      agg.TotalInteractions,
		})
	}
	return points
}
