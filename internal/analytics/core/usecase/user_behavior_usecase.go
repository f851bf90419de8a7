package usecase

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"session-analytics-service/internal/analytics/core/domain"
	"session-analytics-service/internal/analytics/core/ports"
)

type UserBehaviorUseCase struct {
	store      ports.EventStorePort
	sentiments ports.SentimentStorePort
	log        zerolog.Logger
}

func NewUserBehaviorUseCase(store ports.EventStorePort, sentiments ports.SentimentStorePort, log zerolog.Logger) *UserBehaviorUseCase {
	return &UserBehaviorUseCase{store: store, sentiments: sentiments, log: log}
}

// Execute returns nil, nil for an unknown user.
func (uc *UserBehaviorUseCase) Execute(ctx context.Context, userID string) (*domain.UserBehavior, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	logger := uc.log.With().Str("op", "user_behavior").Str("user_id", userID).Logger()

	user, err := uc.store.FindUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msg("loading user failed")
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	filter := ports.SessionFilter{UserID: &userID}

	total, err := uc.store.CountSessions(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("counting sessions failed")
		return nil, err
	}

	sessions, err := uc.store.FindSessions(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("loading sessions failed")
		return nil, err
	}

	interactions, err := uc.store.CountInteractions(ctx, ports.InteractionFilter{UserID: &userID})
	if err != nil {
		logger.Error().Err(err).Msg("counting interactions failed")
		return nil, err
	}

	seen := make(map[string]struct{})
	pages := []string{}
	converted := false
	for _, s := range sessions {
		for _, p := range s.PagesVisited {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			pages = append(pages, p)
		}
		if s.ConversionCompleted {
			converted = true
		}
	}
	sort.Strings(pages)

	device := user.Device
	if device == "" {
		device = domain.UnknownDevice
	}

	b := &domain.UserBehavior{
		UserID:              userID,
		Device:              device,
		TotalSessions:       int(total),
		TotalInteractions:   interactions,
		PagesVisited:        pages,
		ConversionCompleted: converted,
	}

	if uc.sentiments != nil {
		rec, err := uc.sentiments.LatestSentiment(ctx, userID)
		if err != nil {
			logger.Error().Err(err).Msg("loading sentiment failed")
			return nil, err
		}
		if rec != nil {
			score := rec.Score
			b.SentimentScore = &score
		}
	}

	return b, nil
}
