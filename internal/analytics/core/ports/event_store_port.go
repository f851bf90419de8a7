package ports

import (
	"context"
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

type SessionFilter struct {
	Device *string    // optional
	From   *time.Time // start_time >= From
	To     *time.Time // start_time <= To
	UserID *string
}

type UserFilter struct {
	Device *string
	Limit  int // 0 = no limit
}

type InteractionFilter struct {
	UserID *string
	Page   *string
	From   *time.Time
	To     *time.Time
}

// EventStorePort is the read side over recorded users, sessions and
// interactions. Sessions come back ordered by start time.
type EventStorePort interface {
	CountSessions(ctx context.Context, f SessionFilter) (int64, error)
	FindSessions(ctx context.Context, f SessionFilter) ([]domain.Session, error)

	FindUsers(ctx context.Context, f UserFilter) ([]domain.User, error)
	// FindUser returns nil, nil when the user does not exist.
	FindUser(ctx context.Context, userID string) (*domain.User, error)

	FindInteractions(ctx context.Context, f InteractionFilter) ([]domain.Interaction, error)
	CountInteractions(ctx context.Context, f InteractionFilter) (int64, error)

	// SessionStatsByUser aggregates session count and conversion per user in
	// one grouped query. Users without sessions are absent from the map.
	SessionStatsByUser(ctx context.Context, userIDs []string) (map[string]domain.UserSessionStats, error)
}
