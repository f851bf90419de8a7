package usecase

import (
	"errors"
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

var (
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrInvalidTimeRange   = errors.New("invalid time range")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidMinSessions = errors.New("min_sessions must be at least 1")
	ErrSimilarityDisabled = errors.New("similarity service is not configured")
)

// TimeWindow is an optional [From, To] range. Either end may be nil.
type TimeWindow struct {
	From *time.Time
	To   *time.Time
}

func (w TimeWindow) validate() error {
	if w.From != nil && w.To != nil && w.From.After(*w.To) {
		return ErrInvalidTimeRange
	}
	return nil
}

// resolvePeriod applies def to an empty period and rejects unknown ones.
func resolvePeriod(p, def domain.Period) (domain.Period, error) {
	if p == "" {
		return def, nil
	}
	if !p.Valid() {
		return "", ErrInvalidPeriod
	}
	return p, nil
}
