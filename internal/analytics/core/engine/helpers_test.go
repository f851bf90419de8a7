package engine

import (
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

var t0 = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func session(user, device string, pages ...string) domain.Session {
	return domain.Session{
		SessionID:    user + "-" + device,
		UserID:       user,
		Device:       device,
		StartTime:    t0,
		PagesVisited: pages,
	}
}

func timed(s domain.Session, start time.Time, dur time.Duration) domain.Session {
	s.StartTime = start
	end := start.Add(dur)
	s.EndTime = &end
	return s
}

func event(user, page string, typ domain.InteractionType, at time.Time) domain.Interaction {
	return domain.Interaction{UserID: user, Page: page, Type: typ, Timestamp: at}
}
