package engine

import (
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

// ConversionTrends buckets sessions by start time and reports per-bucket
// session, conversion and distinct-user counts in ascending date order.
func ConversionTrends(sessions []domain.Session, period domain.Period) []domain.TrendPoint {
	keys, groups := groupByBucket(sessions, period, func(s domain.Session) time.Time { return s.StartTime })

	points := make([]domain.TrendPoint, 0, len(keys))
	for _, k := range keys {
		group := groups[k]

		var conversions int
		users := make(map[string]struct{})
		for _, s := range group {
			if s.ConversionCompleted {
				conversions++
			}
			users[s.UserID] = struct{}{}
		}

		points = append(points, domain.TrendPoint{
			Date:           k.String(),
			Period:         k.Period,
			TotalSessions:  len(group),
			Conversions:    conversions,
			UniqueUsers:    len(users),
			ConversionRate: domain.Round2(domain.Percent(conversions, len(group))),
		})
	}
	return points
}
