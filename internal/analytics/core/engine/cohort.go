package engine

import (
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

// CohortRetention groups users by registration bucket. stats holds the
// session aggregate of every user; users missing from it have no sessions.
func CohortRetention(users []domain.User, stats map[string]domain.UserSessionStats, period domain.Period) []domain.CohortResult {
	keys, groups := groupByBucket(users, period, func(u domain.User) time.Time { return u.RegisteredAt })

	cohorts := make([]domain.CohortResult, 0, len(keys))
	for _, k := range keys {
		members := groups[k]

		var retained, converted int
		for _, u := range members {
			st := stats[u.UserID]
			if st.SessionCount > 1 {
				retained++
			}
			if st.Converted {
				converted++
			}
		}

		cohorts = append(cohorts, domain.CohortResult{
			CohortDate:     k.String(),
			CohortType:     k.Period,
			CohortSize:     len(members),
			RetainedUsers:  retained,
			ConvertedUsers: converted,
			RetentionRate:  domain.Round2(domain.Percent(retained, len(members))),
			ConversionRate: domain.Round2(domain.Percent(converted, len(members))),
		})
	}
	return cohorts
}
