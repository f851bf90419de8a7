package engine

import (
	"sort"

	"session-analytics-service/internal/analytics/core/domain"
)

// DefaultDropoffLimit applies when the caller passes a limit <= 0.
const DefaultDropoffLimit = 10

// AnalyzeDropoffs ranks attrition between consecutive funnel steps, highest
// rate first. Pairs with equal rates keep funnel order.
func AnalyzeDropoffs(sessions []domain.Session, limit int) []domain.DropoffPoint {
	reached := reachedCounts(sessions, FunnelSteps)

	points := make([]domain.DropoffPoint, 0, len(FunnelSteps)-1)
	for i := 0; i < len(FunnelSteps)-1; i++ {
		at, next := reached[i], reached[i+1]
		count := at - next

		points = append(points, domain.DropoffPoint{
			FromStep:       FunnelSteps[i],
			ToStep:         FunnelSteps[i+1],
			DropoffCount:   count,
			DropoffRate:    domain.Round2(domain.Percent(count, at)),
			UsersAtStep:    at,
			UsersContinued: next,
		})
	}

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].DropoffRate > points[b].DropoffRate
	})

	if limit <= 0 {
		limit = DefaultDropoffLimit
	}
	if len(points) > limit {
		points = points[:limit]
	}
	return points
}
