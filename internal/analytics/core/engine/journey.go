package engine

import (
	"sort"
	"strings"

	"session-analytics-service/internal/analytics/core/domain"
)

const (
	JourneySeparator   = " -> "
	MaxJourneyPatterns = 20
)

// MineJourneys finds the most common page sequences among users with at
// least minSessions journeys. Each distinct journey counts once per user.
//
// The percentage denominator is every user with at least one journey, not
// only the users that met minSessions.
func MineJourneys(sessions []domain.Session, minSessions int) []domain.JourneyPattern {
	byUser := make(map[string][]string)
	for _, s := range sessions {
		if len(s.PagesVisited) == 0 {
			continue
		}
		byUser[s.UserID] = append(byUser[s.UserID], strings.Join(s.PagesVisited, JourneySeparator))
	}

	counts := make(map[string]int)
	for _, journeys := range byUser {
		if len(journeys) < minSessions {
			continue
		}
		seen := make(map[string]struct{}, len(journeys))
		for _, j := range journeys {
			if _, dup := seen[j]; dup {
				continue
			}
			seen[j] = struct{}{}
			counts[j]++
		}
	}

	patterns := make([]domain.JourneyPattern, 0, len(counts))
	for j, c := range counts {
		patterns = append(patterns, domain.JourneyPattern{
			JourneyPattern: j,
			UserCount:      c,
			Percentage:     domain.Round2(domain.Percent(c, len(byUser))),
		})
	}

	sort.Slice(patterns, func(a, b int) bool {
		if patterns[a].UserCount != patterns[b].UserCount {
			return patterns[a].UserCount > patterns[b].UserCount
		}
		return patterns[a].JourneyPattern < patterns[b].JourneyPattern
	})

	if len(patterns) > MaxJourneyPatterns {
		patterns = patterns[:MaxJourneyPatterns]
	}
	return patterns
}
