package engine

import (
	"sort"
	"time"

	"session-analytics-service/internal/analytics/core/domain"
)

// groupByBucket assigns every item to the bucket of its timestamp and returns
// the keys in ascending order together with the grouped items.
func groupByBucket[T any](items []T, period domain.Period, ts func(T) time.Time) ([]domain.BucketKey, map[domain.BucketKey][]T) {
	groups := make(map[domain.BucketKey][]T)
	for _, it := range items {
		k := domain.BucketKeyFor(ts(it), period)
		groups[k] = append(groups[k], it)
	}

	keys := make([]domain.BucketKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys, groups
}
