package domain

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// BucketKey is the composite grouping key of a time bucket:
// (year, month, day) for daily, (ISO year, ISO week) for weekly and
// (year, month) for monthly. Unused parts stay zero.
type BucketKey struct {
	Period Period
	Year   int
	Month  int
	Week   int
	Day    int
}

// BucketKeyFor derives the bucket of t in UTC. Weeks follow ISO-8601, so the
// first days of January can belong to the previous year's last week.
func BucketKeyFor(t time.Time, p Period) BucketKey {
	t = t.UTC()
	switch p {
	case PeriodDaily:
		return BucketKey{Period: p, Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	case PeriodWeekly:
		y, w := t.ISOWeek()
		return BucketKey{Period: p, Year: y, Week: w}
	default:
		return BucketKey{Period: PeriodMonthly, Year: t.Year(), Month: int(t.Month())}
	}
}

func (k BucketKey) Less(o BucketKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Month != o.Month {
		return k.Month < o.Month
	}
	if k.Week != o.Week {
		return k.Week < o.Week
	}
	return k.Day < o.Day
}

// String renders the period-specific date: 2024-03-05, 2024-W09 or 2024-03.
func (k BucketKey) String() string {
	switch k.Period {
	case PeriodDaily:
		return fmt.Sprintf("%04d-%02d-%02d", k.Year, k.Month, k.Day)
	case PeriodWeekly:
		return fmt.Sprintf("%04d-W%02d", k.Year, k.Week)
	default:
		return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
	}
}
