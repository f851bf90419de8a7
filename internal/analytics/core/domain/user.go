package domain

import "time"

// UnknownDevice is used for sessions and users without a recorded device.
const UnknownDevice = "Unknown"

type User struct {
	UserID       string
	RegisteredAt time.Time
	Device       string
	Sex          string
}

type Session struct {
	SessionID           string
	UserID              string
	StartTime           time.Time
	EndTime             *time.Time
	PagesVisited        []string // recorded order
	InteractionCount    int
	Device              string
	ConversionCompleted bool
}

// DeviceOrUnknown returns the session device, or UnknownDevice when empty.
func (s Session) DeviceOrUnknown() string {
	if s.Device == "" {
		return UnknownDevice
	}
	return s.Device
}

// Visited reports whether page appears anywhere in the session.
func (s Session) Visited(page string) bool {
	for _, p := range s.PagesVisited {
		if p == page {
			return true
		}
	}
	return false
}

// DistinctPages counts the distinct page names in the session.
func (s Session) DistinctPages() int {
	seen := make(map[string]struct{}, len(s.PagesVisited))
	for _, p := range s.PagesVisited {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// Duration is only known when both ends of the session are set.
func (s Session) Duration() (time.Duration, bool) {
	if s.StartTime.IsZero() || s.EndTime == nil {
		return 0, false
	}
	return s.EndTime.Sub(s.StartTime), true
}

// UserSessionStats is the grouped per-user aggregate used by cohort analysis.
type UserSessionStats struct {
	UserID       string
	SessionCount int64
	Converted    bool
}
