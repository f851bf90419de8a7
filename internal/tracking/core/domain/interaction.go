package domain

import "time"

// Interaction is one recorded user action as it enters the system.
type Interaction struct {
	UserID     string
	SessionID  string
	Page       string
	Type       string
	OccurredAt time.Time
	Metadata   map[string]any
	DedupeKey  string
}
