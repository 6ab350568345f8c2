package models

import "time"

// EventType tags a tracked form interaction.
type EventType string

const (
	EventFormStarted     EventType = "form_started"
	EventStepCompleted   EventType = "step_completed"
	EventStepAbandoned   EventType = "step_abandoned"
	EventValidationError EventType = "validation_error"
	EventExitIntent      EventType = "exit_intent"
	EventFormSubmitted   EventType = "form_submitted"
)

// KnownEventTypes lists every accepted event tag; intake rejects others.
var KnownEventTypes = map[EventType]struct{}{
	EventFormStarted:     {},
	EventStepCompleted:   {},
	EventStepAbandoned:   {},
	EventValidationError: {},
	EventExitIntent:      {},
	EventFormSubmitted:   {},
}

// AnalyticsEvent is an immutable, append-only fact about form interaction.
// user_id is optional and carries no foreign key.
type AnalyticsEvent struct {
	ID        string    `db:"id" json:"id"`
	EventType EventType `db:"event_type" json:"event_type"`
	EventData JSONMap   `db:"event_data" json:"event_data,omitempty"`
	SessionID string    `db:"session_id" json:"session_id"`
	UserID    *string   `db:"user_id" json:"user_id,omitempty"`
	IPAddress string    `db:"ip_address" json:"ip_address"`
	UserAgent string    `db:"user_agent" json:"user_agent"`
	Referrer  string    `db:"referrer" json:"referrer"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FunnelSummary aggregates form interaction counts for the admin dashboard.
type FunnelSummary struct {
	EventCounts       map[EventType]int `json:"event_counts"`
	SessionsStarted   int               `json:"sessions_started"`
	SessionsSubmitted int               `json:"sessions_submitted"`
	GeneratedAt       time.Time         `json:"generated_at"`
}
