package entities

import "time"

// Meeting represents a recorded meeting and its derived analysis artifacts.
// IDs are store-native (integer rows in Postgres, 24-hex object ids in the
// document backend) and always exposed as strings at the API boundary.
type Meeting struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Platform      string     `json:"platform"`
	Duration      *int       `json:"duration"`
	Transcript    *string    `json:"transcript"`
	Summary       *string    `json:"summary"`
	FlowchartCode *string    `json:"flowchart_code"`
	Date          time.Time  `json:"date"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`

	// ActionItems is a read-side aggregate, never persisted on the meeting
	// record itself. Empty slice, not nil, when the meeting has no items.
	ActionItems []ActionItemRef `json:"action_items"`
}

// ActionItemRef is the embedded view of an action item inside a meeting read
type ActionItemRef struct {
	ID         string  `json:"id"`
	Task       string  `json:"task"`
	AssignedTo *string `json:"assigned_to"`
	Deadline   *string `json:"deadline"`
	Status     string  `json:"status"`
}

// MeetingUpdatableFields is the allow-list for partial meeting updates.
// Anything outside this list is silently dropped before it can reach a query.
var MeetingUpdatableFields = []string{
	"title", "platform", "duration", "transcript", "summary", "flowchart_code", "date",
}
