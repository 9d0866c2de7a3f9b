package entities

import "time"

// ActionItem represents a task extracted from or attached to a meeting.
// MeetingID is nullable; orphan action items are allowed.
type ActionItem struct {
	ID         string     `json:"id"`
	MeetingID  *string    `json:"meeting_id"`
	Task       string     `json:"task"`
	AssignedTo *string    `json:"assigned_to"`
	Deadline   *string    `json:"deadline"`
	Status     string     `json:"status"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`

	// Joined meeting fields for display, populated on list reads only
	MeetingTitle    *string    `json:"meeting_title,omitempty"`
	MeetingPlatform *string    `json:"meeting_platform,omitempty"`
	MeetingDate     *time.Time `json:"meeting_date,omitempty"`
}

// ActionItemStatus values observed at the storage layer. The set is open:
// status is not enforced as an enum, these are the defaults the API produces.
const (
	ActionItemStatusPending   = "Pending"
	ActionItemStatusCompleted = "Completed"
)

// ActionItemUpdatableFields is the allow-list for partial action item updates
var ActionItemUpdatableFields = []string{
	"task", "assigned_to", "deadline", "status",
}
