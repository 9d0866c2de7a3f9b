package repositories

import (
	"context"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// MeetingFilters narrows a meeting list query
type MeetingFilters struct {
	Platform string
	Limit    int
}

// ActionItemFilters narrows an action item list query. AssignedTo is a
// case-insensitive substring match; the others are exact.
type ActionItemFilters struct {
	MeetingID  string
	Status     string
	AssignedTo string
}

// MeetingStore is the uniform persistence surface for meetings. Both the
// relational and the document backend implement it; callers never branch on
// which one they hold.
type MeetingStore interface {
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)
	Get(ctx context.Context, id string) (*entities.Meeting, error)
	Create(ctx context.Context, meeting *entities.Meeting) (*entities.Meeting, error)
	UpdateFields(ctx context.Context, id string, fields updates.FieldList) (*entities.Meeting, error)
	Delete(ctx context.Context, id string) error
}

// ActionItemStore is the uniform persistence surface for action items
type ActionItemStore interface {
	List(ctx context.Context, filters ActionItemFilters) ([]*entities.ActionItem, error)
	Create(ctx context.Context, item *entities.ActionItem) (*entities.ActionItem, error)
	UpdateFields(ctx context.Context, id string, fields updates.FieldList) (*entities.ActionItem, error)
	Delete(ctx context.Context, id string) error
}
