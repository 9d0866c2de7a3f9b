package repository

import (
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
)

// meetingRow is the GORM model for the meetings table
type meetingRow struct {
	ID            int64   `gorm:"primaryKey"`
	Title         string  `gorm:"not null"`
	Platform      string  `gorm:"not null"`
	Duration      *int
	Transcript    *string `gorm:"type:text"`
	Summary       *string `gorm:"type:text"`
	FlowchartCode *string `gorm:"column:flowchart_code"`
	Date          time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	ActionItems []actionItemRow `gorm:"foreignKey:MeetingID"`
}

// TableName specifies the table name for meetingRow
func (meetingRow) TableName() string {
	return "meetings"
}

// actionItemRow is the GORM model for the action_items table
type actionItemRow struct {
	ID         int64  `gorm:"primaryKey"`
	MeetingID  *int64 `gorm:"index"`
	Task       string `gorm:"not null"`
	AssignedTo *string
	Deadline   *datatypes.Date
	Status     string    `gorm:"default:Pending"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for actionItemRow
func (actionItemRow) TableName() string {
	return "action_items"
}

// actionItemListRow carries the joined meeting display columns for list reads
type actionItemListRow struct {
	ID              int64
	MeetingID       *int64
	Task            string
	AssignedTo      *string
	Deadline        *datatypes.Date
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	MeetingTitle    *string
	MeetingPlatform *string
	MeetingDate     *time.Time
}

func (r *meetingRow) toEntity() *entities.Meeting {
	createdAt := r.CreatedAt
	updatedAt := r.UpdatedAt
	m := &entities.Meeting{
		ID:            strconv.FormatInt(r.ID, 10),
		Title:         r.Title,
		Platform:      r.Platform,
		Duration:      r.Duration,
		Transcript:    r.Transcript,
		Summary:       r.Summary,
		FlowchartCode: r.FlowchartCode,
		Date:          r.Date,
		CreatedAt:     &createdAt,
		UpdatedAt:     &updatedAt,
		ActionItems:   make([]entities.ActionItemRef, 0, len(r.ActionItems)),
	}
	for i := range r.ActionItems {
		item := &r.ActionItems[i]
		m.ActionItems = append(m.ActionItems, entities.ActionItemRef{
			ID:         strconv.FormatInt(item.ID, 10),
			Task:       item.Task,
			AssignedTo: item.AssignedTo,
			Deadline:   dateToString(item.Deadline),
			Status:     item.Status,
		})
	}
	return m
}

func (r *actionItemRow) toEntity() *entities.ActionItem {
	createdAt := r.CreatedAt
	updatedAt := r.UpdatedAt
	item := &entities.ActionItem{
		ID:         strconv.FormatInt(r.ID, 10),
		Task:       r.Task,
		AssignedTo: r.AssignedTo,
		Deadline:   dateToString(r.Deadline),
		Status:     r.Status,
		CreatedAt:  &createdAt,
		UpdatedAt:  &updatedAt,
	}
	if r.MeetingID != nil {
		id := strconv.FormatInt(*r.MeetingID, 10)
		item.MeetingID = &id
	}
	return item
}

func (r *actionItemListRow) toEntity() *entities.ActionItem {
	row := actionItemRow{
		ID:         r.ID,
		MeetingID:  r.MeetingID,
		Task:       r.Task,
		AssignedTo: r.AssignedTo,
		Deadline:   r.Deadline,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	item := row.toEntity()
	item.MeetingTitle = r.MeetingTitle
	item.MeetingPlatform = r.MeetingPlatform
	item.MeetingDate = r.MeetingDate
	return item
}

func dateToString(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}

func dateFromString(s *string) (*datatypes.Date, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

// parseRowID parses a relational identifier from its string form. Invalid
// input reads as "no such row", never as an error.
func parseRowID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
