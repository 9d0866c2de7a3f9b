package repository

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// The document backend stores each entity as one JSON document plus two
// indexes: a date-ordered sorted set per collection and a per-meeting set of
// its action item ids. Object ids are 24 hex characters, generated from 12
// random uuid bytes.

// clientFunc hands out the shared, lazily-created document store client
type clientFunc func() (*redis.Client, error)

type documentKeys struct {
	prefix string
}

func (k documentKeys) meeting(id string) string     { return fmt.Sprintf("%s:meeting:%s", k.prefix, id) }
func (k documentKeys) meetingsByDate() string       { return k.prefix + ":meetings:by_date" }
func (k documentKeys) actionItem(id string) string  { return fmt.Sprintf("%s:action_item:%s", k.prefix, id) }
func (k documentKeys) actionItemsByCreated() string { return k.prefix + ":action_items:by_created" }
func (k documentKeys) meetingItems(id string) string {
	return fmt.Sprintf("%s:meeting:%s:items", k.prefix, id)
}

// newObjectID generates a 24-hex-character document identifier
func newObjectID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:12])
}

// isObjectID reports whether id has the 24-hex-character shape. Anything
// else reads as "no such document"; malformed ids must never crash a lookup.
func isObjectID(id string) bool {
	if len(id) != 24 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

// meetingDoc is the stored document shape for a meeting. The document
// variant keeps date as its sole timestamp.
type meetingDoc struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Platform      string  `json:"platform"`
	Duration      *int    `json:"duration"`
	Transcript    *string `json:"transcript"`
	Summary       *string `json:"summary"`
	FlowchartCode *string `json:"flowchart_code"`
	Date          string  `json:"date"`
}

// actionItemDoc is the stored document shape for an action item
type actionItemDoc struct {
	ID         string  `json:"id"`
	MeetingID  *string `json:"meeting_id"`
	Task       string  `json:"task"`
	AssignedTo *string `json:"assigned_to"`
	Deadline   *string `json:"deadline"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

func (d *meetingDoc) toEntity() *entities.Meeting {
	date, _ := time.Parse(time.RFC3339Nano, d.Date)
	return &entities.Meeting{
		ID:            d.ID,
		Title:         d.Title,
		Platform:      d.Platform,
		Duration:      d.Duration,
		Transcript:    d.Transcript,
		Summary:       d.Summary,
		FlowchartCode: d.FlowchartCode,
		Date:          date,
		ActionItems:   make([]entities.ActionItemRef, 0),
	}
}

func (d *actionItemDoc) toEntity() *entities.ActionItem {
	item := &entities.ActionItem{
		ID:         d.ID,
		MeetingID:  d.MeetingID,
		Task:       d.Task,
		AssignedTo: d.AssignedTo,
		Deadline:   d.Deadline,
		Status:     d.Status,
	}
	if created, err := time.Parse(time.RFC3339Nano, d.CreatedAt); err == nil {
		item.CreatedAt = &created
	}
	return item
}

func (d *actionItemDoc) toRef() entities.ActionItemRef {
	return entities.ActionItemRef{
		ID:         d.ID,
		Task:       d.Task,
		AssignedTo: d.AssignedTo,
		Deadline:   d.Deadline,
		Status:     d.Status,
	}
}

// mergeDocument applies a field map to a stored JSON document, the document
// analogue of a SQL SET clause. Unknown fields cannot appear here; the
// update builder has already allow-listed them.
func mergeDocument(raw string, fields updates.FieldList) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	for name, value := range fields.Document() {
		doc[name] = value
	}
	return doc, nil
}

func getDocument(ctx context.Context, client *redis.Client, key string, dest interface{}) (bool, error) {
	raw, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(raw), dest)
}
