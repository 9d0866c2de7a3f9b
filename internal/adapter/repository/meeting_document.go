package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	ucerrors "github.com/meetpilot-team/meetpilot/internal/usecase/errors"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// meetingDocumentStore implements repositories.MeetingStore over the shared
// Redis document client
type meetingDocumentStore struct {
	client clientFunc
	keys   documentKeys
}

// NewMeetingDocumentStore creates the document meeting store. The client is
// resolved on first use, not at construction.
func NewMeetingDocumentStore(client func() (*redis.Client, error), keyPrefix string) repositories.MeetingStore {
	return &meetingDocumentStore{client: client, keys: documentKeys{prefix: keyPrefix}}
}

func (r *meetingDocumentStore) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}

	// Newest first; the index is scored by meeting date
	ids, err := client.ZRevRange(ctx, r.keys.meetingsByDate(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	meetings := make([]*entities.Meeting, 0, limit)
	for _, id := range ids {
		if len(meetings) >= limit {
			break
		}
		var doc meetingDoc
		found, err := getDocument(ctx, client, r.keys.meeting(id), &doc)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if filters.Platform != "" && doc.Platform != filters.Platform {
			continue
		}
		meeting := doc.toEntity()
		if meeting.ActionItems, err = r.loadItemRefs(ctx, client, id); err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}

func (r *meetingDocumentStore) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	if !isObjectID(id) {
		return nil, ucerrors.ErrNotFound
	}
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	var doc meetingDoc
	found, err := getDocument(ctx, client, r.keys.meeting(id), &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ucerrors.ErrNotFound
	}

	meeting := doc.toEntity()
	if meeting.ActionItems, err = r.loadItemRefs(ctx, client, id); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (r *meetingDocumentStore) Create(ctx context.Context, meeting *entities.Meeting) (*entities.Meeting, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	date := meeting.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	doc := meetingDoc{
		ID:            newObjectID(),
		Title:         meeting.Title,
		Platform:      meeting.Platform,
		Duration:      meeting.Duration,
		Transcript:    meeting.Transcript,
		Summary:       meeting.Summary,
		FlowchartCode: meeting.FlowchartCode,
		Date:          date.Format(time.RFC3339Nano),
	}

	if err := r.writeDoc(ctx, client, &doc); err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *meetingDocumentStore) UpdateFields(ctx context.Context, id string, fields updates.FieldList) (*entities.Meeting, error) {
	if !isObjectID(id) {
		return nil, ucerrors.ErrNotFound
	}
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	raw, err := client.Get(ctx, r.keys.meeting(id)).Result()
	if err == redis.Nil {
		return nil, ucerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	merged, err := mergeDocument(raw, fields)
	if err != nil {
		return nil, err
	}
	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	var doc meetingDoc
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, ucerrors.ErrInvalidInput
	}
	doc.ID = id

	if err := r.writeDoc(ctx, client, &doc); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *meetingDocumentStore) Delete(ctx context.Context, id string) error {
	if !isObjectID(id) {
		return ucerrors.ErrNotFound
	}
	client, err := r.client()
	if err != nil {
		return err
	}

	removed, err := client.Del(ctx, r.keys.meeting(id)).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ucerrors.ErrNotFound
	}
	if err := client.ZRem(ctx, r.keys.meetingsByDate(), id).Err(); err != nil {
		return err
	}

	// Orphan the meeting's items instead of deleting them, matching the
	// relational ON DELETE SET NULL behavior
	itemIDs, err := client.SMembers(ctx, r.keys.meetingItems(id)).Result()
	if err != nil {
		return err
	}
	for _, itemID := range itemIDs {
		var doc actionItemDoc
		found, err := getDocument(ctx, client, r.keys.actionItem(itemID), &doc)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		doc.MeetingID = nil
		buf, err := json.Marshal(&doc)
		if err != nil {
			return err
		}
		if err := client.Set(ctx, r.keys.actionItem(itemID), buf, 0).Err(); err != nil {
			return err
		}
	}
	return client.Del(ctx, r.keys.meetingItems(id)).Err()
}

func (r *meetingDocumentStore) writeDoc(ctx context.Context, client *redis.Client, doc *meetingDoc) error {
	buf, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := client.Set(ctx, r.keys.meeting(doc.ID), buf, 0).Err(); err != nil {
		return err
	}

	score := float64(0)
	if date, err := time.Parse(time.RFC3339Nano, doc.Date); err == nil {
		score = float64(date.UnixMilli())
	}
	return client.ZAdd(ctx, r.keys.meetingsByDate(), redis.Z{Score: score, Member: doc.ID}).Err()
}

func (r *meetingDocumentStore) loadItemRefs(ctx context.Context, client *redis.Client, meetingID string) ([]entities.ActionItemRef, error) {
	refs := make([]entities.ActionItemRef, 0)
	itemIDs, err := client.SMembers(ctx, r.keys.meetingItems(meetingID)).Result()
	if err != nil {
		return nil, err
	}
	for _, itemID := range itemIDs {
		var doc actionItemDoc
		found, err := getDocument(ctx, client, r.keys.actionItem(itemID), &doc)
		if err != nil {
			return nil, err
		}
		if found {
			refs = append(refs, doc.toRef())
		}
	}
	return refs, nil
}
