package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	ucerrors "github.com/meetpilot-team/meetpilot/internal/usecase/errors"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// actionItemDocumentStore implements repositories.ActionItemStore over the
// shared Redis document client
type actionItemDocumentStore struct {
	client clientFunc
	keys   documentKeys
}

// NewActionItemDocumentStore creates the document action item store
func NewActionItemDocumentStore(client func() (*redis.Client, error), keyPrefix string) repositories.ActionItemStore {
	return &actionItemDocumentStore{client: client, keys: documentKeys{prefix: keyPrefix}}
}

func (r *actionItemDocumentStore) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	// Newest first by creation time
	ids, err := client.ZRevRange(ctx, r.keys.actionItemsByCreated(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	items := make([]*entities.ActionItem, 0, len(ids))
	for _, id := range ids {
		var doc actionItemDoc
		found, err := getDocument(ctx, client, r.keys.actionItem(id), &doc)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if !matchesFilters(&doc, filters) {
			continue
		}
		item := doc.toEntity()
		if doc.MeetingID != nil {
			var meeting meetingDoc
			found, err := getDocument(ctx, client, r.keys.meeting(*doc.MeetingID), &meeting)
			if err != nil {
				return nil, err
			}
			if found {
				item.MeetingTitle = &meeting.Title
				item.MeetingPlatform = &meeting.Platform
				if date, err := time.Parse(time.RFC3339Nano, meeting.Date); err == nil {
					item.MeetingDate = &date
				}
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func matchesFilters(doc *actionItemDoc, filters repositories.ActionItemFilters) bool {
	if filters.MeetingID != "" {
		if doc.MeetingID == nil || *doc.MeetingID != filters.MeetingID {
			return false
		}
	}
	if filters.Status != "" && doc.Status != filters.Status {
		return false
	}
	if filters.AssignedTo != "" {
		if doc.AssignedTo == nil {
			return false
		}
		if !strings.Contains(strings.ToLower(*doc.AssignedTo), strings.ToLower(filters.AssignedTo)) {
			return false
		}
	}
	return true
}

func (r *actionItemDocumentStore) Create(ctx context.Context, item *entities.ActionItem) (*entities.ActionItem, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	status := item.Status
	if status == "" {
		status = entities.ActionItemStatusPending
	}
	now := time.Now().UTC()
	doc := actionItemDoc{
		ID:         newObjectID(),
		MeetingID:  item.MeetingID,
		Task:       item.Task,
		AssignedTo: item.AssignedTo,
		Deadline:   item.Deadline,
		Status:     status,
		CreatedAt:  now.Format(time.RFC3339Nano),
	}
	if doc.MeetingID != nil && !isObjectID(*doc.MeetingID) {
		return nil, ucerrors.ErrInvalidInput
	}

	buf, err := json.Marshal(&doc)
	if err != nil {
		return nil, err
	}
	if err := client.Set(ctx, r.keys.actionItem(doc.ID), buf, 0).Err(); err != nil {
		return nil, err
	}
	score := redis.Z{Score: float64(now.UnixMilli()), Member: doc.ID}
	if err := client.ZAdd(ctx, r.keys.actionItemsByCreated(), score).Err(); err != nil {
		return nil, err
	}
	if doc.MeetingID != nil {
		if err := client.SAdd(ctx, r.keys.meetingItems(*doc.MeetingID), doc.ID).Err(); err != nil {
			return nil, err
		}
	}
	return doc.toEntity(), nil
}

func (r *actionItemDocumentStore) UpdateFields(ctx context.Context, id string, fields updates.FieldList) (*entities.ActionItem, error) {
	if !isObjectID(id) {
		return nil, ucerrors.ErrNotFound
	}
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	raw, err := client.Get(ctx, r.keys.actionItem(id)).Result()
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
	var doc actionItemDoc
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, ucerrors.ErrInvalidInput
	}
	doc.ID = id

	out, err := json.Marshal(&doc)
	if err != nil {
		return nil, err
	}
	if err := client.Set(ctx, r.keys.actionItem(id), out, 0).Err(); err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *actionItemDocumentStore) Delete(ctx context.Context, id string) error {
	if !isObjectID(id) {
		return ucerrors.ErrNotFound
	}
	client, err := r.client()
	if err != nil {
		return err
	}

	var doc actionItemDoc
	found, err := getDocument(ctx, client, r.keys.actionItem(id), &doc)
	if err != nil {
		return err
	}
	if !found {
		return ucerrors.ErrNotFound
	}

	if err := client.Del(ctx, r.keys.actionItem(id)).Err(); err != nil {
		return err
	}
	if err := client.ZRem(ctx, r.keys.actionItemsByCreated(), id).Err(); err != nil {
		return err
	}
	if doc.MeetingID != nil {
		return client.SRem(ctx, r.keys.meetingItems(*doc.MeetingID), id).Err()
	}
	return nil
}
