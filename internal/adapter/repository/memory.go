package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	ucerrors "github.com/meetpilot-team/meetpilot/internal/usecase/errors"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// MemoryStore keeps meetings and action items in process memory. It backs
// STORE_BACKEND=memory for development without Postgres or Redis, and the
// test suites run against it. Semantics mirror the relational backend:
// sequential integer ids, updated_at touched on every update, delete of a
// missing id reports not found.
type MemoryStore struct {
	mu         sync.RWMutex
	meetings   map[int64]*entities.Meeting
	items      map[int64]*entities.ActionItem
	nextID     int64
	nextItemID int64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		meetings:   make(map[int64]*entities.Meeting),
		items:      make(map[int64]*entities.ActionItem),
		nextID:     1,
		nextItemID: 1,
	}
}

// Meetings returns the store's MeetingStore view
func (s *MemoryStore) Meetings() repositories.MeetingStore { return (*memoryMeetingStore)(s) }

// ActionItems returns the store's ActionItemStore view
func (s *MemoryStore) ActionItems() repositories.ActionItemStore { return (*memoryActionItemStore)(s) }

type memoryMeetingStore MemoryStore

func (s *memoryMeetingStore) List(_ context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}

	meetings := make([]*entities.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		if filters.Platform != "" && m.Platform != filters.Platform {
			continue
		}
		meetings = append(meetings, s.meetingView(m))
	}
	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].Date.After(meetings[j].Date)
	})
	if len(meetings) > limit {
		meetings = meetings[:limit]
	}
	return meetings, nil
}

func (s *memoryMeetingStore) Get(_ context.Context, id string) (*entities.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := parseRowID(id)
	if !ok {
		return nil, ucerrors.ErrNotFound
	}
	m, ok := s.meetings[key]
	if !ok {
		return nil, ucerrors.ErrNotFound
	}
	return s.meetingView(m), nil
}

func (s *memoryMeetingStore) Create(_ context.Context, meeting *entities.Meeting) (*entities.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *meeting
	stored.ID = strconv.FormatInt(s.nextID, 10)
	s.nextID++
	if stored.Date.IsZero() {
		stored.Date = now
	}
	created := now
	updated := now
	stored.CreatedAt = &created
	stored.UpdatedAt = &updated
	stored.ActionItems = nil

	key, _ := parseRowID(stored.ID)
	s.meetings[key] = &stored
	return s.meetingView(&stored), nil
}

func (s *memoryMeetingStore) UpdateFields(_ context.Context, id string, fields updates.FieldList) (*entities.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := parseRowID(id)
	if !ok {
		return nil, ucerrors.ErrNotFound
	}
	m, ok := s.meetings[key]
	if !ok {
		return nil, ucerrors.ErrNotFound
	}

	for _, f := range fields {
		switch f.Name {
		case "title":
			m.Title, _ = f.Value.(string)
		case "platform":
			m.Platform, _ = f.Value.(string)
		case "duration":
			m.Duration = toIntPtr(f.Value)
		case "transcript":
			m.Transcript = toStringPtr(f.Value)
		case "summary":
			m.Summary = toStringPtr(f.Value)
		case "flowchart_code":
			m.FlowchartCode = toStringPtr(f.Value)
		case "date":
			if raw, ok := f.Value.(string); ok {
				if t, err := time.Parse(time.RFC3339, raw); err == nil {
					m.Date = t
				}
			}
		}
	}
	now := time.Now().UTC()
	m.UpdatedAt = &now
	return s.meetingView(m), nil
}

func (s *memoryMeetingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := parseRowID(id)
	if !ok {
		return ucerrors.ErrNotFound
	}
	if _, ok := s.meetings[key]; !ok {
		return ucerrors.ErrNotFound
	}
	delete(s.meetings, key)

	// ON DELETE SET NULL parity with the relational schema
	for _, item := range s.items {
		if item.MeetingID != nil && *item.MeetingID == id {
			item.MeetingID = nil
		}
	}
	return nil
}

// meetingView copies a stored meeting and aggregates its action items.
// Callers hold at least the read lock.
func (s *memoryMeetingStore) meetingView(m *entities.Meeting) *entities.Meeting {
	view := *m
	view.ActionItems = make([]entities.ActionItemRef, 0)
	for _, item := range s.items {
		if item.MeetingID != nil && *item.MeetingID == m.ID {
			view.ActionItems = append(view.ActionItems, entities.ActionItemRef{
				ID:         item.ID,
				Task:       item.Task,
				AssignedTo: item.AssignedTo,
				Deadline:   item.Deadline,
				Status:     item.Status,
			})
		}
	}
	return &view
}

type memoryActionItemStore MemoryStore

func (s *memoryActionItemStore) List(_ context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*entities.ActionItem, 0, len(s.items))
	for _, item := range s.items {
		if filters.MeetingID != "" {
			if item.MeetingID == nil || *item.MeetingID != filters.MeetingID {
				continue
			}
		}
		if filters.Status != "" && item.Status != filters.Status {
			continue
		}
		if filters.AssignedTo != "" {
			if item.AssignedTo == nil ||
				!strings.Contains(strings.ToLower(*item.AssignedTo), strings.ToLower(filters.AssignedTo)) {
				continue
			}
		}
		view := *item
		if item.MeetingID != nil {
			if key, ok := parseRowID(*item.MeetingID); ok {
				if m, ok := s.meetings[key]; ok {
					view.MeetingTitle = &m.Title
					view.MeetingPlatform = &m.Platform
					date := m.Date
					view.MeetingDate = &date
				}
			}
		}
		items = append(items, &view)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(*items[j].CreatedAt) {
			ki, _ := parseRowID(items[i].ID)
			kj, _ := parseRowID(items[j].ID)
			return ki > kj
		}
		return items[i].CreatedAt.After(*items[j].CreatedAt)
	})
	return items, nil
}

func (s *memoryActionItemStore) Create(_ context.Context, item *entities.ActionItem) (*entities.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *item
	stored.ID = strconv.FormatInt(s.nextItemID, 10)
	s.nextItemID++
	if stored.Status == "" {
		stored.Status = entities.ActionItemStatusPending
	}
	created := now
	updated := now
	stored.CreatedAt = &created
	stored.UpdatedAt = &updated

	key, _ := parseRowID(stored.ID)
	s.items[key] = &stored
	view := stored
	return &view, nil
}

func (s *memoryActionItemStore) UpdateFields(_ context.Context, id string, fields updates.FieldList) (*entities.ActionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := parseRowID(id)
	if !ok {
		return nil, ucerrors.ErrNotFound
	}
	item, ok := s.items[key]
	if !ok {
		return nil, ucerrors.ErrNotFound
	}

	for _, f := range fields {
		switch f.Name {
		case "task":
			item.Task, _ = f.Value.(string)
		case "assigned_to":
			item.AssignedTo = toStringPtr(f.Value)
		case "deadline":
			item.Deadline = toStringPtr(f.Value)
		case "status":
			item.Status, _ = f.Value.(string)
		}
	}
	now := time.Now().UTC()
	item.UpdatedAt = &now
	view := *item
	return &view, nil
}

func (s *memoryActionItemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := parseRowID(id)
	if !ok {
		return ucerrors.ErrNotFound
	}
	if _, ok := s.items[key]; !ok {
		return ucerrors.ErrNotFound
	}
	delete(s.items, key)
	return nil
}

func toStringPtr(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func toIntPtr(v interface{}) *int {
	switch n := v.(type) {
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	case int:
		return &n
	}
	return nil
}
