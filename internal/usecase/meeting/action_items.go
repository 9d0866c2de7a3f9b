package meeting

import (
	"context"
	stdErrors "errors"

	"go.uber.org/zap"

	"github.com/meetpilot-team/meetpilot/errors"
	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	ucerrors "github.com/meetpilot-team/meetpilot/internal/usecase/errors"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// CreateActionItemInput carries the fields accepted when creating an action
// item. MeetingID may be nil; orphan items are allowed.
type CreateActionItemInput struct {
	MeetingID  *string
	Task       string
	AssignedTo *string
	Deadline   *string
	Status     string
}

// ListActionItems filters by exact meeting id, exact status and
// case-insensitive substring match on assignee, newest first, with meeting
// display fields joined
func (s *Service) ListActionItems(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	items, err := s.items.List(ctx, filters)
	if err != nil {
		s.logger.Error("action_items.list failed", zap.Error(err))
		return nil, errors.ErrDBQueryFailed("fetch action items", err)
	}
	return items, nil
}

// CreateActionItem validates the task and inserts with status defaulting to
// Pending
func (s *Service) CreateActionItem(ctx context.Context, input CreateActionItemInput) (*entities.ActionItem, error) {
	if input.Task == "" {
		return nil, errors.ErrInvalidArgument("Task is required")
	}

	item, err := s.items.Create(ctx, &entities.ActionItem{
		MeetingID:  input.MeetingID,
		Task:       input.Task,
		AssignedTo: input.AssignedTo,
		Deadline:   input.Deadline,
		Status:     input.Status,
	})
	if err != nil {
		if stdErrors.Is(err, ucerrors.ErrInvalidInput) {
			return nil, errors.ErrInvalidArgument("Invalid meeting_id or deadline")
		}
		s.logger.Error("action_items.create failed", zap.Error(err))
		return nil, errors.ErrDBQueryFailed("create action item", err)
	}
	return item, nil
}

// UpdateActionItem applies an allow-listed partial update. Status toggles
// between Pending and Completed only through this path; re-applying the
// current status is a no-op success.
func (s *Service) UpdateActionItem(ctx context.Context, id string, candidates []updates.Candidate) (*entities.ActionItem, error) {
	fields, err := s.itemUpdates.Filter(candidates)
	if err != nil {
		return nil, errors.ErrNoUpdateFields()
	}

	item, err := s.items.UpdateFields(ctx, id, fields)
	if err != nil {
		if stdErrors.Is(err, ucerrors.ErrNotFound) {
			return nil, errors.ErrNotFound("Action item")
		}
		s.logger.Error("action_items.update failed", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDBQueryFailed("update action item", err)
	}
	return item, nil
}

// DeleteActionItem removes an action item, reporting not-found for unknown
// ids
func (s *Service) DeleteActionItem(ctx context.Context, id string) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, ucerrors.ErrNotFound) {
			return errors.ErrNotFound("Action item")
		}
		s.logger.Error("action_items.delete failed", zap.String("id", id), zap.Error(err))
		return errors.ErrDBQueryFailed("delete action item", err)
	}
	return nil
}
