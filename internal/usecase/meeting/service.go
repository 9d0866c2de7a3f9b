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

// Service implements the meeting and action item operations over whichever
// entity store the process was configured with
type Service struct {
	meetings repositories.MeetingStore
	items    repositories.ActionItemStore
	logger   *zap.Logger

	meetingUpdates *updates.Builder
	itemUpdates    *updates.Builder
}

// NewService creates a meeting service
func NewService(meetings repositories.MeetingStore, items repositories.ActionItemStore, logger *zap.Logger) *Service {
	return &Service{
		meetings:       meetings,
		items:          items,
		logger:         logger,
		meetingUpdates: updates.NewBuilder(entities.MeetingUpdatableFields...),
		itemUpdates:    updates.NewBuilder(entities.ActionItemUpdatableFields...),
	}
}

// CreateMeetingInput carries the fields accepted when creating a meeting
type CreateMeetingInput struct {
	Title         string
	Platform      string
	Duration      *int
	Transcript    *string
	Summary       *string
	FlowchartCode *string
}

// ListMeetings returns meetings sorted by date descending, optionally
// filtered by exact platform match and capped at limit (default 10), each
// with its action items aggregated.
func (s *Service) ListMeetings(ctx context.Context, platform string, limit int) ([]*entities.Meeting, error) {
	meetings, err := s.meetings.List(ctx, repositories.MeetingFilters{Platform: platform, Limit: limit})
	if err != nil {
		s.logger.Error("meetings.list failed", zap.Error(err))
		return nil, errors.ErrDBQueryFailed("fetch meetings", err)
	}
	return meetings, nil
}

// GetMeeting returns one meeting with its action items aggregated
func (s *Service) GetMeeting(ctx context.Context, id string) (*entities.Meeting, error) {
	meeting, err := s.meetings.Get(ctx, id)
	if err != nil {
		if stdErrors.Is(err, ucerrors.ErrNotFound) {
			return nil, errors.ErrNotFound("Meeting")
		}
		s.logger.Error("meetings.get failed", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDBQueryFailed("fetch meeting", err)
	}
	return meeting, nil
}

// CreateMeeting validates required fields and inserts a meeting with date
// set to creation time
func (s *Service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if input.Title == "" || input.Platform == "" {
		return nil, errors.ErrInvalidArgument("Title and platform are required")
	}

	meeting, err := s.meetings.Create(ctx, &entities.Meeting{
		Title:         input.Title,
		Platform:      input.Platform,
		Duration:      input.Duration,
		Transcript:    input.Transcript,
		Summary:       input.Summary,
		FlowchartCode: input.FlowchartCode,
	})
	if err != nil {
		s.logger.Error("meetings.create failed", zap.Error(err))
		return nil, errors.ErrDBQueryFailed("create meeting", err)
	}
	return meeting, nil
}

// UpdateMeeting applies an allow-listed partial update and returns the
// updated record
func (s *Service) UpdateMeeting(ctx context.Context, id string, candidates []updates.Candidate) (*entities.Meeting, error) {
	fields, err := s.meetingUpdates.Filter(candidates)
	if err != nil {
		return nil, errors.ErrNoUpdateFields()
	}

	meeting, err := s.meetings.UpdateFields(ctx, id, fields)
	if err != nil {
		if stdErrors.Is(err, ucerrors.ErrNotFound) {
			return nil, errors.ErrNotFound("Meeting")
		}
		s.logger.Error("meetings.update failed", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDBQueryFailed("update meeting", err)
	}
	return meeting, nil
}

// DeleteMeeting removes a meeting. Deleting an unknown id is a not-found on
// every backend; its action items survive with meeting_id cleared.
func (s *Service) DeleteMeeting(ctx context.Context, id string) error {
	if err := s.meetings.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, ucerrors.ErrNotFound) {
			return errors.ErrNotFound("Meeting")
		}
		s.logger.Error("meetings.delete failed", zap.String("id", id), zap.Error(err))
		return errors.ErrDBQueryFailed("delete meeting", err)
	}
	return nil
}
