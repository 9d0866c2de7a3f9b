package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	ucerrors "github.com/meetpilot-team/meetpilot/internal/usecase/errors"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// meetingPostgresStore implements repositories.MeetingStore over GORM
type meetingPostgresStore struct {
	db *gorm.DB
}

// NewMeetingPostgresStore creates the relational meeting store
func NewMeetingPostgresStore(db *gorm.DB) repositories.MeetingStore {
	return &meetingPostgresStore{db: db}
}

func (r *meetingPostgresStore) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	query := r.db.WithContext(ctx).Model(&meetingRow{}).Preload("ActionItems")

	if filters.Platform != "" {
		query = query.Where("platform = ?", filters.Platform)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}

	var rows []meetingRow
	if err := query.Order("date DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	meetings := make([]*entities.Meeting, 0, len(rows))
	for i := range rows {
		meetings = append(meetings, rows[i].toEntity())
	}
	return meetings, nil
}

func (r *meetingPostgresStore) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	rowID, ok := parseRowID(id)
	if !ok {
		return nil, ucerrors.ErrNotFound
	}

	var row meetingRow
	err := r.db.WithContext(ctx).
		Preload("ActionItems").
		Where("id = ?", rowID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ucerrors.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *meetingPostgresStore) Create(ctx context.Context, meeting *entities.Meeting) (*entities.Meeting, error) {
	row := meetingRow{
		Title:         meeting.Title,
		Platform:      meeting.Platform,
		Duration:      meeting.Duration,
		Transcript:    meeting.Transcript,
		Summary:       meeting.Summary,
		FlowchartCode: meeting.FlowchartCode,
		Date:          meeting.Date,
	}
	if row.Date.IsZero() {
		row.Date = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *meetingPostgresStore) UpdateFields(ctx context.Context, id string, fields updates.FieldList) (*entities.Meeting, error) {
	rowID, ok := parseRowID(id)
	if !ok {
		return nil, ucerrors.ErrNotFound
	}

	setClause, args := fields.SetClause()
	query := fmt.Sprintf("UPDATE meetings SET %s WHERE id = ?", setClause)

	res := r.db.WithContext(ctx).Exec(query, append(args, rowID)...)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ucerrors.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *meetingPostgresStore) Delete(ctx context.Context, id string) error {
	rowID, ok := parseRowID(id)
	if !ok {
		return ucerrors.ErrNotFound
	}

	res := r.db.WithContext(ctx).Where("id = ?", rowID).Delete(&meetingRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ucerrors.ErrNotFound
	}
	return nil
}
