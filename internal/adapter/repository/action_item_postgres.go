package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	ucerrors "github.com/meetpilot-team/meetpilot/internal/usecase/errors"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// actionItemPostgresStore implements repositories.ActionItemStore over GORM
type actionItemPostgresStore struct {
	db *gorm.DB
}

// NewActionItemPostgresStore creates the relational action item store
func NewActionItemPostgresStore(db *gorm.DB) repositories.ActionItemStore {
	return &actionItemPostgresStore{db: db}
}

func (r *actionItemPostgresStore) List(ctx context.Context, filters repositories.ActionItemFilters) ([]*entities.ActionItem, error) {
	query := r.db.WithContext(ctx).
		Table("action_items AS ai").
		Select("ai.*, m.title AS meeting_title, m.platform AS meeting_platform, m.date AS meeting_date").
		Joins("LEFT JOIN meetings m ON ai.meeting_id = m.id")

	if filters.MeetingID != "" {
		meetingID, ok := parseRowID(filters.MeetingID)
		if !ok {
			return []*entities.ActionItem{}, nil
		}
		query = query.Where("ai.meeting_id = ?", meetingID)
	}
	if filters.Status != "" {
		query = query.Where("ai.status = ?", filters.Status)
	}
	if filters.AssignedTo != "" {
		query = query.Where("LOWER(ai.assigned_to) LIKE LOWER(?)", "%"+filters.AssignedTo+"%")
	}

	var rows []actionItemListRow
	if err := query.Order("ai.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.ActionItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toEntity())
	}
	return items, nil
}

func (r *actionItemPostgresStore) Create(ctx context.Context, item *entities.ActionItem) (*entities.ActionItem, error) {
	deadline, err := dateFromString(item.Deadline)
	if err != nil {
		return nil, ucerrors.ErrInvalidInput
	}

	row := actionItemRow{
		Task:       item.Task,
		AssignedTo: item.AssignedTo,
		Deadline:   deadline,
		Status:     item.Status,
	}
	if row.Status == "" {
		row.Status = entities.ActionItemStatusPending
	}
	if item.MeetingID != nil {
		meetingID, ok := parseRowID(*item.MeetingID)
		if !ok {
			return nil, ucerrors.ErrInvalidInput
		}
		row.MeetingID = &meetingID
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *actionItemPostgresStore) UpdateFields(ctx context.Context, id string, fields updates.FieldList) (*entities.ActionItem, error) {
	rowID, ok := parseRowID(id)
	if !ok {
		return nil, ucerrors.ErrNotFound
	}

	setClause, args := fields.SetClause()
	query := fmt.Sprintf("UPDATE action_items SET %s WHERE id = ?", setClause)

	res := r.db.WithContext(ctx).Exec(query, append(args, rowID)...)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ucerrors.ErrNotFound
	}

	var row actionItemRow
	if err := r.db.WithContext(ctx).Where("id = ?", rowID).First(&row).Error; err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *actionItemPostgresStore) Delete(ctx context.Context, id string) error {
	rowID, ok := parseRowID(id)
	if !ok {
		return ucerrors.ErrNotFound
	}

	res := r.db.WithContext(ctx).Where("id = ?", rowID).Delete(&actionItemRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ucerrors.ErrNotFound
	}
	return nil
}
