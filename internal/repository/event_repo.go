package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindAll(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	// UpdateState writes only the state and review comment columns.
	UpdateState(ctx context.Context, id uint, state string, reviewComment *string) error
	Delete(ctx context.Context, id uint) error
	CountByMonth(ctx context.Context) ([]dto.CountByLabel, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindAll(ctx context.Context) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).
		Preload("EventType").
		Preload("Place").
		Order("start_date_time").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("EventType").
		Preload("Place").
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) UpdateState(ctx context.Context, id uint, state string, reviewComment *string) error {
	return r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"state":          state,
			"review_comment": reviewComment,
		}).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Event{}, id).Error
}

func (r *eventRepository) CountByMonth(ctx context.Context) ([]dto.CountByLabel, error) {
	var rows []dto.CountByLabel
	err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Select("to_char(start_date_time, 'YYYY-MM') AS label, count(*) AS count").
		Group("to_char(start_date_time, 'YYYY-MM')").
		Order("label").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
