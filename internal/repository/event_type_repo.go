package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type EventTypeRepository interface {
	Create(ctx context.Context, eventType *model.EventType) error
	FindAll(ctx context.Context) ([]*model.EventType, error)
	FindByID(ctx context.Context, id uint) (*model.EventType, error)
	Update(ctx context.Context, eventType *model.EventType) error
	Delete(ctx context.Context, id uint) error
}

type eventTypeRepository struct {
	db *gorm.DB
}

func NewEventTypeRepository(db *gorm.DB) EventTypeRepository {
	return &eventTypeRepository{db: db}
}

func (r *eventTypeRepository) Create(ctx context.Context, eventType *model.EventType) error {
	return r.db.WithContext(ctx).Create(eventType).Error
}

func (r *eventTypeRepository) FindAll(ctx context.Context) ([]*model.EventType, error) {
	var types []*model.EventType
	if err := r.db.WithContext(ctx).Order("name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *eventTypeRepository) FindByID(ctx context.Context, id uint) (*model.EventType, error) {
	var eventType model.EventType
	if err := r.db.WithContext(ctx).First(&eventType, id).Error; err != nil {
		return nil, err
	}
	return &eventType, nil
}

func (r *eventTypeRepository) Update(ctx context.Context, eventType *model.EventType) error {
	return r.db.WithContext(ctx).Save(eventType).Error
}

func (r *eventTypeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.EventType{}, id).Error
}
