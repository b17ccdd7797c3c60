package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type PostEventRepository interface {
	Create(ctx context.Context, postEvent *model.PostEvent) error
	FindAll(ctx context.Context) ([]*model.PostEvent, error)
	FindByEvent(ctx context.Context, eventID uint) ([]*model.PostEvent, error)
}

type postEventRepository struct {
	db *gorm.DB
}

func NewPostEventRepository(db *gorm.DB) PostEventRepository {
	return &postEventRepository{db: db}
}

func (r *postEventRepository) Create(ctx context.Context, postEvent *model.PostEvent) error {
	return r.db.WithContext(ctx).Create(postEvent).Error
}

func (r *postEventRepository) FindAll(ctx context.Context) ([]*model.PostEvent, error) {
	var reports []*model.PostEvent
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *postEventRepository) FindByEvent(ctx context.Context, eventID uint) ([]*model.PostEvent, error) {
	var reports []*model.PostEvent
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at desc").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
