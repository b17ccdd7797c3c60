package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type ResponsibilityRepository interface {
	Create(ctx context.Context, responsibility *model.Responsibility) error
	FindAll(ctx context.Context) ([]*model.Responsibility, error)
	FindByID(ctx context.Context, id uint) (*model.Responsibility, error)
	Update(ctx context.Context, responsibility *model.Responsibility) error
	Delete(ctx context.Context, id uint) error
}

type responsibilityRepository struct {
	db *gorm.DB
}

func NewResponsibilityRepository(db *gorm.DB) ResponsibilityRepository {
	return &responsibilityRepository{db: db}
}

func (r *responsibilityRepository) Create(ctx context.Context, responsibility *model.Responsibility) error {
	return r.db.WithContext(ctx).Create(responsibility).Error
}

func (r *responsibilityRepository) FindAll(ctx context.Context) ([]*model.Responsibility, error) {
	var responsibilities []*model.Responsibility
	if err := r.db.WithContext(ctx).Order("name").Find(&responsibilities).Error; err != nil {
		return nil, err
	}
	return responsibilities, nil
}

func (r *responsibilityRepository) FindByID(ctx context.Context, id uint) (*model.Responsibility, error) {
	var responsibility model.Responsibility
	if err := r.db.WithContext(ctx).First(&responsibility, id).Error; err != nil {
		return nil, err
	}
	return &responsibility, nil
}

func (r *responsibilityRepository) Update(ctx context.Context, responsibility *model.Responsibility) error {
	return r.db.WithContext(ctx).Save(responsibility).Error
}

func (r *responsibilityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Responsibility{}, id).Error
}
