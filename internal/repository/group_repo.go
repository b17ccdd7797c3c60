package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	FindAll(ctx context.Context) ([]*model.Group, error)
	FindByID(ctx context.Context, id uint) (*model.Group, error)
	FindByName(ctx context.Context, name string) (*model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id uint) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepository) FindAll(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	if err := r.db.WithContext(ctx).Order("name").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *groupRepository) FindByID(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindByName(ctx context.Context, name string) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) Update(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Group{}, id).Error
}
