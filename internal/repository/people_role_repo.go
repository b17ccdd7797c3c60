package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type PeopleRoleRepository interface {
	Create(ctx context.Context, role *model.PeopleRole) error
	FindAll(ctx context.Context) ([]*model.PeopleRole, error)
	FindByID(ctx context.Context, id uint) (*model.PeopleRole, error)
	Update(ctx context.Context, role *model.PeopleRole) error
	Delete(ctx context.Context, id uint) error
}

type peopleRoleRepository struct {
	db *gorm.DB
}

func NewPeopleRoleRepository(db *gorm.DB) PeopleRoleRepository {
	return &peopleRoleRepository{db: db}
}

func (r *peopleRoleRepository) Create(ctx context.Context, role *model.PeopleRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *peopleRoleRepository) FindAll(ctx context.Context) ([]*model.PeopleRole, error) {
	var roles []*model.PeopleRole
	if err := r.db.WithContext(ctx).Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *peopleRoleRepository) FindByID(ctx context.Context, id uint) (*model.PeopleRole, error) {
	var role model.PeopleRole
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *peopleRoleRepository) Update(ctx context.Context, role *model.PeopleRole) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *peopleRoleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PeopleRole{}, id).Error
}
