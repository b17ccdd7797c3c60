package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type GroupRoleAssignmentRepository interface {
	Create(ctx context.Context, assignment *model.GroupRoleAssignment) error
	FindByGroup(ctx context.Context, groupID uint) ([]*model.GroupRoleAssignment, error)
	FindByGroupAndRole(ctx context.Context, groupID, roleID uint) (*model.GroupRoleAssignment, error)
	Delete(ctx context.Context, groupID, roleID uint) error
}

type groupRoleAssignmentRepository struct {
	db *gorm.DB
}

func NewGroupRoleAssignmentRepository(db *gorm.DB) GroupRoleAssignmentRepository {
	return &groupRoleAssignmentRepository{db: db}
}

func (r *groupRoleAssignmentRepository) Create(ctx context.Context, assignment *model.GroupRoleAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *groupRoleAssignmentRepository) FindByGroup(ctx context.Context, groupID uint) ([]*model.GroupRoleAssignment, error) {
	var assignments []*model.GroupRoleAssignment
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Preload("Role").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *groupRoleAssignmentRepository) FindByGroupAndRole(ctx context.Context, groupID, roleID uint) (*model.GroupRoleAssignment, error) {
	var assignment model.GroupRoleAssignment
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND role_id = ?", groupID, roleID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *groupRoleAssignmentRepository) Delete(ctx context.Context, groupID, roleID uint) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND role_id = ?", groupID, roleID).
		Delete(&model.GroupRoleAssignment{}).Error
}
