package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupMemberRepository interface {
	// Upsert inserts the membership or, when the (person, group) pair already
	// exists, reactivates it with the given status and role.
	Upsert(ctx context.Context, member *model.GroupMember) error
	FindByGroup(ctx context.Context, groupID uint) ([]*model.GroupMember, error)
	FindByGroupAndPerson(ctx context.Context, groupID, personID uint) (*model.GroupMember, error)
	Update(ctx context.Context, member *model.GroupMember) error
	Delete(ctx context.Context, groupID, personID uint) error
	CountActivePerGroup(ctx context.Context) ([]dto.CountByLabel, error)
}

type groupMemberRepository struct {
	db *gorm.DB
}

func NewGroupMemberRepository(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

func (r *groupMemberRepository) Upsert(ctx context.Context, member *model.GroupMember) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "person_id"}, {Name: "group_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"status":         member.Status,
			"person_role_id": member.PersonRoleID,
		}),
	}).Create(member).Error
}

func (r *groupMemberRepository) FindByGroup(ctx context.Context, groupID uint) ([]*model.GroupMember, error) {
	var members []*model.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Preload("Person").
		Preload("PersonRole").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *groupMemberRepository) FindByGroupAndPerson(ctx context.Context, groupID, personID uint) (*model.GroupMember, error) {
	var member model.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND person_id = ?", groupID, personID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *groupMemberRepository) Update(ctx context.Context, member *model.GroupMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *groupMemberRepository) Delete(ctx context.Context, groupID, personID uint) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND person_id = ?", groupID, personID).
		Delete(&model.GroupMember{}).Error
}

func (r *groupMemberRepository) CountActivePerGroup(ctx context.Context) ([]dto.CountByLabel, error) {
	var rows []dto.CountByLabel
	err := r.db.WithContext(ctx).
		Table("groups").
		Select("groups.name AS label, count(group_members.id) AS count").
		Joins("LEFT JOIN group_members ON group_members.group_id = groups.id AND group_members.status = ?", model.MemberStatusActive).
		Group("groups.name").
		Order("groups.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
