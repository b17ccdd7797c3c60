package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"gorm.io/gorm"
)

type GroupMemberService interface {
	// AddMember is idempotent: re-adding an existing (person, group) pair
	// reactivates the membership instead of creating a duplicate.
	AddMember(ctx context.Context, groupID uint, req dto.AddGroupMemberRequest) (*model.GroupMember, error)
	GetMembers(ctx context.Context, groupID uint) ([]*model.GroupMember, error)
	UpdateMember(ctx context.Context, groupID, personID uint, req dto.UpdateGroupMemberRequest) (*model.GroupMember, error)
	RemoveMember(ctx context.Context, groupID, personID uint) error
}

type groupMemberService struct {
	repo       repository.GroupMemberRepository
	groupRepo  repository.GroupRepository
	personRepo repository.PersonRepository
	roleRepo   repository.PeopleRoleRepository
}

func NewGroupMemberService(
	repo repository.GroupMemberRepository,
	groupRepo repository.GroupRepository,
	personRepo repository.PersonRepository,
	roleRepo repository.PeopleRoleRepository,
) GroupMemberService {
	return &groupMemberService{
		repo:       repo,
		groupRepo:  groupRepo,
		personRepo: personRepo,
		roleRepo:   roleRepo,
	}
}

func (s *groupMemberService) AddMember(ctx context.Context, groupID uint, req dto.AddGroupMemberRequest) (*model.GroupMember, error) {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		return nil, translateNotFound(err)
	}
	if _, err := s.personRepo.FindByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person %d: %w", req.PersonID, apperror.ErrInvalidInput)
		}
		return nil, err
	}
	if req.PersonRoleID != nil {
		if _, err := s.roleRepo.FindByID(ctx, *req.PersonRoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("role %d: %w", *req.PersonRoleID, apperror.ErrInvalidInput)
			}
			return nil, err
		}
	}

	member := &model.GroupMember{
		GroupID:      groupID,
		PersonID:     req.PersonID,
		Status:       model.MemberStatusActive,
		PersonRoleID: req.PersonRoleID,
	}

	if err := s.repo.Upsert(ctx, member); err != nil {
		return nil, err
	}

	// The upsert may have updated an existing row; read back the stored record.
	return s.repo.FindByGroupAndPerson(ctx, groupID, req.PersonID)
}

func (s *groupMemberService) GetMembers(ctx context.Context, groupID uint) ([]*model.GroupMember, error) {
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.repo.FindByGroup(ctx, groupID)
}

func (s *groupMemberService) UpdateMember(ctx context.Context, groupID, personID uint, req dto.UpdateGroupMemberRequest) (*model.GroupMember, error) {
	member, err := s.repo.FindByGroupAndPerson(ctx, groupID, personID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Status != nil {
		member.Status = *req.Status
	}
	if req.PersonRoleID != nil {
		if _, err := s.roleRepo.FindByID(ctx, *req.PersonRoleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("role %d: %w", *req.PersonRoleID, apperror.ErrInvalidInput)
			}
			return nil, err
		}
		member.PersonRoleID = req.PersonRoleID
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember marks the membership INACTIVE rather than deleting the row, so
// a later re-add reactivates the same record.
func (s *groupMemberService) RemoveMember(ctx context.Context, groupID, personID uint) error {
	member, err := s.repo.FindByGroupAndPerson(ctx, groupID, personID)
	if err != nil {
		return translateNotFound(err)
	}

	member.Status = model.MemberStatusInactive
	return s.repo.Update(ctx, member)
}
