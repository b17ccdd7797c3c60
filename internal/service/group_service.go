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

type GroupService interface {
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (*model.Group, error)
	GetGroups(ctx context.Context) ([]*model.Group, error)
	GetGroup(ctx context.Context, id uint) (*model.Group, error)
	UpdateGroup(ctx context.Context, id uint, req dto.UpdateGroupRequest) (*model.Group, error)
	DeleteGroup(ctx context.Context, id uint) error

	AssignRole(ctx context.Context, groupID uint, req dto.AssignGroupRoleRequest) (*model.GroupRoleAssignment, error)
	GetGroupRoles(ctx context.Context, groupID uint) ([]*model.GroupRoleAssignment, error)
	RemoveRole(ctx context.Context, groupID, roleID uint) error
}

type groupService struct {
	repo     repository.GroupRepository
	roleRepo repository.PeopleRoleRepository
	assnRepo repository.GroupRoleAssignmentRepository
}

func NewGroupService(
	repo repository.GroupRepository,
	roleRepo repository.PeopleRoleRepository,
	assnRepo repository.GroupRoleAssignmentRepository,
) GroupService {
	return &groupService{
		repo:     repo,
		roleRepo: roleRepo,
		assnRepo: assnRepo,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (*model.Group, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("group with name %s: %w", req.Name, apperror.ErrDuplicate)
	}

	group := &model.Group{
		Name:        req.Name,
		Description: sanitizeText(req.Description),
	}

	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) GetGroups(ctx context.Context) ([]*model.Group, error) {
	return s.repo.FindAll(ctx)
}

func (s *groupService) GetGroup(ctx context.Context, id uint) (*model.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return group, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, id uint, req dto.UpdateGroupRequest) (*model.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = sanitizeText(*req.Description)
	}

	if err := s.repo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *groupService) AssignRole(ctx context.Context, groupID uint, req dto.AssignGroupRoleRequest) (*model.GroupRoleAssignment, error) {
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		return nil, translateNotFound(err)
	}
	if _, err := s.roleRepo.FindByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %d: %w", req.RoleID, apperror.ErrInvalidInput)
		}
		return nil, err
	}

	existing, err := s.assnRepo.FindByGroupAndRole(ctx, groupID, req.RoleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("role %d already assigned to group %d: %w", req.RoleID, groupID, apperror.ErrDuplicate)
	}

	assignment := &model.GroupRoleAssignment{
		GroupID: groupID,
		RoleID:  req.RoleID,
	}

	if err := s.assnRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *groupService) GetGroupRoles(ctx context.Context, groupID uint) ([]*model.GroupRoleAssignment, error) {
	if _, err := s.repo.FindByID(ctx, groupID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.assnRepo.FindByGroup(ctx, groupID)
}

func (s *groupService) RemoveRole(ctx context.Context, groupID, roleID uint) error {
	if _, err := s.assnRepo.FindByGroupAndRole(ctx, groupID, roleID); err != nil {
		return translateNotFound(err)
	}
	return s.assnRepo.Delete(ctx, groupID, roleID)
}
