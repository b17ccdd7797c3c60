package service

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
)

type PeopleRoleService interface {
	CreateRole(ctx context.Context, req dto.CreatePeopleRoleRequest) (*model.PeopleRole, error)
	GetRoles(ctx context.Context) ([]*model.PeopleRole, error)
	GetRole(ctx context.Context, id uint) (*model.PeopleRole, error)
	UpdateRole(ctx context.Context, id uint, req dto.UpdatePeopleRoleRequest) (*model.PeopleRole, error)
	DeleteRole(ctx context.Context, id uint) error
}

type peopleRoleService struct {
	repo repository.PeopleRoleRepository
}

func NewPeopleRoleService(repo repository.PeopleRoleRepository) PeopleRoleService {
	return &peopleRoleService{repo: repo}
}

func (s *peopleRoleService) CreateRole(ctx context.Context, req dto.CreatePeopleRoleRequest) (*model.PeopleRole, error) {
	role := &model.PeopleRole{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *peopleRoleService) GetRoles(ctx context.Context) ([]*model.PeopleRole, error) {
	return s.repo.FindAll(ctx)
}

func (s *peopleRoleService) GetRole(ctx context.Context, id uint) (*model.PeopleRole, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return role, nil
}

func (s *peopleRoleService) UpdateRole(ctx context.Context, id uint, req dto.UpdatePeopleRoleRequest) (*model.PeopleRole, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *peopleRoleService) DeleteRole(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.Delete(ctx, id)
}
