package service

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
)

type ResponsibilityService interface {
	CreateResponsibility(ctx context.Context, req dto.CreateResponsibilityRequest) (*model.Responsibility, error)
	GetResponsibilities(ctx context.Context) ([]*model.Responsibility, error)
	GetResponsibility(ctx context.Context, id uint) (*model.Responsibility, error)
	UpdateResponsibility(ctx context.Context, id uint, req dto.UpdateResponsibilityRequest) (*model.Responsibility, error)
	DeleteResponsibility(ctx context.Context, id uint) error
}

type responsibilityService struct {
	repo repository.ResponsibilityRepository
}

func NewResponsibilityService(repo repository.ResponsibilityRepository) ResponsibilityService {
	return &responsibilityService{repo: repo}
}

func (s *responsibilityService) CreateResponsibility(ctx context.Context, req dto.CreateResponsibilityRequest) (*model.Responsibility, error) {
	responsibility := &model.Responsibility{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, responsibility); err != nil {
		return nil, err
	}
	return responsibility, nil
}

func (s *responsibilityService) GetResponsibilities(ctx context.Context) ([]*model.Responsibility, error) {
	return s.repo.FindAll(ctx)
}

func (s *responsibilityService) GetResponsibility(ctx context.Context, id uint) (*model.Responsibility, error) {
	responsibility, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return responsibility, nil
}

func (s *responsibilityService) UpdateResponsibility(ctx context.Context, id uint, req dto.UpdateResponsibilityRequest) (*model.Responsibility, error) {
	responsibility, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		responsibility.Name = *req.Name
	}
	if req.Description != nil {
		responsibility.Description = *req.Description
	}

	if err := s.repo.Update(ctx, responsibility); err != nil {
		return nil, err
	}
	return responsibility, nil
}

func (s *responsibilityService) DeleteResponsibility(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.Delete(ctx, id)
}
