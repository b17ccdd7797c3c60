package service

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
)

type EventTypeService interface {
	CreateEventType(ctx context.Context, req dto.CreateEventTypeRequest) (*model.EventType, error)
	GetEventTypes(ctx context.Context) ([]*model.EventType, error)
	GetEventType(ctx context.Context, id uint) (*model.EventType, error)
	UpdateEventType(ctx context.Context, id uint, req dto.UpdateEventTypeRequest) (*model.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
}

type eventTypeService struct {
	repo repository.EventTypeRepository
}

func NewEventTypeService(repo repository.EventTypeRepository) EventTypeService {
	return &eventTypeService{repo: repo}
}

func (s *eventTypeService) CreateEventType(ctx context.Context, req dto.CreateEventTypeRequest) (*model.EventType, error) {
	eventType := &model.EventType{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}

	if err := s.repo.Create(ctx, eventType); err != nil {
		return nil, err
	}
	return eventType, nil
}

func (s *eventTypeService) GetEventTypes(ctx context.Context) ([]*model.EventType, error) {
	return s.repo.FindAll(ctx)
}

func (s *eventTypeService) GetEventType(ctx context.Context, id uint) (*model.EventType, error) {
	eventType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return eventType, nil
}

func (s *eventTypeService) UpdateEventType(ctx context.Context, id uint, req dto.UpdateEventTypeRequest) (*model.EventType, error) {
	eventType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		eventType.Name = *req.Name
	}
	if req.Description != nil {
		eventType.Description = *req.Description
	}
	if req.Color != nil {
		eventType.Color = *req.Color
	}

	if err := s.repo.Update(ctx, eventType); err != nil {
		return nil, err
	}
	return eventType, nil
}

func (s *eventTypeService) DeleteEventType(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.Delete(ctx, id)
}
