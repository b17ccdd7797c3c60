package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"gorm.io/gorm"
)

type EventService interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*model.Event, error)
	GetEvents(ctx context.Context) ([]*model.Event, error)
	GetEvent(ctx context.Context, id uint) (*model.Event, error)
	UpdateEvent(ctx context.Context, id uint, req dto.UpdateEventRequest) (*model.Event, error)
	// UpdateStatus drives the approval state machine: only PENDING events may
	// move, and only to APPROVED or REJECTED.
	UpdateStatus(ctx context.Context, id uint, req dto.UpdateEventStatusRequest) (*model.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	repo          repository.EventRepository
	typeRepo      repository.EventTypeRepository
	placeRepo     repository.PlaceRepository
	notifications NotificationService
}

func NewEventService(
	repo repository.EventRepository,
	typeRepo repository.EventTypeRepository,
	placeRepo repository.PlaceRepository,
	notifications NotificationService,
) EventService {
	return &eventService{
		repo:          repo,
		typeRepo:      typeRepo,
		placeRepo:     placeRepo,
		notifications: notifications,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*model.Event, error) {
	if err := s.checkReferences(ctx, req.EventTypeID, req.PlaceID); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:         req.Title,
		Description:   sanitizeText(req.Description),
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		Location:      req.Location,
		State:         model.EventStatePending,
		EventTypeID:   req.EventTypeID,
		PlaceID:       req.PlaceID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, event.ID)
}

func (s *eventService) GetEvents(ctx context.Context) ([]*model.Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, req dto.UpdateEventRequest) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = sanitizeText(*req.Description)
	}
	if req.StartDateTime != nil {
		event.StartDateTime = *req.StartDateTime
	}
	if req.EndDateTime != nil {
		event.EndDateTime = *req.EndDateTime
	}
	if !event.EndDateTime.After(event.StartDateTime) {
		return nil, fmt.Errorf("end date must be after start date: %w", apperror.ErrInvalidInput)
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.EventTypeID != nil || req.PlaceID != nil {
		typeID := event.EventTypeID
		placeID := event.PlaceID
		if req.EventTypeID != nil {
			typeID = *req.EventTypeID
		}
		if req.PlaceID != nil {
			placeID = *req.PlaceID
		}
		if err := s.checkReferences(ctx, typeID, placeID); err != nil {
			return nil, err
		}
		event.EventTypeID = typeID
		event.PlaceID = placeID
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, event.ID)
}

func (s *eventService) UpdateStatus(ctx context.Context, id uint, req dto.UpdateEventStatusRequest) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if event.State != model.EventStatePending {
		return nil, fmt.Errorf("event %d is already %s: %w", id, event.State, apperror.ErrInvalidTransition)
	}

	var comment *string
	if req.ReviewComment != nil {
		clean := sanitizeText(*req.ReviewComment)
		comment = &clean
	}

	if err := s.repo.UpdateState(ctx, id, req.State, comment); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		notifType := model.NotificationEventApproved
		if req.State == model.EventStateRejected {
			notifType = model.NotificationEventRejected
		}
		notification := &model.Notification{
			Type:    notifType,
			Message: fmt.Sprintf("Event %q was %s", event.Title, req.State),
			EventID: &event.ID,
		}
		if err := s.notifications.Notify(ctx, notification); err != nil {
			log.Printf("failed to record status notification for event %d: %v", id, err)
		}
	}

	return s.repo.FindByID(ctx, id)
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *eventService) checkReferences(ctx context.Context, typeID, placeID uint) error {
	if _, err := s.typeRepo.FindByID(ctx, typeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("event type %d: %w", typeID, apperror.ErrInvalidInput)
		}
		return err
	}
	if _, err := s.placeRepo.FindByID(ctx, placeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("place %d: %w", placeID, apperror.ErrInvalidInput)
		}
		return err
	}
	return nil
}
