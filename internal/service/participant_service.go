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

type ParticipantService interface {
	AddParticipant(ctx context.Context, eventID uint, req dto.AddParticipantRequest) (*model.Participant, error)
	GetParticipants(ctx context.Context, eventID uint) ([]*model.Participant, error)
	RemoveParticipant(ctx context.Context, id uint) error
}

type participantService struct {
	repo       repository.ParticipantRepository
	eventRepo  repository.EventRepository
	personRepo repository.PersonRepository
	respRepo   repository.ResponsibilityRepository
}

func NewParticipantService(
	repo repository.ParticipantRepository,
	eventRepo repository.EventRepository,
	personRepo repository.PersonRepository,
	respRepo repository.ResponsibilityRepository,
) ParticipantService {
	return &participantService{
		repo:       repo,
		eventRepo:  eventRepo,
		personRepo: personRepo,
		respRepo:   respRepo,
	}
}

func (s *participantService) AddParticipant(ctx context.Context, eventID uint, req dto.AddParticipantRequest) (*model.Participant, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, translateNotFound(err)
	}
	if _, err := s.personRepo.FindByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("person %d: %w", req.PersonID, apperror.ErrInvalidInput)
		}
		return nil, err
	}
	if _, err := s.respRepo.FindByID(ctx, req.ResponsibilityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("responsibility %d: %w", req.ResponsibilityID, apperror.ErrInvalidInput)
		}
		return nil, err
	}

	participant := &model.Participant{
		EventID:          eventID,
		PersonID:         req.PersonID,
		ResponsibilityID: req.ResponsibilityID,
	}

	if err := s.repo.Create(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *participantService) GetParticipants(ctx context.Context, eventID uint) ([]*model.Participant, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.repo.FindByEvent(ctx, eventID)
}

func (s *participantService) RemoveParticipant(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.Delete(ctx, id)
}
