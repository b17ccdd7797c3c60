package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *model.Participant) error
	FindByEvent(ctx context.Context, eventID uint) ([]*model.Participant, error)
	FindByID(ctx context.Context, id uint) (*model.Participant, error)
	Delete(ctx context.Context, id uint) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *model.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) FindByEvent(ctx context.Context, eventID uint) ([]*model.Participant, error) {
	var participants []*model.Participant
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Preload("Person").
		Preload("Responsibility").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) FindByID(ctx context.Context, id uint) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Participant{}, id).Error
}
