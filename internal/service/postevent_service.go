package service

import (
	"context"
	"fmt"
	"io"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"github.com/franciscozv/iglesia-admin/pkg/storage"
)

// PhotoFile is the uploaded report photo handed down from the multipart form.
type PhotoFile struct {
	Reader   io.Reader
	FileName string
}

type PostEventService interface {
	// CreatePostEvent attaches a report to an event. The parent event must be
	// APPROVED; PENDING and REJECTED events are refused.
	CreatePostEvent(ctx context.Context, req dto.CreatePostEventRequest, photo *PhotoFile) (*model.PostEvent, error)
	GetPostEvents(ctx context.Context) ([]*model.PostEvent, error)
	GetPostEventsByEvent(ctx context.Context, eventID uint) ([]*model.PostEvent, error)
}

type postEventService struct {
	repo      repository.PostEventRepository
	eventRepo repository.EventRepository
	photos    storage.PhotoStorage
}

func NewPostEventService(
	repo repository.PostEventRepository,
	eventRepo repository.EventRepository,
	photos storage.PhotoStorage,
) PostEventService {
	return &postEventService{
		repo:      repo,
		eventRepo: eventRepo,
		photos:    photos,
	}
}

func (s *postEventService) CreatePostEvent(ctx context.Context, req dto.CreatePostEventRequest, photo *PhotoFile) (*model.PostEvent, error) {
	if photo == nil || photo.Reader == nil {
		return nil, fmt.Errorf("photo is required: %w", apperror.ErrInvalidInput)
	}

	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if event.State != model.EventStateApproved {
		return nil, fmt.Errorf("event %d is %s: %w", event.ID, event.State, apperror.ErrEventNotApproved)
	}

	// Note: the state check and the insert below are not wrapped in a
	// transaction; a concurrent state change can slip in between them.
	photoURL, err := s.photos.UploadPhoto(ctx, photo.Reader, "post-events", photo.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to store report photo: %w", err)
	}

	postEvent := &model.PostEvent{
		PhotoURL:   photoURL,
		Comment:    sanitizeText(req.Comment),
		Conclusion: sanitizeText(req.Conclusion),
		EventID:    event.ID,
	}

	if err := s.repo.Create(ctx, postEvent); err != nil {
		return nil, err
	}
	return postEvent, nil
}

func (s *postEventService) GetPostEvents(ctx context.Context) ([]*model.PostEvent, error) {
	return s.repo.FindAll(ctx)
}

func (s *postEventService) GetPostEventsByEvent(ctx context.Context, eventID uint) ([]*model.PostEvent, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, translateNotFound(err)
	}
	return s.repo.FindByEvent(ctx, eventID)
}
