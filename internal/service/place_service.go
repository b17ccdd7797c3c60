package service

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
)

type PlaceService interface {
	CreatePlace(ctx context.Context, req dto.CreatePlaceRequest) (*model.Place, error)
	GetPlaces(ctx context.Context) ([]*model.Place, error)
	GetPlace(ctx context.Context, id uint) (*model.Place, error)
	UpdatePlace(ctx context.Context, id uint, req dto.UpdatePlaceRequest) (*model.Place, error)
	DeletePlace(ctx context.Context, id uint) error
}

type placeService struct {
	repo repository.PlaceRepository
}

func NewPlaceService(repo repository.PlaceRepository) PlaceService {
	return &placeService{repo: repo}
}

func (s *placeService) CreatePlace(ctx context.Context, req dto.CreatePlaceRequest) (*model.Place, error) {
	place := &model.Place{
		Name:        req.Name,
		Description: sanitizeText(req.Description),
		Address:     req.Address,
		Phones:      req.Phones,
		Email:       req.Email,
		PhotoURL:    req.PhotoURL,
		Rooms:       req.Rooms,
	}

	if err := s.repo.Create(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *placeService) GetPlaces(ctx context.Context) ([]*model.Place, error) {
	return s.repo.FindAll(ctx)
}

func (s *placeService) GetPlace(ctx context.Context, id uint) (*model.Place, error) {
	place, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return place, nil
}

func (s *placeService) UpdatePlace(ctx context.Context, id uint, req dto.UpdatePlaceRequest) (*model.Place, error) {
	place, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Description != nil {
		place.Description = sanitizeText(*req.Description)
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.Phones != nil {
		place.Phones = *req.Phones
	}
	if req.Email != nil {
		place.Email = *req.Email
	}
	if req.PhotoURL != nil {
		place.PhotoURL = *req.PhotoURL
	}
	if req.Rooms != nil {
		place.Rooms = *req.Rooms
	}

	if err := s.repo.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *placeService) DeletePlace(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return s.repo.Delete(ctx, id)
}
