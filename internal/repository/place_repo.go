package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	FindAll(ctx context.Context) ([]*model.Place, error)
	FindByID(ctx context.Context, id uint) (*model.Place, error)
	Update(ctx context.Context, place *model.Place) error
	Delete(ctx context.Context, id uint) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) FindAll(ctx context.Context) ([]*model.Place, error) {
	var places []*model.Place
	if err := r.db.WithContext(ctx).Order("name").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindByID(ctx context.Context, id uint) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).First(&place, id).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) Update(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *placeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Place{}, id).Error
}
