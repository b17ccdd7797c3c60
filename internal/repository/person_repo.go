package repository

import (
	"context"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	FindAll(ctx context.Context, filter string) ([]*model.Person, error)
	FindByID(ctx context.Context, id uint) (*model.Person, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*model.Person, error)
	Update(ctx context.Context, person *model.Person) error
	Delete(ctx context.Context, id uint) error
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepository) FindAll(ctx context.Context, filter string) ([]*model.Person, error) {
	var people []*model.Person
	query := r.db.WithContext(ctx)

	if filter != "" {
		pattern := "%" + filter + "%"
		query = query.Where("firstname ILIKE ? OR lastname ILIKE ?", pattern, pattern)
	}

	if err := query.Order("lastname, firstname").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *personRepository) FindByID(ctx context.Context, id uint) (*model.Person, error) {
	var person model.Person
	if err := r.db.WithContext(ctx).First(&person, id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) FindByIDs(ctx context.Context, ids []uint) ([]*model.Person, error) {
	var people []*model.Person
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *personRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Person{}, id).Error
}
