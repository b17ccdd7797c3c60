package service

import (
	"context"
	"log"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
)

type PersonService interface {
	CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*model.Person, error)
	GetPeople(ctx context.Context, filter dto.PersonFilter) ([]*model.Person, error)
	GetPerson(ctx context.Context, id uint) (*model.Person, error)
	UpdatePerson(ctx context.Context, id uint, req dto.UpdatePersonRequest) (*model.Person, error)
	DeletePerson(ctx context.Context, id uint) error
}

type personService struct {
	repo   repository.PersonRepository
	search PersonSearchService
}

// NewPersonService creates the person service. search may be nil when
// Meilisearch is not configured; name search then falls back to the database.
func NewPersonService(repo repository.PersonRepository, search PersonSearchService) PersonService {
	return &personService{repo: repo, search: search}
}

func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) (*model.Person, error) {
	person := &model.Person{
		Firstname:      req.Firstname,
		Lastname:       req.Lastname,
		Address:        req.Address,
		Phone:          req.Phone,
		Birthdate:      req.Birthdate,
		BaptismDate:    req.BaptismDate,
		ConvertionDate: req.ConvertionDate,
		Gender:         req.Gender,
	}

	if err := s.repo.Create(ctx, person); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexPerson(person); err != nil {
			log.Printf("failed to index person %d: %v", person.ID, err)
		}
	}

	return person, nil
}

func (s *personService) GetPeople(ctx context.Context, filter dto.PersonFilter) ([]*model.Person, error) {
	if filter.Search != "" && s.search != nil {
		ids, err := s.search.Search(filter.Search)
		if err == nil {
			return s.repo.FindByIDs(ctx, ids)
		}
		// Search outage: fall through to the database filter.
		log.Printf("people search unavailable, falling back to database: %v", err)
	}

	return s.repo.FindAll(ctx, filter.Search)
}

func (s *personService) GetPerson(ctx context.Context, id uint) (*model.Person, error) {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return person, nil
}

func (s *personService) UpdatePerson(ctx context.Context, id uint, req dto.UpdatePersonRequest) (*model.Person, error) {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if req.Firstname != nil {
		person.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		person.Lastname = *req.Lastname
	}
	if req.Address != nil {
		person.Address = *req.Address
	}
	if req.Phone != nil {
		person.Phone = *req.Phone
	}
	if req.Birthdate != nil {
		person.Birthdate = *req.Birthdate
	}
	if req.BaptismDate != nil {
		person.BaptismDate = req.BaptismDate
	}
	if req.ConvertionDate != nil {
		person.ConvertionDate = req.ConvertionDate
	}
	if req.Gender != nil {
		person.Gender = *req.Gender
	}

	if err := s.repo.Update(ctx, person); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexPerson(person); err != nil {
			log.Printf("failed to reindex person %d: %v", person.ID, err)
		}
	}

	return person, nil
}

func (s *personService) DeletePerson(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translateNotFound(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		if err := s.search.DeletePerson(id); err != nil {
			log.Printf("failed to remove person %d from index: %v", id, err)
		}
	}

	return nil
}
