package service

import (
	"fmt"
	"log"
	"strconv"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/meilisearch/meilisearch-go"
)

const peopleIndex = "people"

// PersonSearchService keeps a Meilisearch index of people so the console can
// search members by name. All methods are best-effort: the database stays the
// source of truth and a search outage must not break CRUD.
type PersonSearchService interface {
	IndexPerson(person *model.Person) error
	DeletePerson(id uint) error
	Search(query string) ([]uint, error)
}

type personSearchService struct {
	client meilisearch.ServiceManager
}

func NewPersonSearchService(client meilisearch.ServiceManager) PersonSearchService {
	s := &personSearchService{client: client}
	s.initIndex()
	return s
}

func (s *personSearchService) initIndex() {
	searchable := []string{"firstname", "lastname"}
	if _, err := s.client.Index(peopleIndex).UpdateSearchableAttributes(&searchable); err != nil {
		log.Printf("Failed to update people searchable attributes: %v", err)
	}
}

type meiliPersonDoc struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Gender    string `json:"gender"`
}

func (s *personSearchService) IndexPerson(person *model.Person) error {
	doc := meiliPersonDoc{
		ID:        strconv.FormatUint(uint64(person.ID), 10),
		Firstname: person.Firstname,
		Lastname:  person.Lastname,
		Gender:    person.Gender,
	}

	if _, err := s.client.Index(peopleIndex).AddDocuments([]meiliPersonDoc{doc}, nil); err != nil {
		return fmt.Errorf("failed to index person %d: %w", person.ID, err)
	}
	return nil
}

func (s *personSearchService) DeletePerson(id uint) error {
	if _, err := s.client.Index(peopleIndex).DeleteDocument(strconv.FormatUint(uint64(id), 10)); err != nil {
		return fmt.Errorf("failed to remove person %d from index: %w", id, err)
	}
	return nil
}

func (s *personSearchService) Search(query string) ([]uint, error) {
	resp, err := s.client.Index(peopleIndex).Search(query, &meilisearch.SearchRequest{
		Limit: 50,
	})
	if err != nil {
		return nil, fmt.Errorf("people search failed: %w", err)
	}

	var docs []meiliPersonDoc
	if err := resp.Hits.Decode(&docs); err != nil {
		return nil, fmt.Errorf("failed to decode people hits: %w", err)
	}

	ids := make([]uint, 0, len(docs))
	for _, doc := range docs {
		id, err := strconv.ParseUint(doc.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
