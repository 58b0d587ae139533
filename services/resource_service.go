package services

import (
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

// ResourceService implements list/create/update/delete for a flat entity.
// Entities implementing models.Owned are visible only to their owner.
type ResourceService[T any] struct {
	repo   *repositories.ResourceRepository[T]
	entity string
}

// NewResourceService creates a resource service; entity names the type in errors
func NewResourceService[T any](repo *repositories.ResourceRepository[T], entity string) *ResourceService[T] {
	return &ResourceService[T]{repo: repo, entity: entity}
}

func isOwned[T any]() bool {
	_, ok := any(*new(T)).(models.Owned)
	return ok
}

// visible reports whether userID may see record
func visible[T any](record T, userID string) bool {
	owned, ok := any(record).(models.Owned)
	return !ok || owned.OwnerID() == userID
}

// List returns the caller's records, or all records for unowned entities
func (s *ResourceService[T]) List(userID string) ([]T, error) {
	if !isOwned[T]() {
		userID = ""
	}
	return s.repo.FindAll(userID)
}

// Get returns one record the caller can see
func (s *ResourceService[T]) Get(id, userID string) (T, error) {
	if err := utils.CheckID(s.entity, id); err != nil {
		return *new(T), err
	}
	record, err := s.repo.FindByID(id)
	if err != nil {
		return *new(T), utils.TranslateNotFound(err, s.entity, id)
	}
	if !visible(record, userID) {
		return *new(T), utils.NotFound(s.entity, id)
	}
	return record, nil
}

// Create validates draft, applies its defaults and stores the record
func (s *ResourceService[T]) Create(userID string, draft dto.Draft[T]) (T, error) {
	record, err := draft.ToModel(userID)
	if err != nil {
		return *new(T), err
	}
	if err := s.repo.Create(&record); err != nil {
		return *new(T), err
	}
	return record, nil
}

// Update writes only the fields present in patch
func (s *ResourceService[T]) Update(id, userID string, patch dto.Patch) (T, error) {
	if _, err := s.Get(id, userID); err != nil {
		return *new(T), err
	}

	changes, err := patch.Changes()
	if err != nil {
		return *new(T), err
	}

	record, err := s.repo.Update(id, changes)
	if err != nil {
		return *new(T), utils.TranslateNotFound(err, s.entity, id)
	}
	return record, nil
}

// Delete removes a record; a missing id is an error
func (s *ResourceService[T]) Delete(id, userID string) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	return utils.TranslateNotFound(s.repo.Delete(id), s.entity, id)
}
