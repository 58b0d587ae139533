package repositories

import (
	"gorm.io/gorm"
)

// ResourceRepository handles flat CRUD for one table
type ResourceRepository[T any] struct {
	db    *gorm.DB
	order string
}

// NewResourceRepository creates a repository whose listings use order
func NewResourceRepository[T any](db *gorm.DB, order string) *ResourceRepository[T] {
	return &ResourceRepository[T]{db: db, order: order}
}

// FindAll retrieves every record, limited to userID when it is not empty
func (r *ResourceRepository[T]) FindAll(userID string) ([]T, error) {
	records := make([]T, 0)
	query := r.db.Model(new(T))
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if r.order != "" {
		query = query.Order(r.order)
	}
	result := query.Find(&records)
	return records, result.Error
}

// FindByID retrieves a record by its ID
func (r *ResourceRepository[T]) FindByID(id string) (T, error) {
	var record T
	result := r.db.First(&record, "id = ?", id)
	return record, result.Error
}

// Create inserts a new record
func (r *ResourceRepository[T]) Create(record *T) error {
	return r.db.Create(record).Error
}

// Save writes every column of an existing record
func (r *ResourceRepository[T]) Save(record *T) error {
	return r.db.Save(record).Error
}

// Update writes only the given columns and returns the stored record.
// Columns that are not in changes keep their current value.
func (r *ResourceRepository[T]) Update(id string, changes map[string]interface{}) (T, error) {
	var record T
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(new(T)).Where("id = ?", id).Updates(changes).Error; err != nil {
				return err
			}
		}
		record = *new(T)
		return tx.First(&record, "id = ?", id).Error
	})
	return record, err
}

// Delete removes a record, returning gorm.ErrRecordNotFound if nothing matched
func (r *ResourceRepository[T]) Delete(id string) error {
	result := r.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DB returns the database instance
func (r *ResourceRepository[T]) DB() *gorm.DB {
	return r.db
}
