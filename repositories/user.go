package repositories

import (
	"github.com/workforce-hub/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	*ResourceRepository[models.User]
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{NewResourceRepository[models.User](db, "email ASC")}
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.DB().Where("email = ?", email).First(&user)
	return user, result.Error
}

// ExistsByEmail checks whether an email is already registered
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	result := r.DB().Model(&models.User{}).Where("email = ?", email).Count(&count)
	return count > 0, result.Error
}
