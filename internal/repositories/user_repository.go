package repositories

import (
	"errors"

	"boostify/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	IncrementTokenVersion(userID uint) error
	List(offset, limit int) ([]*models.User, int64, error)
	UpdateStatus(userID uint, status string) error
}
