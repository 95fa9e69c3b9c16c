package repositories

import "gudang/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByName(name string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(id uint, update models.UserUpdate) error
	Delete(id uint) error
	DeleteAll() error
	FindOrCreate(name string) (*models.User, error)
}
