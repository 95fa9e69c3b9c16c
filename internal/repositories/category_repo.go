package repositories

import "gudang/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByStore(storeID uint) ([]models.Category, error)
	GetAll() ([]models.Category, error)
	Update(id uint, update models.CategoryUpdate) error
	Delete(id uint) error
}
