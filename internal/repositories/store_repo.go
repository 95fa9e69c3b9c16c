package repositories

import "gudang/internal/models"

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	Create(store *models.Store) error
	GetByID(id uint) (*models.Store, error)
	GetByUser(userID uint) ([]models.Store, error)
	GetAll() ([]models.Store, error)
	Update(id uint, update models.StoreUpdate) error
	Delete(id uint) error
}
