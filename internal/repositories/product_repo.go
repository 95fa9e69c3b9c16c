package repositories

import "gudang/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetByStore(storeID uint) ([]models.Product, error)
	GetAll() ([]models.Product, error)
	Update(id uint, update models.ProductUpdate) error
	Delete(id uint) error
	// LowStock returns the products of a store at or below the given
	// quantity threshold, lowest stock first.
	LowStock(storeID uint, threshold int) ([]models.Product, error)
	// Summary aggregates product count, total units, and total inventory
	// value for one store.
	Summary(storeID uint) (*models.StoreSummary, error)
}
