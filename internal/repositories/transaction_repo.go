package repositories

import "gudang/internal/models"

// TransactionRepository defines the interface for the append-only audit
// log. There is no update or delete: rows only leave the table through the
// cascade when their product goes.
type TransactionRepository interface {
	Create(transaction *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetByProduct(productID uint) ([]models.Transaction, error)
	GetByStore(storeID uint) ([]models.Transaction, error)
	GetAll() ([]models.Transaction, error)
}
