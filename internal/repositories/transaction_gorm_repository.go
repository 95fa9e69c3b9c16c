package repositories

import (
	"fmt"

	"gudang/internal/models"
	"gudang/internal/storage"

	"gorm.io/gorm"
)

// GORMTransactionRepository is a GORM implementation of
// TransactionRepository.
type GORMTransactionRepository struct {
	handle *storage.Handle
}

// NewGORMTransactionRepository creates a new instance of
// GORMTransactionRepository.
func NewGORMTransactionRepository(handle *storage.Handle) *GORMTransactionRepository {
	return &GORMTransactionRepository{handle: handle}
}

// Create appends a transaction to the audit log. An unknown type trips the
// table's CHECK constraint and the engine error is surfaced unchanged.
func (r *GORMTransactionRepository) Create(transaction *models.Transaction) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	if err := db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by id, returning nil (not an error) when
// absent.
func (r *GORMTransactionRepository) GetByID(id uint) (*models.Transaction, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var transaction models.Transaction
	if err := db.First(&transaction, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction by ID %d: %w", id, err)
	}
	return &transaction, nil
}

// GetByProduct retrieves the audit log of one product, newest first.
func (r *GORMTransactionRepository) GetByProduct(productID uint) ([]models.Transaction, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var transactions []models.Transaction
	err = db.Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for product %d: %w", productID, err)
	}
	return transactions, nil
}

// GetByStore retrieves the audit log of every product in a store, newest
// first, joining through the products table.
func (r *GORMTransactionRepository) GetByStore(storeID uint) ([]models.Transaction, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var transactions []models.Transaction
	err = db.Raw(`
		SELECT t.* FROM transactions t
		JOIN products p ON t.product_id = p.id
		WHERE p.store_id = ?
		ORDER BY t.created_at DESC, t.id DESC`, storeID).
		Scan(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for store %d: %w", storeID, err)
	}
	return transactions, nil
}

// GetAll retrieves the whole audit log, newest first.
func (r *GORMTransactionRepository) GetAll() ([]models.Transaction, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var transactions []models.Transaction
	if err := db.Order("created_at DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all transactions: %w", err)
	}
	return transactions, nil
}
