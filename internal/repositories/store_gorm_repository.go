package repositories

import (
	"fmt"
	"time"

	"gudang/internal/models"
	"gudang/internal/storage"

	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	handle *storage.Handle
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(handle *storage.Handle) *GORMStoreRepository {
	return &GORMStoreRepository{handle: handle}
}

// Create inserts a new store. A user_id pointing at no user violates the
// foreign key and the engine error is surfaced unchanged.
func (r *GORMStoreRepository) Create(store *models.Store) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	if err := db.Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// GetByID retrieves a store by id, returning nil (not an error) when absent.
func (r *GORMStoreRepository) GetByID(id uint) (*models.Store, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var store models.Store
	if err := db.First(&store, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get store by ID %d: %w", id, err)
	}
	return &store, nil
}

// GetByUser retrieves the stores of one user, newest first.
func (r *GORMStoreRepository) GetByUser(userID uint) ([]models.Store, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var stores []models.Store
	if err := db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get stores for user %d: %w", userID, err)
	}
	return stores, nil
}

// GetAll retrieves all stores, newest first.
func (r *GORMStoreRepository) GetAll() ([]models.Store, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var stores []models.Store
	if err := db.Order("created_at DESC, id DESC").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stores: %w", err)
	}
	return stores, nil
}

// Update applies the non-nil fields of the partial update. updated_at is
// refreshed even when no field is set.
func (r *GORMStoreRepository) Update(id uint, update models.StoreUpdate) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}

	values := map[string]interface{}{"updated_at": time.Now()}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Type != nil {
		values["type"] = *update.Type
	}
	if update.Location != nil {
		values["location"] = *update.Location
	}

	res := db.Model(&models.Store{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update store %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a store; the database cascade removes its products,
// categories, and their transactions.
func (r *GORMStoreRepository) Delete(id uint) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	res := db.Delete(&models.Store{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete store %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store %d: %w", id, ErrNotFound)
	}
	return nil
}
