package repositories

import (
	"fmt"

	"gudang/internal/models"
	"gudang/internal/storage"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	handle *storage.Handle
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(handle *storage.Handle) *GORMCategoryRepository {
	return &GORMCategoryRepository{handle: handle}
}

// Create inserts a new category. A duplicate name within the same store
// violates the (store_id, name) unique constraint and the engine error is
// surfaced unchanged.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	if err := db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by id, returning nil (not an error) when
// absent.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// GetByStore retrieves the categories of one store, ordered by name.
func (r *GORMCategoryRepository) GetByStore(storeID uint) ([]models.Category, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := db.Where("store_id = ?", storeID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories for store %d: %w", storeID, err)
	}
	return categories, nil
}

// GetAll retrieves all categories, ordered by name.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// Update applies the non-nil fields of the partial update. Categories carry
// no updated_at column, so an empty update is a no-op write.
func (r *GORMCategoryRepository) Update(id uint, update models.CategoryUpdate) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}

	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if len(values) == 0 {
		existing, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil
	}

	res := db.Model(&models.Category{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a category. Products keep their free-text category field;
// only the label row goes away.
func (r *GORMCategoryRepository) Delete(id uint) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	res := db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return nil
}
