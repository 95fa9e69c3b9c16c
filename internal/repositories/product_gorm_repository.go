package repositories

import (
	"fmt"
	"time"

	"gudang/internal/models"
	"gudang/internal/storage"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	handle *storage.Handle
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(handle *storage.Handle) *GORMProductRepository {
	return &GORMProductRepository{handle: handle}
}

// Create inserts a new product. A store_id pointing at no store violates
// the foreign key and the engine error is surfaced unchanged.
func (r *GORMProductRepository) Create(product *models.Product) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	if err := db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by id, returning nil (not an error) when
// absent.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// GetByStore retrieves the products of one store, ordered by name.
func (r *GORMProductRepository) GetByStore(storeID uint) ([]models.Product, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := db.Where("store_id = ?", storeID).Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for store %d: %w", storeID, err)
	}
	return products, nil
}

// GetAll retrieves all products, ordered by name.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := db.Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// Update applies the non-nil fields of the partial update. updated_at is
// refreshed even when no field is set. Quantity changes that should leave
// an audit trail belong on the inventory ledger, not here.
func (r *GORMProductRepository) Update(id uint, update models.ProductUpdate) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}

	values := map[string]interface{}{"updated_at": time.Now()}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.Price != nil {
		values["price"] = *update.Price
	}
	if update.Quantity != nil {
		values["quantity"] = *update.Quantity
	}
	if update.Category != nil {
		values["category"] = *update.Category
	}
	if update.ImageURL != nil {
		values["image_url"] = *update.ImageURL
	}

	res := db.Model(&models.Product{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a product; the database cascade removes its transactions.
func (r *GORMProductRepository) Delete(id uint) error {
	db, err := r.handle.DB()
	if err != nil {
		return err
	}
	res := db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}

// LowStock returns the products of a store at or below the threshold,
// lowest stock first.
func (r *GORMProductRepository) LowStock(storeID uint, threshold int) ([]models.Product, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	var products []models.Product
	err = db.Where("store_id = ? AND quantity <= ?", storeID, threshold).
		Order("quantity ASC, name ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get low-stock products for store %d: %w", storeID, err)
	}
	return products, nil
}

// Summary aggregates the inventory of one store.
func (r *GORMProductRepository) Summary(storeID uint) (*models.StoreSummary, error) {
	db, err := r.handle.DB()
	if err != nil {
		return nil, err
	}
	summary := models.StoreSummary{StoreID: storeID}
	err = db.Raw(`
		SELECT
			COUNT(*) AS product_count,
			COALESCE(SUM(quantity), 0) AS total_units,
			COALESCE(SUM(price * quantity), 0) AS total_value
		FROM products
		WHERE store_id = ?`, storeID).
		Row().Scan(&summary.ProductCount, &summary.TotalUnits, &summary.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize store %d: %w", storeID, err)
	}
	return &summary, nil
}
