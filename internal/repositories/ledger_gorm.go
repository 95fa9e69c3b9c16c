package repositories

import (
	"fmt"
	"time"

	"gudang/internal/models"
	"gudang/internal/storage"

	"gorm.io/gorm"
)

// GORMInventoryLedger is a GORM implementation of InventoryLedger. The
// read-modify-write and the audit insert run inside one database
// transaction, so a crash can never leave a quantity change without its
// audit row or the reverse.
type GORMInventoryLedger struct {
	handle *storage.Handle
}

// NewGORMInventoryLedger creates a new instance of GORMInventoryLedger.
func NewGORMInventoryLedger(handle *storage.Handle) *GORMInventoryLedger {
	return &GORMInventoryLedger{handle: handle}
}

// AdjustQuantity applies a stock movement and appends the matching audit
// transaction. An unknown kind or a missing product is an error; stock is
// allowed to go negative under "out" and the caller decides how to surface
// that.
func (l *GORMInventoryLedger) AdjustQuantity(productID uint, quantity int, kind models.TransactionType) (*models.Adjustment, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown transaction type %q", kind)
	}

	db, err := l.handle.DB()
	if err != nil {
		return nil, err
	}

	var adjustment models.Adjustment
	err = db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("product %d: %w", productID, ErrNotFound)
			}
			return fmt.Errorf("failed to get product %d: %w", productID, err)
		}

		before := product.Quantity
		after := before
		switch kind {
		case models.TransactionIn:
			after = before + quantity
		case models.TransactionOut:
			after = before - quantity
		case models.TransactionAdjustment:
			after = quantity
		}

		res := tx.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
			"quantity":   after,
			"updated_at": time.Now(),
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update quantity of product %d: %w", productID, res.Error)
		}

		record := models.Transaction{
			ProductID: productID,
			Type:      kind,
			Quantity:  quantity,
			Notes:     fmt.Sprintf("Quantity %s: %d -> %d", kind, before, after),
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record transaction for product %d: %w", productID, err)
		}

		adjustment = models.Adjustment{
			ProductID:     productID,
			Type:          kind,
			Quantity:      quantity,
			Before:        before,
			After:         after,
			TransactionID: record.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &adjustment, nil
}
