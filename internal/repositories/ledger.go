package repositories

import "gudang/internal/models"

// InventoryLedger adjusts product stock and records the movement in the
// transactions table as one atomic unit.
type InventoryLedger interface {
	// AdjustQuantity applies a stock movement to a product. For "in" and
	// "out" the quantity is a magnitude added to or subtracted from the
	// current stock; for "adjustment" it is the new absolute stock level.
	// Callers must honor that asymmetry.
	AdjustQuantity(productID uint, quantity int, kind models.TransactionType) (*models.Adjustment, error)
}
