package services

import (
	"gudang/internal/models"
	"gudang/internal/repositories"

	"go.uber.org/zap"
)

// InventoryService handles stock movements and derived stock queries.
type InventoryService struct {
	ledger            repositories.InventoryLedger
	products          repositories.ProductRepository
	transactions      repositories.TransactionRepository
	lowStockThreshold int
	log               *zap.Logger
}

// NewInventoryService creates a new InventoryService. lowStockThreshold is
// the quantity at or below which a product counts as low on stock.
func NewInventoryService(
	ledger repositories.InventoryLedger,
	products repositories.ProductRepository,
	transactions repositories.TransactionRepository,
	lowStockThreshold int,
	log *zap.Logger,
) *InventoryService {
	return &InventoryService{
		ledger:            ledger,
		products:          products,
		transactions:      transactions,
		lowStockThreshold: lowStockThreshold,
		log:               log,
	}
}

// Adjust applies a stock movement through the ledger. Stock going negative
// is permitted but logged as a warning so the caller can surface it.
func (s *InventoryService) Adjust(productID uint, quantity int, kind models.TransactionType) (*models.Adjustment, error) {
	adjustment, err := s.ledger.AdjustQuantity(productID, quantity, kind)
	if err != nil {
		return nil, err
	}

	if adjustment.After < 0 {
		s.log.Warn("product stock went negative",
			zap.Uint("product_id", productID),
			zap.Int("quantity", adjustment.After),
			zap.String("type", string(kind)))
	}
	return adjustment, nil
}

// LowStock lists a store's products at or below the configured threshold.
func (s *InventoryService) LowStock(storeID uint) ([]models.Product, error) {
	return s.products.LowStock(storeID, s.lowStockThreshold)
}

// StoreSummary aggregates product count, units, and value for one store.
func (s *InventoryService) StoreSummary(storeID uint) (*models.StoreSummary, error) {
	return s.products.Summary(storeID)
}

// ProductHistory lists a product's audit transactions, newest first.
func (s *InventoryService) ProductHistory(productID uint) ([]models.Transaction, error) {
	return s.transactions.GetByProduct(productID)
}

// StoreHistory lists the audit transactions of every product in a store,
// newest first.
func (s *InventoryService) StoreHistory(storeID uint) ([]models.Transaction, error) {
	return s.transactions.GetByStore(storeID)
}
