package models

import "time"

// TransactionType classifies an inventory movement.
type TransactionType string

const (
	// TransactionIn adds the recorded quantity to stock.
	TransactionIn TransactionType = "in"
	// TransactionOut removes the recorded quantity from stock.
	TransactionOut TransactionType = "out"
	// TransactionAdjustment sets stock to the recorded quantity. Unlike
	// in/out the quantity is an absolute target, not a delta.
	TransactionAdjustment TransactionType = "adjustment"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionAdjustment:
		return true
	}
	return false
}

// Transaction is one row of the append-only inventory audit log. Rows are
// never updated after insert and are cascade-deleted with their product.
type Transaction struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ProductID uint            `json:"product_id" gorm:"not null;index" validate:"required"`
	Type      TransactionType `json:"type" gorm:"not null" validate:"required"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     *float64        `json:"price,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Adjustment is the result of one ledger operation: the stock level before
// and after, plus the audit row that recorded it.
type Adjustment struct {
	ProductID     uint            `json:"product_id"`
	Type          TransactionType `json:"type"`
	Quantity      int             `json:"quantity"` // value passed in: delta for in/out, absolute for adjustment
	Before        int             `json:"before"`
	After         int             `json:"after"`
	TransactionID uint            `json:"transaction_id"`
}
