package models

import "time"

// Store represents a shop owned by exactly one user.
type Store struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null" validate:"required,max=100"`
	Type      string    `json:"type" gorm:"not null" validate:"required,max=100"`
	Location  string    `json:"location" gorm:"not null" validate:"required,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreUpdate is a partial update: nil fields are left untouched.
type StoreUpdate struct {
	Name     *string `validate:"omitempty,min=1,max=100"`
	Type     *string `validate:"omitempty,min=1,max=100"`
	Location *string `validate:"omitempty,min=1,max=255"`
}

// StoreSummary aggregates the inventory of a single store.
type StoreSummary struct {
	StoreID      uint    `json:"store_id"`
	ProductCount int64   `json:"product_count"`
	TotalUnits   int64   `json:"total_units"`
	TotalValue   float64 `json:"total_value"` // SUM(price * quantity)
}
