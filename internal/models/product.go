package models

import "time"

// Product is a catalog item tracked per store. Quantity is the live stock
// level; every change to it should go through the inventory ledger so an
// audit transaction exists for it.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StoreID     uint      `json:"store_id" gorm:"not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null" validate:"required,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Price       float64   `json:"price" gorm:"not null;default:0" validate:"gte=0"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	Category    string    `json:"category" validate:"omitempty,max=100"`
	ImageURL    string    `json:"image_url" gorm:"column:image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductUpdate is a partial update: nil fields are left untouched, so
// setting a field to its zero value and omitting it are distinct.
type ProductUpdate struct {
	Name        *string  `validate:"omitempty,min=1,max=100"`
	Description *string  `validate:"omitempty,max=500"`
	Price       *float64 `validate:"omitempty,gte=0"`
	Quantity    *int
	Category    *string `validate:"omitempty,max=100"`
	ImageURL    *string
}
