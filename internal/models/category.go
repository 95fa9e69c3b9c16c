package models

import "time"

// Category is a per-store label for grouping products. Names are unique
// within a store, enforced at the database level.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StoreID     uint      `json:"store_id" gorm:"not null;index:idx_categories_store_name,unique" validate:"required"`
	Name        string    `json:"name" gorm:"not null;index:idx_categories_store_name,unique" validate:"required,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryUpdate is a partial update: nil fields are left untouched.
type CategoryUpdate struct {
	Name        *string `validate:"omitempty,min=1,max=100"`
	Description *string `validate:"omitempty,max=500"`
}
