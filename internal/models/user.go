package models

import "time"

// User is the local owner of the app's data. There is no account system;
// onboarding creates one user by name and every store hangs off it.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate is a partial update: nil fields are left untouched.
type UserUpdate struct {
	Name *string `validate:"omitempty,min=1,max=100"`
}
