package models

import "time"

// Product represents a catalog item. CreatedAt is assigned by the server and
// is the default sort key for listings (most recent first).
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"index;type:varchar(100)" validate:"required,max=100"`
	Price       float64   `json:"price" validate:"gte=0"`
	Category    string    `json:"category" gorm:"index;type:varchar(100)" validate:"required,max=100"`
	Stock       int       `json:"stock" validate:"gte=0"`
	ImageURL    string    `json:"imageUrl" gorm:"type:varchar(500)" validate:"omitempty,url"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
