package models

import "time"

// Product represents a product in the store.
type Product struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Price     float64   `json:"price" gorm:"not null;check:chk_products_price,price > 0" validate:"gt=0"`
	Available bool      `json:"available" gorm:"not null"`
	CreatedAt time.Time `json:"-"` // Managed by GORM, never exposed
	UpdatedAt time.Time `json:"-"`
}
