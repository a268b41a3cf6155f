// internal/models/product.go
package models

import "gorm.io/gorm"

// Product is immutable from the storefront's perspective; only admin
// flows mutate it. Deletion is soft so order items keep a resolvable
// product reference.
type Product struct {
	BaseModel
	Title       string         `json:"title" gorm:"size:255;not null"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Description *string        `json:"description" gorm:"type:text"`
	Image       *string        `json:"image" gorm:"size:1024"`
	Gallery     StringSlice    `json:"gallery,omitempty" gorm:"type:jsonb"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
