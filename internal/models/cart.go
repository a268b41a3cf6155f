// internal/models/cart.go
package models

import "github.com/google/uuid"

// CartItem is one pending selection. A user holds at most one row per
// product; re-adding a product increments Quantity instead of inserting
// a second row.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
