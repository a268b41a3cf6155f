// internal/models/order.go
package models

import "github.com/google/uuid"

// Order is a persisted checkout. Orders are never deleted by the
// storefront; only Status changes after creation, and only through the
// admin path. The order owns its items; it references but does not own
// the shipping address, so deleting the address clears the reference
// rather than blocking the delete or cascading into order history.
type Order struct {
	BaseModel
	UserID     uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	AddressID  *uuid.UUID  `json:"address_id" gorm:"type:uuid"`
	Status     OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	TotalPrice *float64    `json:"total_price" gorm:"type:decimal(10,2)"`

	User    User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Address *Address    `json:"address,omitempty" gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL"`
	Items   []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots one cart line at checkout. Price is the unit price
// at time of sale and is never re-derived from the live product.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
