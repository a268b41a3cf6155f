// internal/models/favorite.go
package models

import "github.com/google/uuid"

// Favorite is a saved product bookmark, presence only.
type Favorite struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_fav_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_fav_user_product"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
