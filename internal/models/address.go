// internal/models/address.go
package models

import "github.com/google/uuid"

type Address struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	FullName    string    `json:"full_name" gorm:"size:100;not null"`
	Street      string    `json:"street" gorm:"size:255;not null"`
	City        string    `json:"city" gorm:"size:100;not null"`
	PostalCode  string    `json:"postal_code" gorm:"size:20;not null"`
	PhoneNumber string    `json:"phone_number" gorm:"size:30;not null"`
}
