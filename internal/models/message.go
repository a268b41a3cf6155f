// internal/models/message.go
package models

type ContactMessage struct {
	BaseModel
	Name    string `json:"name" gorm:"size:100;not null"`
	Email   string `json:"email" gorm:"size:255;not null"`
	Subject string `json:"subject" gorm:"size:255"`
	Body    string `json:"body" gorm:"type:text;not null"`
	Read    bool   `json:"read" gorm:"default:false"`
}
