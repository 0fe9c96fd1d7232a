package models

import "rsud/src/types"

type Message struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"is_read"`

	types.Timestamps
}
