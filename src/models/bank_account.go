package models

import "rsud/src/types"

type BankAccount struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Type          string `gorm:"index" json:"type"`
	IsActive      bool   `gorm:"not null" json:"is_active"`

	types.Timestamps
}
