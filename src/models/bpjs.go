package models

import "rsud/src/types"

type BPJS struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	CardNumber string `gorm:"index" json:"card_number"`
	Name       string `json:"name"`
	ClassType  string `json:"class_type"`
	Status     string `json:"status"`
	Faskes     string `json:"faskes"`

	types.Timestamps
}

func (BPJS) TableName() string {
	return "bpjs_data"
}
