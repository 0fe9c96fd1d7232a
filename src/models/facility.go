package models

import "rsud/src/types"

type Facility struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`

	types.Timestamps
}
