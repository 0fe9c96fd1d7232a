package models

import (
	"rsud/src/types"

	"gorm.io/gorm"
)

type Room struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `json:"name"`
	ClassType    string `json:"class_type"`
	TotalBeds    int    `json:"total_beds"`
	OccupiedBeds int    `json:"occupied_beds"`
	Price        int64  `json:"price"`

	AvailableBeds int `gorm:"-" json:"available_beds"`

	types.Timestamps
}

func (r *Room) AfterFind(tx *gorm.DB) error {
	r.AvailableBeds = r.TotalBeds - r.OccupiedBeds
	if r.AvailableBeds < 0 {
		r.AvailableBeds = 0
	}
	return nil
}
