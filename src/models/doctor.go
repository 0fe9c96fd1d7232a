package models

import "rsud/src/types"

type Doctor struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Specialty string `json:"specialty"`
	Image     string `json:"image"`
	Schedule  string `json:"schedule"`
	Available bool   `gorm:"not null" json:"available"`

	types.Timestamps
}
