package models

import "rsud/src/types"

// User is a staff account shown in the back-office. It does not carry
// credentials.
type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name"`
	Username string `gorm:"index" json:"username"`
	Role     string `json:"role"`
	Status   string `json:"status"`

	types.Timestamps
}
