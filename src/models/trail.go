package models

import (
	"rsud/src/types"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrailLog is an audit entry for a change to a registration. Group holds the
// booking code, Initiator the admin username or patient NIK.
type TrailLog struct {
	ID        uuid.UUID   `gorm:"primarykey;type:uuid" json:"id"`
	Type      string      `gorm:"index" json:"type"`
	Initiator string      `json:"initiator"`
	Group     string      `gorm:"index" json:"group"`
	Changes   types.JSONB `json:"changes"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (t *TrailLog) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
