package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JOB_STATUS_SUCCESS = "success"
	JOB_STATUS_FAILED  = "failed"
)

// JobRun records one execution of a scheduled job.
type JobRun struct {
	ID uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`

	Name       string    `gorm:"index" json:"name"`
	Status     string    `json:"status"`
	Affected   int64     `json:"affected"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func (j *JobRun) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
