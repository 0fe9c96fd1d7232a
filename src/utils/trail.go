package utils

import (
	"log"
	"rsud/src/db"
	"rsud/src/models"
	"rsud/src/types"
	"time"
)

func registrationFields(r *models.Registration) map[string]any {
	return map[string]any{
		"status":         string(r.Status),
		"payment_status": string(r.PaymentStatus),
		"payment_detail": r.PaymentDetail,
		"payment_proof":  r.PaymentProof,
		"cost":           r.Cost,
		"class_type":     r.ClassType,
		"facility_notes": r.FacilityNotes,
	}
}

// RegistrationDiff lists the audited fields that differ between before and
// after as {field: {from, to}}.
func RegistrationDiff(before *models.Registration, after *models.Registration) types.JSONB {
	diff := types.JSONB{}
	b := registrationFields(before)
	for k, v := range registrationFields(after) {
		if b[k] != v {
			diff[k] = map[string]any{"from": b[k], "to": v}
		}
	}
	return diff
}

// RecordRegistrationTrail stores an audit entry. Failures are logged only.
func RecordRegistrationTrail(event string, initiator string, before *models.Registration, after *models.Registration) {
	changes := RegistrationDiff(before, after)
	if len(changes) == 0 {
		return
	}
	entry := models.TrailLog{
		Type:      event,
		Initiator: initiator,
		Group:     models.BookingCode(after.ID),
		Changes:   changes,
	}
	db := db.GetDb()
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Error recording trail for %s: %s\n", entry.Group, err.Error())
	}
}

func ListRegistrationTrail(id uint) ([]models.TrailLog, error) {
	logs := []models.TrailLog{}
	db := db.GetDb()
	if err := db.
		Where(&models.TrailLog{Group: models.BookingCode(id)}).
		Order("created_at asc").
		Find(&logs).
		Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func RecordJobRun(name string, started time.Time, affected int64, runErr error) {
	run := models.JobRun{
		Name:       name,
		Status:     models.JOB_STATUS_SUCCESS,
		Affected:   affected,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if runErr != nil {
		run.Status = models.JOB_STATUS_FAILED
		run.Error = runErr.Error()
	}
	db := db.GetDb()
	if err := db.Create(&run).Error; err != nil {
		log.Printf("Error recording run of %s: %s\n", name, err.Error())
	}
}

func ListJobRuns(limit int) ([]models.JobRun, error) {
	runs := []models.JobRun{}
	db := db.GetDb()
	if err := db.Order("started_at desc").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
