package utils

import (
	"context"
	"fmt"
	"log"
	"rsud/src/config"
	"rsud/src/db"
	awslib "rsud/src/lib/aws"
	"rsud/src/models"
	"rsud/src/models/scopes"
	"rsud/src/types"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const PAYMENT_PROOF_PREFIX = "payment-proofs/"

func CreateRegistration(params *types.CreateRegistrationRequestBody) (*models.Registration, error) {
	if !params.Complete() {
		return nil, ErrIncompleteRegistration
	}
	if !ValidNIK(strings.TrimSpace(params.NIK)) {
		return nil, ErrInvalidNIK
	}
	if _, err := time.Parse(config.DATE_FORMAT, params.Date); err != nil {
		return nil, ErrInvalidVisitDate
	}
	registration := models.Registration{
		NIK:     strings.TrimSpace(params.NIK),
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Poli:    params.Poli,
		Date:    params.Date,
		Payment: params.Payment,
		Cost:    0,
		Status:  types.REGISTRATION_PENDING,
	}
	if registration.Payment == "" {
		registration.Payment = types.PAYMENT_CHANNEL_UMUM
	}
	if registration.Payment == types.PAYMENT_CHANNEL_BPJS {
		registration.PaymentStatus = types.PAYMENT_PAID
		registration.PaymentDetail = types.PAYMENT_DETAIL_BPJS
	} else {
		registration.PaymentStatus = types.PAYMENT_UNPAID
		registration.PaymentDetail = params.PaymentDetail
		if registration.PaymentDetail == "" {
			registration.PaymentDetail = types.PAYMENT_DETAIL_CASH
		}
	}
	db := db.GetDb()
	if err := db.Create(&registration).Error; err != nil {
		return nil, err
	}
	return registration.Decorate(), nil
}

// RegistrationPatch collects the columns present in params. Status, payment
// status, payment detail and proof are ignored when empty; cost, class and
// facility notes apply whenever sent.
func RegistrationPatch(params *types.UpdateRegistrationRequestBody) map[string]any {
	updates := map[string]any{}
	if params.Status != nil && *params.Status != "" {
		updates["status"] = *params.Status
	}
	if params.PaymentStatus != nil && *params.PaymentStatus != "" {
		updates["payment_status"] = *params.PaymentStatus
	}
	if params.Cost != nil {
		updates["cost"] = *params.Cost
	}
	if params.PaymentDetail != nil && *params.PaymentDetail != "" {
		updates["payment_detail"] = *params.PaymentDetail
	}
	if params.PaymentProof != nil && *params.PaymentProof != "" {
		updates["payment_proof"] = *params.PaymentProof
	}
	if params.ClassType != nil {
		updates["class_type"] = *params.ClassType
	}
	if params.FacilityNotes != nil {
		updates["facility_notes"] = *params.FacilityNotes
	}
	return updates
}

func GetRegistration(id uint) (*models.Registration, error) {
	var registration models.Registration
	db := db.GetDb()
	if err := db.Scopes(scopes.WithID(id)).First(&registration).Error; err != nil {
		return nil, err
	}
	return registration.Decorate(), nil
}

func ListRegistrations(scope ...func(*gorm.DB) *gorm.DB) ([]models.Registration, error) {
	registrations := []models.Registration{}
	db := db.GetDb()
	if err := db.Scopes(scope...).Scopes(scopes.Latest).Find(&registrations).Error; err != nil {
		return nil, err
	}
	for i := range registrations {
		registrations[i].Decorate()
	}
	return registrations, nil
}

// UpdateRegistration applies a partial update and returns the row as it was
// before and after the change.
func UpdateRegistration(ctx context.Context, id uint, params *types.UpdateRegistrationRequestBody) (*models.Registration, *models.Registration, error) {
	updates := RegistrationPatch(params)
	if len(updates) == 0 {
		return nil, nil, ErrNoFieldsToUpdate
	}
	before, err := GetRegistration(id)
	if err != nil {
		return nil, nil, err
	}
	if proof, ok := updates["payment_proof"].(string); ok {
		stored, err := StorePaymentProof(ctx, before, proof)
		if err != nil {
			return nil, nil, err
		}
		updates["payment_proof"] = stored
	}
	after, err := applyRegistrationUpdates(id, updates)
	if err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

func applyRegistrationUpdates(id uint, updates map[string]any) (*models.Registration, error) {
	var registration models.Registration
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Registration{}).
			Scopes(scopes.WithID(id)).
			Updates(updates).
			Error; err != nil {
			return err
		}
		return tx.Scopes(scopes.WithID(id)).First(&registration).Error
	})
	if err != nil {
		return nil, err
	}
	return registration.Decorate(), nil
}

// StorePaymentProof validates a data URL proof and uploads it to the assets
// bucket, returning the object key. Without a bucket the data URL itself is
// stored.
func StorePaymentProof(ctx context.Context, registration *models.Registration, proof string) (string, error) {
	parsed, err := ParsePaymentProof(proof)
	if err != nil {
		return "", err
	}
	if config.AssetsBucket() == "" {
		return proof, nil
	}
	key := fmt.Sprintf("%s%s-%s-%s%s",
		PAYMENT_PROOF_PREFIX,
		slug.Make(models.BookingCode(registration.ID)),
		slug.Make(registration.Name),
		strings.Split(uuid.NewString(), "-")[0],
		ExtensionFor(parsed.ContentType),
	)
	stored, err := awslib.S3UploadAsset(ctx, key, parsed.Data, parsed.ContentType)
	if err != nil {
		log.Printf("[S3] Error uploading payment proof for registration [%d]: %s\n", registration.ID, err.Error())
		return "", err
	}
	return stored, nil
}

func DeleteRegistration(id uint) (int64, error) {
	db := db.GetDb()
	result := db.Delete(&models.Registration{}, id)
	return result.RowsAffected, result.Error
}

func CheckNik(nik string) (bool, error) {
	var count int64
	db := db.GetDb()
	if err := db.
		Model(&models.Registration{}).
		Scopes(scopes.WithNIK(nik)).
		Count(&count).
		Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LoginPatient returns the patient's registrations, newest first. A NIK with
// no history is still accepted once it is at least 10 characters long.
func LoginPatient(nik string) ([]models.Registration, error) {
	nik = strings.TrimSpace(nik)
	registrations, err := ListRegistrations(scopes.WithNIK(nik))
	if err != nil {
		return nil, err
	}
	if len(registrations) == 0 && len(nik) < 10 {
		return nil, ErrNIKNotFound
	}
	return registrations, nil
}

func GetPatientRegistration(nik string, id uint) (*models.Registration, error) {
	var registration models.Registration
	db := db.GetDb()
	if err := db.
		Scopes(scopes.WithID(id), scopes.WithNIK(nik)).
		First(&registration).
		Error; err != nil {
		return nil, err
	}
	return registration.Decorate(), nil
}

func ListPaymentBanks(method string) ([]models.BankAccount, error) {
	banks := []models.BankAccount{}
	db := db.GetDb()
	if err := db.
		Scopes(scopes.ActiveBanks, scopes.WithBankType(method)).
		Order("id asc").
		Find(&banks).
		Error; err != nil {
		return nil, err
	}
	return banks, nil
}

// SubmitPayment records the patient's chosen payment channel. Transfer and
// VA must name an active account of the same type. A proof marks the
// registration Paid.
func SubmitPayment(ctx context.Context, nik string, id uint, params *types.SubmitPaymentRequestBody) (*models.Registration, *models.Registration, error) {
	before, err := GetPatientRegistration(nik, id)
	if err != nil {
		return nil, nil, err
	}
	detail := string(types.METHOD_CASH)
	if params.Method != types.METHOD_CASH {
		var bank models.BankAccount
		db := db.GetDb()
		if err := db.
			Scopes(scopes.WithID(params.BankID), scopes.ActiveBanks, scopes.WithBankType(string(params.Method))).
			First(&bank).
			Error; err != nil {
			return nil, nil, ErrBankUnavailable
		}
		detail = fmt.Sprintf("%s via %s", params.Method, bank.BankName)
	}
	updates := map[string]any{"payment_detail": detail}
	if params.Proof != "" {
		stored, err := StorePaymentProof(ctx, before, params.Proof)
		if err != nil {
			return nil, nil, err
		}
		updates["payment_proof"] = stored
		updates["payment_status"] = string(types.PAYMENT_PAID)
	}
	after, err := applyRegistrationUpdates(id, updates)
	if err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

// ExpireStaleRegistrations cancels Pending registrations whose visit date is
// older than now minus grace.
func ExpireStaleRegistrations(now time.Time, grace time.Duration) (int64, error) {
	cutoff := now.Add(-grace).Format(config.DATE_FORMAT)
	var affected int64
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.Registration{}).
			Scopes(scopes.WithPendingStatus, scopes.VisitBefore(cutoff)).
			Update("status", types.REGISTRATION_CANCELLED)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
