package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		return nil
	default:
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// Handler consumes a raw queue payload.
type Handler func(payload string)

type RegistrationStatus string

const (
	REGISTRATION_PENDING   RegistrationStatus = "Pending"
	REGISTRATION_CONFIRMED RegistrationStatus = "Confirmed"
	REGISTRATION_CANCELLED RegistrationStatus = "Cancelled"
)

type PaymentStatus string

const (
	PAYMENT_PAID   PaymentStatus = "Paid"
	PAYMENT_UNPAID PaymentStatus = "Unpaid"
)

const (
	PAYMENT_CHANNEL_UMUM = "umum"
	PAYMENT_CHANNEL_BPJS = "bpjs"

	PAYMENT_DETAIL_BPJS = "BPJS Kesehatan"
	PAYMENT_DETAIL_CASH = "Tunai"
)

type PaymentMethod string

const (
	METHOD_CASH     PaymentMethod = "Tunai"
	METHOD_TRANSFER PaymentMethod = "Transfer"
	METHOD_VA       PaymentMethod = "VA"
)

const (
	ROLE_ADMIN   = "admin"
	ROLE_PATIENT = "patient"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type NIKRequestParams struct {
	NIK string `uri:"nik" binding:"required,nik"`
}

type AdminLoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PatientLoginRequestBody struct {
	NIK string `json:"nik" binding:"required"`
}

// CreateRegistrationRequestBody carries no binding tags on the mandatory
// fields so a missing field yields the localized error instead of a
// validator message.
type CreateRegistrationRequestBody struct {
	NIK           string `json:"nik"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Poli          string `json:"poli"`
	Date          string `json:"date"`
	Payment       string `json:"payment"`
	PaymentDetail string `json:"payment_detail"`
}

func (b *CreateRegistrationRequestBody) Complete() bool {
	return b.NIK != "" && b.Name != "" && b.Email != "" && b.Phone != "" && b.Poli != "" && b.Date != ""
}

type UpdateRegistrationRequestBody struct {
	Status        *string `json:"status" binding:"omitempty,oneof=Pending Confirmed Cancelled"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,oneof=Paid Unpaid"`
	Cost          *int64  `json:"cost" binding:"omitempty,min=0"`
	PaymentDetail *string `json:"payment_detail"`
	PaymentProof  *string `json:"payment_proof"`
	ClassType     *string `json:"class_type"`
	FacilityNotes *string `json:"facility_notes"`
}

type SubmitPaymentRequestBody struct {
	Method PaymentMethod `json:"method" binding:"required,oneof=Tunai Transfer VA"`
	BankID uint          `json:"bank_id" binding:"required_unless=Method Tunai"`
	Proof  string        `json:"proof"`
}

type BankQueryParams struct {
	Method string `form:"method" binding:"omitempty,oneof=Transfer VA"`
}

type CreateMessageRequestBody struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateMessageRequestBody struct {
	IsRead  *bool   `json:"is_read"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

type DoctorRequestBody struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Image     string `json:"image"`
	Schedule  string `json:"schedule"`
	Available bool   `json:"available"`
}

type UserRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type BPJSRequestBody struct {
	CardNumber string `json:"card_number" binding:"required,numeric"`
	Name       string `json:"name" binding:"required"`
	ClassType  string `json:"class_type"`
	Status     string `json:"status"`
	Faskes     string `json:"faskes"`
}

type FacilityRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Price    int64  `json:"price" binding:"min=0"`
}

type RoomRequestBody struct {
	Name         string `json:"name" binding:"required"`
	ClassType    string `json:"class_type"`
	TotalBeds    int    `json:"total_beds" binding:"min=0"`
	OccupiedBeds int    `json:"occupied_beds" binding:"min=0,bedcount=TotalBeds"`
	Price        int64  `json:"price" binding:"min=0"`
}

type BankRequestBody struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountName   string `json:"account_name"`
	Type          string `json:"type" binding:"required,oneof=Transfer VA"`
	IsActive      bool   `json:"is_active"`
}

type DashboardStats struct {
	Doctors              int64            `json:"doctors"`
	Registrations        int64            `json:"registrations"`
	Messages             int64            `json:"messages"`
	UnreadMessages       int64            `json:"unread_messages"`
	PendingRegistrations int64            `json:"pending_registrations"`
	Poli                 map[string]int64 `json:"poli"`
}

type RegistrationEvent string

const (
	EVENT_REGISTRATION_CREATED RegistrationEvent = "registration:created"
	EVENT_REGISTRATION_UPDATED RegistrationEvent = "registration:updated"
	EVENT_MESSAGE_CREATED      RegistrationEvent = "message:created"
)
