package models

import (
	"fmt"
	"rsud/src/types"
	"strings"
)

type Registration struct {
	ID            uint                     `gorm:"primarykey" json:"id"`
	NIK           string                   `gorm:"column:nik;index" json:"nik"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone"`
	Poli          string                   `gorm:"index" json:"poli"`
	Date          string                   `json:"date"`
	Payment       string                   `json:"payment"`
	PaymentDetail string                   `gorm:"default:Tunai" json:"payment_detail"`
	PaymentStatus types.PaymentStatus      `gorm:"default:Unpaid" json:"payment_status"`
	Cost          int64                    `gorm:"not null;default:0" json:"cost"`
	Status        types.RegistrationStatus `gorm:"default:Pending;index" json:"status"`
	PaymentProof  string                   `json:"payment_proof,omitempty"`
	ClassType     string                   `json:"class_type,omitempty"`
	FacilityNotes string                   `json:"facility_notes,omitempty"`

	BookingCode string `gorm:"-" json:"bookingCode,omitempty"`
	Facility    string `gorm:"-" json:"facility,omitempty"`

	types.Timestamps
}

func BookingCode(id uint) string {
	return fmt.Sprintf("REG-%04d", id)
}

// FacilityLabel maps a room class to the label shown to patients.
func FacilityLabel(classType string) string {
	lower := strings.ToLower(strings.TrimSpace(classType))
	switch {
	case lower == "":
		return "Umum"
	case strings.Contains(lower, "vip"):
		return "VIP"
	case strings.Contains(lower, "kelas 1"):
		return "1"
	case strings.Contains(lower, "kelas 2"):
		return "2"
	case strings.Contains(lower, "kelas 3"):
		return "3"
	}
	return "Umum"
}

func (r *Registration) Decorate() *Registration {
	r.BookingCode = BookingCode(r.ID)
	r.Facility = FacilityLabel(r.ClassType)
	return r
}
