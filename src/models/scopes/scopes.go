package scopes

import (
	"rsud/src/types"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithNIK(nik string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("nik = ?", nik)
	}
}

func WithPendingStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", types.REGISTRATION_PENDING)
}

func Latest(db *gorm.DB) *gorm.DB {
	return db.Order("created_at desc").Order("id desc")
}

func ActiveBanks(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

func WithBankType(t string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if t == "" {
			return db
		}
		return db.Where("type = ?", t)
	}
}

// VisitBefore matches registrations whose YYYY-MM-DD visit date sorts before
// the given date.
func VisitBefore(date string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date < ?", date)
	}
}
