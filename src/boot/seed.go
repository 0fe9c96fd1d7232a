package boot

import (
	"log"
	"rsud/src/models"

	"gorm.io/gorm"
)

var seedDoctors = []models.Doctor{
	{Name: "dr. Andi Wijaya, Sp.PD", Specialty: "Penyakit Dalam", Image: "https://picsum.photos/seed/doc1/200/200", Schedule: "Senin - Kamis, 08.00 - 12.00", Available: true},
	{Name: "dr. Sarah Utami, Sp.A", Specialty: "Anak", Image: "https://picsum.photos/seed/doc2/200/200", Schedule: "Senin - Jumat, 09.00 - 14.00", Available: true},
	{Name: "dr. Budi Santoso, Sp.JP", Specialty: "Jantung & Pembuluh Darah", Image: "https://picsum.photos/seed/doc3/200/200", Schedule: "Selasa & Kamis, 13.00 - 16.00", Available: false},
	{Name: "dr. Linda Kusuma, Sp.OG", Specialty: "Kebidanan & Kandungan", Image: "https://picsum.photos/seed/doc4/200/200", Schedule: "Senin, Rabu, Jumat, 08.00 - 11.00", Available: true},
	{Name: "dr. Hendra Gunawan, Sp.B", Specialty: "Bedah Umum", Image: "https://picsum.photos/seed/doc5/200/200", Schedule: "Jumat - Sabtu, 10.00 - 13.00", Available: true},
	{Name: "dr. Maya Putri, Sp.M", Specialty: "Mata", Image: "https://picsum.photos/seed/doc6/200/200", Schedule: "Senin & Kamis, 14.00 - 17.00", Available: true},
}

var seedUsers = []models.User{
	{Name: "Admin Utama", Username: "admin", Role: "Super Admin", Status: "Active"},
	{Name: "Budi Staff", Username: "staff01", Role: "Staff Pendaftaran", Status: "Active"},
	{Name: "Siti Perawat", Username: "perawat01", Role: "Perawat", Status: "Active"},
}

var seedBPJS = []models.BPJS{
	{CardNumber: "0001234567890", Name: "Ahmad Dahlan", ClassType: "Kelas 1", Status: "Aktif", Faskes: "Puskesmas Dolopo"},
	{CardNumber: "0009876543210", Name: "Siti Maimunah", ClassType: "Kelas 3", Status: "Aktif", Faskes: "Klinik Sehat"},
	{CardNumber: "0001122334455", Name: "Joko Susilo", ClassType: "Kelas 2", Status: "Tidak Aktif", Faskes: "Puskesmas Geger"},
}

var seedFacilities = []models.Facility{
	{Name: "Pendaftaran Umum", Category: "Administrasi", Price: 15000},
	{Name: "Konsultasi Dokter Spesialis", Category: "Poli Jalan", Price: 75000},
	{Name: "Cek Darah Lengkap", Category: "Laboratorium", Price: 120000},
	{Name: "Rontgen Thorax", Category: "Radiologi", Price: 150000},
	{Name: "USG Abdomen", Category: "Radiologi", Price: 200000},
}

var seedRooms = []models.Room{
	{Name: "Mawar 01", ClassType: "VIP", TotalBeds: 1, OccupiedBeds: 0, Price: 750000},
	{Name: "Melati 01", ClassType: "Kelas 1", TotalBeds: 2, OccupiedBeds: 1, Price: 400000},
	{Name: "Anggrek 01", ClassType: "Kelas 2", TotalBeds: 4, OccupiedBeds: 3, Price: 250000},
	{Name: "Kenanga 01", ClassType: "Kelas 3", TotalBeds: 6, OccupiedBeds: 5, Price: 100000},
}

var seedBanks = []models.BankAccount{
	{BankName: "BCA", AccountNumber: "8735089123", AccountName: "RSUD Dolopo", Type: "Transfer", IsActive: true},
	{BankName: "BRI", AccountNumber: "0045010023456", AccountName: "RSUD Dolopo BLUD", Type: "Transfer", IsActive: true},
	{BankName: "Mandiri VA", AccountNumber: "88000", AccountName: "RSUD Dolopo", Type: "VA", IsActive: true},
	{BankName: "BNI VA", AccountNumber: "99000", AccountName: "RSUD Dolopo", Type: "VA", IsActive: true},
}

// seedTable inserts rows only when the table has never held any, counting
// soft-deleted rows, so restarts never duplicate or resurrect reference data.
func seedTable[T any](tx *gorm.DB, rows []T) error {
	var count int64
	var model T
	if err := tx.Unscoped().Model(&model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	batch := make([]T, len(rows))
	copy(batch, rows)
	if err := tx.Create(&batch).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d rows into %T\n", len(batch), model)
	return nil
}

func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, seedDoctors); err != nil {
			return err
		}
		if err := seedTable(tx, seedUsers); err != nil {
			return err
		}
		if err := seedTable(tx, seedBPJS); err != nil {
			return err
		}
		if err := seedTable(tx, seedFacilities); err != nil {
			return err
		}
		if err := seedTable(tx, seedRooms); err != nil {
			return err
		}
		return seedTable(tx, seedBanks)
	})
}
