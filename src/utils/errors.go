package utils

import "errors"

var (
	ErrIncompleteRegistration = errors.New("Semua field wajib diisi")
	ErrInvalidVisitDate       = errors.New("Format tanggal kunjungan harus YYYY-MM-DD")
	ErrNoFieldsToUpdate       = errors.New("No fields to update")
	ErrNIKNotFound            = errors.New("NIK tidak ditemukan")
	ErrInvalidCredentials     = errors.New("Username atau password salah")
	ErrBankUnavailable        = errors.New("Rekening tidak tersedia untuk metode pembayaran ini")
	ErrInvalidDataURL         = errors.New("invalid data URL")
	ErrInvalidNIK             = errors.New("NIK harus 10-16 digit angka")
	ErrInvalidProof           = errors.New("Bukti pembayaran harus berupa gambar (JPG, PNG, WEBP) atau PDF")
	ErrInvalidToken           = errors.New("invalid token")
)
