package services

import "errors"

var (
	ErrNoMejaKosong    = errors.New("nomor meja belum diisi")
	ErrMejaNotFound    = errors.New("meja tidak ditemukan")
	ErrKapasitasMeja   = errors.New("jumlah orang melebihi kapasitas meja")
	ErrReservasiNotFound = errors.New("reservasi tidak ditemukan")
	ErrMenuNotFound    = errors.New("menu tidak ditemukan")
	ErrBahanNotFound   = errors.New("bahan baku tidak ditemukan")
	ErrPesananNotFound = errors.New("pesanan tidak ditemukan")
	ErrStatusPesanan   = errors.New("status pesanan tidak valid")
)
