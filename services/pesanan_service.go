package services

import (
	"errors"
	"time"

	"resto-app/models"
	"resto-app/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemPesananInput struct {
	IDMenu types.SnowflakeID `json:"id_menu"`
	Jumlah int               `json:"jumlah"`
}

type PesananInput struct {
	NoMeja      *int
	IDReservasi *uint
	Status      string
	TotalHarga  decimal.Decimal
	Items       []ItemPesananInput
}

// CreatePesanan membuat pesanan beserta semua item-nya dalam satu transaksi.
// Kalau salah satu item gagal (misal menu tidak ada), tidak ada baris yang
// tersimpan sama sekali.
func CreatePesanan(db *gorm.DB, idUser string, in PesananInput) (*models.Pesanan, error) {
	status := in.Status
	if status == "" {
		status = models.PesananOngoing
	}
	if !models.IsValidPesananStatus(status) {
		return nil, ErrStatusPesanan
	}

	pesanan := models.Pesanan{
		IDUser:      idUser,
		NoMeja:      in.NoMeja,
		IDReservasi: in.IDReservasi,
		TotalHarga:  in.TotalHarga,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdateAt:    time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pesanan).Error; err != nil {
			return err
		}

		for _, item := range in.Items {
			var menu models.Menu
			if err := tx.First(&menu, "id = ?", item.IDMenu).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrMenuNotFound
				}
				return err
			}

			itemPesanan := models.ItemPesanan{
				IDPesanan: pesanan.ID,
				IDMenu:    item.IDMenu,
				Jumlah:    item.Jumlah,
			}
			if err := tx.Create(&itemPesanan).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &pesanan, nil
}

// UpdateStatusPesanan mengganti status pesanan dengan enum tertutup.
// Transisi yang diizinkan: ongoing -> selesai, atau tulis ulang status yang sama.
func UpdateStatusPesanan(db *gorm.DB, id types.SnowflakeID, status string) (*models.Pesanan, error) {
	if !models.IsValidPesananStatus(status) {
		return nil, ErrStatusPesanan
	}

	var pesanan models.Pesanan
	if err := db.First(&pesanan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPesananNotFound
		}
		return nil, err
	}

	if pesanan.Status == models.PesananSelesai && status == models.PesananOngoing {
		return nil, ErrStatusPesanan
	}

	pesanan.Status = status
	pesanan.UpdateAt = time.Now()

	if err := db.Model(&models.Pesanan{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    pesanan.Status,
			"update_at": pesanan.UpdateAt,
		}).Error; err != nil {
		return nil, err
	}

	return &pesanan, nil
}

type ProfitReport struct {
	Profit                         float64 `json:"profit"`
	BanyakPelanggan                int     `json:"banyakPelanggan"`
	RataRataPesananSelesaiDalamJam float64 `json:"rataRataPesananSelesaiDalamJam"`
}

// HitungProfit merekap pesanan selesai dalam rentang tanggal: total pendapatan,
// jumlah pelanggan dari reservasi terkait, dan rata-rata lama pesanan dalam jam.
func HitungProfit(db *gorm.DB, start, end time.Time) (*ProfitReport, error) {
	var pesanan []models.Pesanan
	if err := db.Preload("Reservasi").
		Where("status = ? AND created_at >= ? AND created_at <= ?", models.PesananSelesai, start, end).
		Find(&pesanan).Error; err != nil {
		return nil, err
	}

	profit := decimal.Zero
	banyakPelanggan := 0
	totalMenit := 0.0

	for _, item := range pesanan {
		profit = profit.Add(item.TotalHarga)

		if item.Reservasi != nil {
			banyakPelanggan += item.Reservasi.BanyakOrang
		}

		if !item.UpdateAt.IsZero() {
			totalMenit += item.UpdateAt.Sub(item.CreatedAt).Minutes()
		}
	}

	report := ProfitReport{
		Profit:          profit.InexactFloat64(),
		BanyakPelanggan: banyakPelanggan,
	}

	if len(pesanan) > 0 {
		report.RataRataPesananSelesaiDalamJam = totalMenit / float64(len(pesanan)) / 60
	}

	return &report, nil
}
