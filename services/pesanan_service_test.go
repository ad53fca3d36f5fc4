package services

import (
	"testing"
	"time"

	"resto-app/models"
	"resto-app/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestMenu(t *testing.T, db *gorm.DB, nama string, harga int64) models.Menu {
	t.Helper()

	menu := models.Menu{
		Nama:     nama,
		Harga:    decimal.NewFromInt(harga),
		Kategori: "makanan",
		Tersedia: true,
	}
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

func TestCreatePesanan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)
	nasi := createTestMenu(t, db, "Nasi Goreng", 25000)
	teh := createTestMenu(t, db, "Es Teh", 5000)

	pesanan, err := CreatePesanan(db, user.ID, PesananInput{
		TotalHarga: decimal.NewFromInt(55000),
		Items: []ItemPesananInput{
			{IDMenu: nasi.ID, Jumlah: 2},
			{IDMenu: teh.ID, Jumlah: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PesananOngoing, pesanan.Status)
	assert.NotZero(t, pesanan.ID)

	var items []models.ItemPesanan
	require.NoError(t, db.Where("id_pesanan = ?", pesanan.ID).Find(&items).Error)
	assert.Len(t, items, 2)
}

func TestCreatePesananMenuTidakAda(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)
	nasi := createTestMenu(t, db, "Nasi Goreng", 25000)

	_, err := CreatePesanan(db, user.ID, PesananInput{
		TotalHarga: decimal.NewFromInt(25000),
		Items: []ItemPesananInput{
			{IDMenu: nasi.ID, Jumlah: 1},
			{IDMenu: types.SnowflakeID(999999), Jumlah: 1},
		},
	})
	assert.ErrorIs(t, err, ErrMenuNotFound)

	// Transaksi di-rollback: tidak ada pesanan maupun item yang tersisa
	var pesananCount, itemCount int64
	db.Model(&models.Pesanan{}).Count(&pesananCount)
	db.Model(&models.ItemPesanan{}).Count(&itemCount)
	assert.Zero(t, pesananCount)
	assert.Zero(t, itemCount)
}

func TestCreatePesananStatusInvalid(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)

	_, err := CreatePesanan(db, user.ID, PesananInput{Status: "batal"})
	assert.ErrorIs(t, err, ErrStatusPesanan)
}

func TestUpdateStatusPesanan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)

	pesanan, err := CreatePesanan(db, user.ID, PesananInput{
		TotalHarga: decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	updated, err := UpdateStatusPesanan(db, pesanan.ID, models.PesananSelesai)
	require.NoError(t, err)
	assert.Equal(t, models.PesananSelesai, updated.Status)

	// selesai tidak boleh kembali ke ongoing
	_, err = UpdateStatusPesanan(db, pesanan.ID, models.PesananOngoing)
	assert.ErrorIs(t, err, ErrStatusPesanan)

	// tulis ulang status yang sama tetap boleh
	_, err = UpdateStatusPesanan(db, pesanan.ID, models.PesananSelesai)
	assert.NoError(t, err)
}

func TestUpdateStatusPesananInvalid(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateStatusPesanan(db, types.SnowflakeID(1), "dibuang")
	assert.ErrorIs(t, err, ErrStatusPesanan)

	_, err = UpdateStatusPesanan(db, types.SnowflakeID(1), models.PesananSelesai)
	assert.ErrorIs(t, err, ErrPesananNotFound)
}

func TestHitungProfitKosong(t *testing.T) {
	db := newTestDB(t)

	report, err := HitungProfit(db, time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)
	assert.Zero(t, report.Profit)
	assert.Zero(t, report.BanyakPelanggan)
	assert.Zero(t, report.RataRataPesananSelesaiDalamJam)
}

func TestHitungProfit(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)

	reservasi := models.Reservasi{
		IDUser:      user.ID,
		AtasNama:    "Budi",
		BanyakOrang: 4,
		Status:      models.ReservasiDone,
	}
	require.NoError(t, db.Create(&reservasi).Error)

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	pesanan := []models.Pesanan{
		{
			IDUser:      user.ID,
			IDReservasi: &reservasi.ID,
			TotalHarga:  decimal.NewFromInt(100000),
			Status:      models.PesananSelesai,
			CreatedAt:   base,
			UpdateAt:    base.Add(1 * time.Hour),
		},
		{
			IDUser:     user.ID,
			TotalHarga: decimal.NewFromInt(50000),
			Status:     models.PesananSelesai,
			CreatedAt:  base.Add(2 * time.Hour),
			UpdateAt:   base.Add(5 * time.Hour),
		},
		{
			// masih ongoing, tidak ikut dihitung
			IDUser:     user.ID,
			TotalHarga: decimal.NewFromInt(999999),
			Status:     models.PesananOngoing,
			CreatedAt:  base,
			UpdateAt:   base,
		},
	}
	for i := range pesanan {
		require.NoError(t, db.Create(&pesanan[i]).Error)
	}

	report, err := HitungProfit(db, base.Add(-time.Hour), base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 150000, report.Profit, 0.001)
	assert.Equal(t, 4, report.BanyakPelanggan)
	assert.InDelta(t, 2, report.RataRataPesananSelesaiDalamJam, 0.001)
}
