package services

import (
	"testing"

	"resto-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBahan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "karyawan", models.RoleKaryawan)

	bahan, err := CreateBahan(db, user.ID, "Beras", 50, "kg")
	require.NoError(t, err)
	assert.True(t, bahan.Status)
	assert.Equal(t, 50, bahan.Jumlah)

	var riwayat []models.MengelolaBahan
	require.NoError(t, db.Where("id_stock = ?", bahan.ID).Find(&riwayat).Error)
	require.Len(t, riwayat, 1)
	assert.Equal(t, models.ProsesCreate, riwayat[0].Proses)
	assert.Equal(t, 50, riwayat[0].Jumlah)
	assert.Equal(t, user.ID, riwayat[0].IDUser)
}

func TestUpdateBahan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "karyawan", models.RoleKaryawan)

	bahan, err := CreateBahan(db, user.ID, "Beras", 50, "kg")
	require.NoError(t, err)

	updated, err := UpdateBahan(db, user.ID, bahan.ID, "Beras Merah", 30, "kg")
	require.NoError(t, err)
	assert.Equal(t, "Beras Merah", updated.Nama)
	assert.Equal(t, 30, updated.Jumlah)

	var riwayat []models.MengelolaBahan
	require.NoError(t, db.Where("id_stock = ? AND proses = ?", bahan.ID, models.ProsesEdit).
		Find(&riwayat).Error)
	require.Len(t, riwayat, 1)
	assert.Equal(t, 30, riwayat[0].Jumlah)
}

func TestUpdateBahanNotFound(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "karyawan", models.RoleKaryawan)

	_, err := UpdateBahan(db, user.ID, 999, "Gula", 10, "kg")
	assert.ErrorIs(t, err, ErrBahanNotFound)
}

func TestDeleteBahan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "karyawan", models.RoleKaryawan)

	bahan, err := CreateBahan(db, user.ID, "Telur", 120, "butir")
	require.NoError(t, err)

	deleted, err := DeleteBahan(db, user.ID, bahan.ID)
	require.NoError(t, err)
	assert.False(t, deleted.Status)

	// Soft delete: baris tetap ada tapi tidak muncul di daftar aktif
	var row models.BahanBaku
	require.NoError(t, db.First(&row, bahan.ID).Error)
	assert.False(t, row.Status)

	var aktif []models.BahanBaku
	require.NoError(t, db.Where("status = ?", true).Find(&aktif).Error)
	assert.Empty(t, aktif)

	// Riwayat Delete mencatat jumlah stok saat dihapus
	var riwayat []models.MengelolaBahan
	require.NoError(t, db.Where("id_stock = ? AND proses = ?", bahan.ID, models.ProsesDelete).
		Find(&riwayat).Error)
	require.Len(t, riwayat, 1)
	assert.Equal(t, 120, riwayat[0].Jumlah)
}

func TestDeleteBahanNotFound(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "karyawan", models.RoleKaryawan)

	_, err := DeleteBahan(db, user.ID, 999)
	assert.ErrorIs(t, err, ErrBahanNotFound)
}
