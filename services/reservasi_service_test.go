package services

import (
	"testing"

	"resto-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservasiTanpaMeja(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)

	reservasi, err := CreateReservasi(db, user.ID, ReservasiInput{
		AtasNama:    "Budi",
		BanyakOrang: 2,
		NoTelp:      "0812",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservasiWaiting, reservasi.Status)
	assert.Nil(t, reservasi.NoMeja)
}

func TestCreateReservasiMejaTidakAda(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)

	noMeja := 99
	_, err := CreateReservasi(db, user.ID, ReservasiInput{
		AtasNama:    "Budi",
		BanyakOrang: 2,
		NoMeja:      &noMeja,
	})
	assert.ErrorIs(t, err, ErrMejaNotFound)

	var count int64
	db.Model(&models.Reservasi{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateReservasiMelebihiKapasitas(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)
	createTestMeja(t, db, 5, 2)

	noMeja := 5
	_, err := CreateReservasi(db, user.ID, ReservasiInput{
		AtasNama:    "Budi",
		BanyakOrang: 4,
		NoMeja:      &noMeja,
	})
	assert.ErrorIs(t, err, ErrKapasitasMeja)

	// Tidak ada mutasi: reservasi tidak dibuat, meja tetap Available
	var count int64
	db.Model(&models.Reservasi{}).Count(&count)
	assert.Zero(t, count)

	var meja models.Meja
	require.NoError(t, db.First(&meja, "no_meja = ?", 5).Error)
	assert.Equal(t, models.MejaAvailable, meja.Status)
}

func TestCreateReservasiDenganMeja(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)
	createTestMeja(t, db, 5, 4)

	noMeja := 5
	reservasi, err := CreateReservasi(db, user.ID, ReservasiInput{
		AtasNama:    "Budi",
		BanyakOrang: 4,
		NoMeja:      &noMeja,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservasiOntable, reservasi.Status)

	var meja models.Meja
	require.NoError(t, db.First(&meja, "no_meja = ?", 5).Error)
	assert.Equal(t, models.MejaFull, meja.Status)
}

func TestUpdateReservasiTanpaMeja(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)

	reservasi, err := CreateReservasi(db, user.ID, ReservasiInput{
		AtasNama:    "Budi",
		BanyakOrang: 2,
	})
	require.NoError(t, err)

	_, err = UpdateReservasi(db, reservasi.ID, user.ID, ReservasiInput{
		AtasNama:    "Budi",
		BanyakOrang: 2,
	})
	assert.ErrorIs(t, err, ErrNoMejaKosong)
}

func TestUpdateReservasiKeMeja(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)
	createTestMeja(t, db, 3, 4)

	reservasi, err := CreateReservasi(db, user.ID, ReservasiInput{
		AtasNama:    "Siti",
		BanyakOrang: 3,
	})
	require.NoError(t, err)
	require.Equal(t, models.ReservasiWaiting, reservasi.Status)

	noMeja := 3
	updated, err := UpdateReservasi(db, reservasi.ID, user.ID, ReservasiInput{
		AtasNama:    "Siti",
		BanyakOrang: 3,
		NoMeja:      &noMeja,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservasiOntable, updated.Status)

	var meja models.Meja
	require.NoError(t, db.First(&meja, "no_meja = ?", 3).Error)
	assert.Equal(t, models.MejaFull, meja.Status)
}

func TestReleaseTable(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)
	createTestMeja(t, db, 7, 8)

	noMeja := 7
	for i := 0; i < 2; i++ {
		_, err := CreateReservasi(db, user.ID, ReservasiInput{
			AtasNama:    "Group",
			BanyakOrang: 4,
			NoMeja:      &noMeja,
		})
		require.NoError(t, err)
	}

	meja, selesai, err := ReleaseTable(db, 7)
	require.NoError(t, err)
	assert.Equal(t, models.MejaAvailable, meja.Status)
	assert.Len(t, selesai, 2)
	for _, item := range selesai {
		assert.Equal(t, models.ReservasiDone, item.Status)
	}

	var count int64
	db.Model(&models.Reservasi{}).Where("status = ?", models.ReservasiDone).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestReleaseTableIdempotent(t *testing.T) {
	db := newTestDB(t)
	createTestMeja(t, db, 7, 8)

	meja, selesai, err := ReleaseTable(db, 7)
	require.NoError(t, err)
	assert.Equal(t, models.MejaAvailable, meja.Status)
	assert.Empty(t, selesai)
}

func TestReleaseTableNotFound(t *testing.T) {
	db := newTestDB(t)

	_, _, err := ReleaseTable(db, 42)
	assert.ErrorIs(t, err, ErrMejaNotFound)
}

func TestCancelReservasi(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "pelayan", models.RolePelayan)

	reservasi, err := CreateReservasi(db, user.ID, ReservasiInput{
		AtasNama:    "Budi",
		BanyakOrang: 2,
	})
	require.NoError(t, err)

	cancelled, err := CancelReservasi(db, reservasi.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservasiCancel, cancelled.Status)

	// Cancel boleh dari status apa pun, termasuk yang sudah terminal
	again, err := CancelReservasi(db, reservasi.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservasiCancel, again.Status)
}

func TestCancelReservasiNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := CancelReservasi(db, 123)
	assert.ErrorIs(t, err, ErrReservasiNotFound)
}
