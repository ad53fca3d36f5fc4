package services

import (
	"testing"

	"resto-app/controllers/idgen"
	"resto-app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	idgen.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.BahanBaku{},
		&models.MengelolaBahan{},
		&models.Meja{},
		&models.Reservasi{},
		&models.Pesanan{},
		&models.ItemPesanan{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, nama, role string) models.User {
	t.Helper()

	user := models.User{
		Email:        nama + "@resto.local",
		PasswordHash: "x",
		Nama:         nama,
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestMeja(t *testing.T, db *gorm.DB, noMeja, kapasitas int) models.Meja {
	t.Helper()

	meja := models.Meja{NoMeja: noMeja, Kapasitas: kapasitas, Status: models.MejaAvailable}
	require.NoError(t, db.Create(&meja).Error)
	return meja
}
