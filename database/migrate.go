package database

import (
	"resto-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Menu{},
		&models.BahanBaku{},
		&models.MengelolaBahan{},
		&models.Meja{},
		&models.Reservasi{},
		&models.Pesanan{},
		&models.ItemPesanan{},
	)
}
