package database

import (
	"log"

	"resto-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedManager(db)
	SeedMeja(db)
}

func SeedManager(db *gorm.DB) {
	var existing models.User
	if err := db.Where("role = ?", models.RoleManager).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
			if hashErr != nil {
				log.Fatalf("Failed to hash seed password: %v", hashErr)
			}

			manager := models.User{
				Email:             "manager@resto.local",
				PasswordHash:      string(hash),
				MustResetPassword: true,
				Nama:              "Manager",
				Role:              models.RoleManager,
			}

			if err := db.Create(&manager).Error; err != nil {
				log.Fatalf("Failed to seed manager: %v", err)
			}
		}
	}
}

func SeedMeja(db *gorm.DB) {
	meja := []models.Meja{
		{NoMeja: 1, Kapasitas: 2, Status: models.MejaAvailable},
		{NoMeja: 2, Kapasitas: 2, Status: models.MejaAvailable},
		{NoMeja: 3, Kapasitas: 4, Status: models.MejaAvailable},
		{NoMeja: 4, Kapasitas: 4, Status: models.MejaAvailable},
		{NoMeja: 5, Kapasitas: 6, Status: models.MejaAvailable},
		{NoMeja: 6, Kapasitas: 8, Status: models.MejaAvailable},
	}

	for _, m := range meja {
		var existing models.Meja
		if err := db.Where("no_meja = ?", m.NoMeja).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&m)
			}
		}
	}
}
