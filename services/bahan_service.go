package services

import (
	"errors"

	"resto-app/models"

	"gorm.io/gorm"
)

// CreateBahan menyimpan bahan baku baru dan mencatatnya ke riwayat dalam satu
// transaksi.
func CreateBahan(db *gorm.DB, idUser, nama string, jumlah int, satuan string) (*models.BahanBaku, error) {
	bahan := models.BahanBaku{
		Nama:   nama,
		Jumlah: jumlah,
		Satuan: satuan,
		Status: true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bahan).Error; err != nil {
			return err
		}

		return tx.Create(&models.MengelolaBahan{
			IDUser:  idUser,
			IDStock: bahan.ID,
			Jumlah:  jumlah,
			Proses:  models.ProsesCreate,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &bahan, nil
}

// UpdateBahan menulis jumlah absolut yang baru dan mencatat riwayat Edit.
func UpdateBahan(db *gorm.DB, idUser string, id uint, nama string, jumlah int, satuan string) (*models.BahanBaku, error) {
	var bahan models.BahanBaku

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&bahan, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBahanNotFound
			}
			return err
		}

		bahan.Nama = nama
		bahan.Jumlah = jumlah
		bahan.Satuan = satuan

		if err := tx.Save(&bahan).Error; err != nil {
			return err
		}

		return tx.Create(&models.MengelolaBahan{
			IDUser:  idUser,
			IDStock: bahan.ID,
			Jumlah:  bahan.Jumlah,
			Proses:  models.ProsesEdit,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &bahan, nil
}

// DeleteBahan soft delete: flag status jadi false, barisnya tetap ada, dan
// riwayat Delete dicatat dengan jumlah stok saat penghapusan.
func DeleteBahan(db *gorm.DB, idUser string, id uint) (*models.BahanBaku, error) {
	var bahan models.BahanBaku

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&bahan, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBahanNotFound
			}
			return err
		}

		bahan.Status = false
		if err := tx.Model(&models.BahanBaku{}).
			Where("id = ?", id).
			Update("status", false).Error; err != nil {
			return err
		}

		return tx.Create(&models.MengelolaBahan{
			IDUser:  idUser,
			IDStock: bahan.ID,
			Jumlah:  bahan.Jumlah,
			Proses:  models.ProsesDelete,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &bahan, nil
}
