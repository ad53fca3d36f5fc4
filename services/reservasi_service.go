package services

import (
	"errors"
	"time"

	"resto-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservasiInput struct {
	AtasNama    string
	BanyakOrang int
	NoTelp      string
	NoMeja      *int
	Tanggal     *time.Time
}

// CreateReservasi membuat reservasi baru. Tanpa nomor meja statusnya waiting;
// dengan nomor meja langsung ontable dan meja ditandai Full. Penulisan
// reservasi dan meja terjadi dalam satu transaksi.
func CreateReservasi(db *gorm.DB, idUser string, in ReservasiInput) (*models.Reservasi, error) {
	reservasi := models.Reservasi{
		IDUser:      idUser,
		NoMeja:      in.NoMeja,
		Tanggal:     in.Tanggal,
		AtasNama:    in.AtasNama,
		BanyakOrang: in.BanyakOrang,
		NoTelp:      in.NoTelp,
		Status:      models.ReservasiWaiting,
	}

	if in.NoMeja == nil {
		if err := db.Create(&reservasi).Error; err != nil {
			return nil, err
		}
		return &reservasi, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		meja, err := lockMeja(tx, *in.NoMeja)
		if err != nil {
			return err
		}

		if in.BanyakOrang > meja.Kapasitas {
			return ErrKapasitasMeja
		}

		reservasi.Status = models.ReservasiOntable
		if err := tx.Create(&reservasi).Error; err != nil {
			return err
		}

		return tx.Model(&models.Meja{}).
			Where("no_meja = ?", meja.NoMeja).
			Update("status", models.MejaFull).Error
	})
	if err != nil {
		return nil, err
	}

	return &reservasi, nil
}

// UpdateReservasi menempatkan reservasi ke meja. Nomor meja wajib diisi.
func UpdateReservasi(db *gorm.DB, id uint, idUser string, in ReservasiInput) (*models.Reservasi, error) {
	if in.NoMeja == nil {
		return nil, ErrNoMejaKosong
	}

	var reservasi models.Reservasi

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservasi, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservasiNotFound
			}
			return err
		}

		meja, err := lockMeja(tx, *in.NoMeja)
		if err != nil {
			return err
		}

		if in.BanyakOrang > meja.Kapasitas {
			return ErrKapasitasMeja
		}

		reservasi.IDUser = idUser
		reservasi.NoMeja = in.NoMeja
		reservasi.Tanggal = in.Tanggal
		reservasi.AtasNama = in.AtasNama
		reservasi.BanyakOrang = in.BanyakOrang
		reservasi.NoTelp = in.NoTelp
		reservasi.Status = models.ReservasiOntable

		if err := tx.Save(&reservasi).Error; err != nil {
			return err
		}

		return tx.Model(&models.Meja{}).
			Where("no_meja = ?", meja.NoMeja).
			Update("status", models.MejaFull).Error
	})
	if err != nil {
		return nil, err
	}

	return &reservasi, nil
}

// ReleaseTable membebaskan meja: semua reservasi ontable di meja itu jadi done
// dan meja kembali Available. Idempotent kalau tidak ada reservasi ontable.
func ReleaseTable(db *gorm.DB, noMeja int) (*models.Meja, []models.Reservasi, error) {
	var meja models.Meja
	var selesai []models.Reservasi

	err := db.Transaction(func(tx *gorm.DB) error {
		locked, err := lockMeja(tx, noMeja)
		if err != nil {
			return err
		}
		meja = *locked

		if err := tx.Where("no_meja = ? AND status = ?", noMeja, models.ReservasiOntable).
			Find(&selesai).Error; err != nil {
			return err
		}

		if len(selesai) > 0 {
			ids := make([]uint, 0, len(selesai))
			for i := range selesai {
				ids = append(ids, selesai[i].ID)
				selesai[i].Status = models.ReservasiDone
			}

			if err := tx.Model(&models.Reservasi{}).
				Where("id IN ?", ids).
				Update("status", models.ReservasiDone).Error; err != nil {
				return err
			}
		}

		meja.Status = models.MejaAvailable
		return tx.Model(&models.Meja{}).
			Where("no_meja = ?", noMeja).
			Update("status", models.MejaAvailable).Error
	})
	if err != nil {
		return nil, nil, err
	}

	if selesai == nil {
		selesai = []models.Reservasi{}
	}
	return &meja, selesai, nil
}

// CancelReservasi membatalkan reservasi dari status apa pun.
func CancelReservasi(db *gorm.DB, id uint) (*models.Reservasi, error) {
	var reservasi models.Reservasi
	if err := db.First(&reservasi, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservasiNotFound
		}
		return nil, err
	}

	reservasi.Status = models.ReservasiCancel
	if err := db.Model(&models.Reservasi{}).
		Where("id = ?", id).
		Update("status", models.ReservasiCancel).Error; err != nil {
		return nil, err
	}

	return &reservasi, nil
}

func lockMeja(tx *gorm.DB, noMeja int) (*models.Meja, error) {
	query := tx
	// sqlite tidak mendukung SELECT ... FOR UPDATE
	if tx.Dialector.Name() != "sqlite" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var meja models.Meja
	err := query.
		Where("no_meja = ?", noMeja).
		First(&meja).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMejaNotFound
		}
		return nil, err
	}
	return &meja, nil
}
