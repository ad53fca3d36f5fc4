package models

import "time"

// Status reservasi: waiting -> ontable -> done, atau cancel
const (
	ReservasiWaiting = "waiting"
	ReservasiOntable = "ontable"
	ReservasiDone    = "done"
	ReservasiCancel  = "cancel"
)

type Reservasi struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	IDUser      string     `json:"id_user" gorm:"size:36"`
	NoMeja      *int       `json:"no_meja"`
	Tanggal     *time.Time `json:"tanggal"`
	AtasNama    string     `json:"atas_nama"`
	BanyakOrang int        `json:"banyak_orang"`
	NoTelp      string     `json:"no_telp"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:IDUser"`
}

func (Reservasi) TableName() string {
	return "reservasi"
}
