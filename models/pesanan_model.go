package models

import (
	"time"

	"resto-app/controllers/idgen"
	"resto-app/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PesananOngoing = "ongoing"
	PesananSelesai = "selesai"
)

type Pesanan struct {
	ID          types.SnowflakeID `json:"id" gorm:"primaryKey"`
	IDUser      string            `json:"id_user" gorm:"size:36"`
	NoMeja      *int              `json:"no_meja"`
	IDReservasi *uint             `json:"id_reservasi"`
	TotalHarga  decimal.Decimal   `json:"total_harga" gorm:"type:decimal(12,2)"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdateAt    time.Time         `json:"updateAt"`

	Reservasi *Reservasi `json:"-" gorm:"foreignKey:IDReservasi"`
}

func (Pesanan) TableName() string {
	return "pesanan"
}

func (p *Pesanan) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == 0 {
		p.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

type ItemPesanan struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	IDPesanan types.SnowflakeID `json:"id_pesanan"`
	IDMenu    types.SnowflakeID `json:"id_menu"`
	Jumlah    int               `json:"jumlah"`
}

func (ItemPesanan) TableName() string {
	return "item_pesanan"
}

func (i *ItemPesanan) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == 0 {
		i.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

// IsValidPesananStatus membatasi status pesanan ke enum tertutup.
func IsValidPesananStatus(status string) bool {
	return status == PesananOngoing || status == PesananSelesai
}
