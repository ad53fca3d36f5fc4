package models

import (
	"time"

	"resto-app/controllers/idgen"
	"resto-app/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Menu struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	Nama      string            `json:"nama"`
	Harga     decimal.Decimal   `json:"harga" gorm:"type:decimal(12,2)"`
	Kategori  string            `json:"kategori"`
	Tersedia  bool              `json:"tersedia" gorm:"default:true"`
	Foto      string            `json:"foto"`
	FotoKey   string            `json:"foto_key"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == 0 {
		m.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
