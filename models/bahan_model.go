package models

import (
	"time"

	"resto-app/controllers/idgen"
	"resto-app/types"

	"gorm.io/gorm"
)

// Proses yang dicatat di riwayat pengelolaan bahan
const (
	ProsesCreate = "Create"
	ProsesEdit   = "Edit"
	ProsesDelete = "Delete"
)

type BahanBaku struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nama      string    `json:"nama"`
	Jumlah    int       `json:"jumlah"`
	Satuan    string    `json:"satuan"`
	Status    bool      `json:"status" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MengelolaBahan adalah riwayat perubahan stok. Append-only: baris tidak pernah
// di-update atau dihapus setelah dibuat.
type MengelolaBahan struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	IDUser    string            `json:"id_user" gorm:"size:36"`
	IDStock   uint              `json:"id_stock"`
	Jumlah    int               `json:"jumlah"`
	Proses    string            `json:"proses"`
	CreatedAt time.Time         `json:"createdAt"`

	User  User      `json:"-" gorm:"foreignKey:IDUser"`
	Stock BahanBaku `json:"-" gorm:"foreignKey:IDStock"`
}

func (m *MengelolaBahan) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == 0 {
		m.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
