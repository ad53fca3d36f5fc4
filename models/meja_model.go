package models

const (
	MejaAvailable = "Available"
	MejaFull      = "Full"
)

type Meja struct {
	NoMeja    int    `json:"no_meja" gorm:"primaryKey;autoIncrement:false"`
	Kapasitas int    `json:"kapasitas"`
	Status    string `json:"status" gorm:"default:Available"`
}

func (Meja) TableName() string {
	return "meja"
}
