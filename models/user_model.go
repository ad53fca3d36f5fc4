package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role user sesuai pembagian kerja restoran
const (
	RoleManager  = "manager"
	RoleKoki     = "koki"
	RoleKaryawan = "karyawan"
	RolePelayan  = "pelayan"
)

type User struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	Email             string    `json:"email" gorm:"unique"`
	PasswordHash      string    `json:"-"`
	MustResetPassword bool      `json:"must_reset_password" gorm:"default:false"`
	Nama              string    `json:"nama"`
	Umur              *int      `json:"umur"`
	NoTelp            *string   `json:"no_telp"`
	Role              string    `json:"role"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return
}

func IsValidRole(role string) bool {
	switch role {
	case RoleManager, RoleKoki, RoleKaryawan, RolePelayan:
		return true
	}
	return false
}
