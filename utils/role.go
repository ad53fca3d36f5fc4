package utils

import (
	"strings"

	"resto-app/models"
)

// RoleAccess memetakan role ke prefix halaman client yang boleh diakses.
var RoleAccess = map[string][]string{
	models.RoleManager:  {"/admin", "/admin/karyawan"},
	models.RoleKoki:     {"/menu", "/pesanan/ongoing"},
	models.RoleKaryawan: {"/bahan_baku", "/bahan_baku/riwayat"},
	models.RolePelayan:  {"/reservasi", "/pesanan/add", "/pesanan"},
}

// CanAccessPath mengecek apakah role boleh membuka path. Halaman akun pribadi
// selalu boleh; role kosong atau tidak dikenal selalu ditolak.
func CanAccessPath(role, pathname string) bool {
	if role == "" {
		return false
	}

	if pathname == "/account" || strings.HasPrefix(pathname, "/account/") {
		return true
	}

	allowed, ok := RoleAccess[role]
	if !ok {
		return false
	}

	for _, route := range allowed {
		if pathname == route || strings.HasPrefix(pathname, route+"/") {
			return true
		}
	}
	return false
}

// RedirectForRole mengembalikan halaman awal untuk tiap role setelah login.
func RedirectForRole(role string) string {
	switch role {
	case models.RoleManager:
		return "/admin"
	case models.RolePelayan:
		return "/reservasi"
	case models.RoleKoki:
		return "/pesanan/ongoing"
	case models.RoleKaryawan:
		return "/bahan_baku"
	default:
		return "/error"
	}
}
