package utils

import (
	"testing"

	"resto-app/models"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessPath(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		pathname string
		want     bool
	}{
		{"manager admin", models.RoleManager, "/admin", true},
		{"manager admin karyawan", models.RoleManager, "/admin/karyawan", true},
		{"manager tidak bisa reservasi", models.RoleManager, "/reservasi", false},
		{"pelayan reservasi", models.RolePelayan, "/reservasi", true},
		{"pelayan pesanan add", models.RolePelayan, "/pesanan/add", true},
		{"pelayan pesanan", models.RolePelayan, "/pesanan", true},
		{"pelayan tidak bisa admin", models.RolePelayan, "/admin", false},
		{"koki pesanan ongoing", models.RoleKoki, "/pesanan/ongoing", true},
		{"koki menu", models.RoleKoki, "/menu", true},
		{"koki tidak bisa pesanan add", models.RoleKoki, "/pesanan/add", false},
		{"karyawan bahan baku", models.RoleKaryawan, "/bahan_baku", true},
		{"karyawan riwayat", models.RoleKaryawan, "/bahan_baku/riwayat", true},
		{"karyawan tidak bisa menu", models.RoleKaryawan, "/menu", false},
		{"account selalu boleh", models.RoleKoki, "/account", true},
		{"account subpath", models.RoleKaryawan, "/account/password", true},
		{"role kosong ditolak", "", "/account", false},
		{"role tidak dikenal", "hacker", "/menu", false},
		{"prefix harus segment utuh", models.RoleKoki, "/menuitem", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessPath(tt.role, tt.pathname))
		})
	}
}

func TestRedirectForRole(t *testing.T) {
	assert.Equal(t, "/admin", RedirectForRole(models.RoleManager))
	assert.Equal(t, "/reservasi", RedirectForRole(models.RolePelayan))
	assert.Equal(t, "/pesanan/ongoing", RedirectForRole(models.RoleKoki))
	assert.Equal(t, "/bahan_baku", RedirectForRole(models.RoleKaryawan))
	assert.Equal(t, "/error", RedirectForRole("unknown"))
}
