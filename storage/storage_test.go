package storage

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "nasi-goreng", sanitizeFileName("Nasi Goreng"))
	assert.Equal(t, "es-teh-manis", sanitizeFileName("  Es Teh (Manis)!  "))
	assert.Equal(t, "", sanitizeFileName("!!!"))
}

func TestFileExtension(t *testing.T) {
	file := &multipart.FileHeader{
		Filename: "Foto.PNG",
		Header:   textproto.MIMEHeader{},
	}
	assert.Equal(t, "png", fileExtension(file))

	// Tanpa ekstensi valid, pakai Content-Type
	noExt := &multipart.FileHeader{
		Filename: "foto",
		Header:   textproto.MIMEHeader{"Content-Type": {"image/jpeg"}},
	}
	assert.Equal(t, "jpeg", fileExtension(noExt))

	unknown := &multipart.FileHeader{
		Filename: "foto",
		Header:   textproto.MIMEHeader{},
	}
	assert.Equal(t, "bin", fileExtension(unknown))
}

func TestCreateObjectKey(t *testing.T) {
	file := &multipart.FileHeader{
		Filename: "foto.jpg",
		Header:   textproto.MIMEHeader{},
	}

	key := createObjectKey("Nasi Goreng", file)
	assert.True(t, strings.HasPrefix(key, "menu/"))
	assert.Contains(t, key, "-nasi-goreng-")
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	// Nama yang habis tersaring jatuh ke fallback
	fallback := createObjectKey("!!!", file)
	assert.True(t, strings.HasPrefix(fallback, "menu/"))
	assert.Contains(t, fallback, "-menu-")
}

func TestKeyFromURL(t *testing.T) {
	t.Setenv("S3_PUBLIC_BASE_URL", "https://cdn.example.com")

	assert.Equal(t, "menu/abc.jpg", keyFromURL("https://cdn.example.com/menu/abc.jpg"))
	assert.Equal(t, "menu/abc.jpg", keyFromURL("/uploads/menu/abc.jpg"))
	assert.Equal(t, "menu/abc.jpg", keyFromURL("menu/abc.jpg"))
}
