package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"regexp"
	"strings"
	"time"

	"resto-app/config"

	"github.com/google/uuid"
)

// StoredFile adalah hasil upload: key di storage dan URL publiknya.
type StoredFile struct {
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

// Storage menyimpan foto menu. Dua driver: local disk dan S3-compatible.
type Storage interface {
	Upload(file *multipart.FileHeader, name string) (*StoredFile, error)
	Delete(keyOrURL string) error
}

var active Storage

// Connect memilih driver storage sesuai konfigurasi. Panggil sekali saat boot.
func Connect() error {
	if config.StorageDriver == "s3" {
		s3Store, err := newS3Storage()
		if err != nil {
			return err
		}
		active = s3Store
		fmt.Println("Storage driver: s3")
		return nil
	}

	active = newLocalStorage(config.StorageLocalPath)
	fmt.Println("Storage driver: local")
	return nil
}

// Default mengembalikan driver storage yang aktif.
func Default() Storage {
	return active
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func sanitizeFileName(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func fileExtension(file *multipart.FileHeader) string {
	parts := strings.Split(file.Filename, ".")
	if len(parts) > 1 {
		ext := parts[len(parts)-1]
		if regexp.MustCompile(`^[a-zA-Z0-9]+$`).MatchString(ext) {
			return strings.ToLower(ext)
		}
	}

	contentType := file.Header.Get("Content-Type")
	if idx := strings.Index(contentType, "/"); idx >= 0 {
		return strings.ToLower(contentType[idx+1:])
	}

	return "bin"
}

func createObjectKey(name string, file *multipart.FileHeader) string {
	safeName := sanitizeFileName(name)
	if safeName == "" {
		safeName = "menu"
	}

	return fmt.Sprintf("menu/%d-%s-%s.%s",
		time.Now().UnixMilli(), safeName, uuid.NewString(), fileExtension(file))
}

// keyFromURL menerima key langsung atau URL publik dan mengembalikan key-nya.
func keyFromURL(keyOrURL string) string {
	publicBaseURL := os.Getenv("S3_PUBLIC_BASE_URL")
	if publicBaseURL != "" && strings.HasPrefix(keyOrURL, publicBaseURL) {
		return strings.TrimPrefix(strings.TrimPrefix(keyOrURL, publicBaseURL), "/")
	}

	const localPrefix = "/uploads/"
	if strings.HasPrefix(keyOrURL, localPrefix) {
		return strings.TrimPrefix(keyOrURL, localPrefix)
	}

	return keyOrURL
}
