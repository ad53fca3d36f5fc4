package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

type localStorage struct {
	basePath string
}

func newLocalStorage(basePath string) *localStorage {
	return &localStorage{basePath: basePath}
}

func (l *localStorage) Upload(file *multipart.FileHeader, name string) (*StoredFile, error) {
	key := createObjectKey(name, file)
	filePath := filepath.Join(l.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	return &StoredFile{
		Key:       key,
		PublicURL: "/uploads/" + key,
	}, nil
}

func (l *localStorage) Delete(keyOrURL string) error {
	if keyOrURL == "" {
		return nil
	}

	key := keyFromURL(keyOrURL)
	if !strings.HasPrefix(key, "menu/") {
		return nil
	}

	err := os.Remove(filepath.Join(l.basePath, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
