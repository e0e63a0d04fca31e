package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage представляет файловое хранилище загружаемых файлов решений.
// Ядро хранит только непрозрачную ссылку на файл и никогда не читает
// его содержимое обратно
type Storage struct {
	basePath    string
	maxFileSize int64
}

// NewStorage создает новое файловое хранилище
func NewStorage(basePath string, maxFileSize int64) (*Storage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Storage{basePath: basePath, maxFileSize: maxFileSize}, nil
}

// SaveFile сохраняет загруженный файл и возвращает ссылку на него
// относительно корня хранилища
func (s *Storage) SaveFile(file *multipart.FileHeader, category string) (string, error) {
	if file.Size > s.maxFileSize {
		return "", fmt.Errorf("file size exceeds maximum allowed size")
	}

	fileName := uuid.New().String() + filepath.Ext(file.Filename)
	relPath := filepath.Join(category, fileName)
	fullPath := filepath.Join(s.basePath, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create file directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}
	return relPath, nil
}

// DeleteFile удаляет файл по ссылке
func (s *Storage) DeleteFile(relPath string) error {
	return os.Remove(filepath.Join(s.basePath, relPath))
}
