// Package proofstore сохраняет компробанты оплаты на локальный диск
package proofstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// extByContentType расширение файла по валидированному media type
var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Store дисковое хранилище компробантов
type Store struct {
	dir string
}

// NewStore создает хранилище и каталог для компробантов
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewStore - create dir: %v", ErrInternal, err)
	}
	return &Store{dir: dir}, nil
}

// Save записывает компробант и возвращает относительную ссылку на него.
// Content type обязан быть уже валидирован вызывающей стороной.
func (s *Store) Save(codigo string, contentType string, data []byte) (string, error) {
	if len(data) > domain.MaxProofSizeBytes {
		return "", ErrTooLarge
	}

	ext := extByContentType[contentType]
	if ext == "" {
		ext = ".bin"
	}

	name := fmt.Sprintf("%s_%d%s", codigo, time.Now().Unix(), ext)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: Save - write file: %v", ErrInternal, err)
	}

	return filepath.Join("comprobantes", name), nil
}
