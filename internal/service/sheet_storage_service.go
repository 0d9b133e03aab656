package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/config"
)

// SheetStorageService stages uploaded sheet images on disk. Files live only
// for the duration of one evaluation; the random name prefix keeps concurrent
// uploads from overwriting each other.
type SheetStorageService interface {
	Save(filename string, content io.Reader) (string, error)
	Remove(path string)
	EnsureDir() error
}

type sheetStorageService struct {
	dir string
}

func NewSheetStorageService(cfg *config.Config) SheetStorageService {
	return &sheetStorageService{dir: cfg.Upload.Dir}
}

func (s *sheetStorageService) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

func (s *sheetStorageService) Save(filename string, content io.Reader) (string, error) {
	path := filepath.Join(s.dir, uuid.NewString()+"_"+filepath.Base(filename))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return path, nil
}

func (s *sheetStorageService) Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to clean up uploaded sheet")
	}
}
