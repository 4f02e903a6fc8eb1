package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// imageStorage is the filesystem implementation of [ImageStorage]. Uploaded
// images are written atomically (temp file + rename) into a single flat
// directory and later served read-only under the public /uploads/ prefix.
//
// Stored names have the form "<unix-millis>-<original-filename>": the
// millisecond timestamp prefix keeps concurrent uploads of identically named
// files from colliding. No size or content-type validation is performed.
type imageStorage struct {
	dir    string
	logger *logger.Logger

	// now is the clock used for name generation; overridable in tests.
	now func() time.Time
}

// NewImageStorage constructs an [ImageStorage] rooted at cfg.UploadsDir,
// creating the directory if it does not exist yet.
func NewImageStorage(cfg config.Files, log *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Err(err).Str("dir", cfg.UploadsDir).Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	log.Debug().Str("dir", cfg.UploadsDir).Msg("creating image storage")
	return &imageStorage{
		dir:    cfg.UploadsDir,
		logger: log,
		now:    time.Now,
	}, nil
}

// Save writes content into the uploads directory and returns the stored name.
//
// The write is atomic: content goes to a temp file first and is renamed into
// place only after a successful sync, so a crashed upload never leaves a
// partially written image behind.
func (s *imageStorage) Save(ctx context.Context, originalFilename string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	storedName := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeFilename(originalFilename))

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error creating temp file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			if rmErr := os.Remove(tmp.Name()); rmErr != nil {
				log.Warn().Err(rmErr).Msg("failed to remove temp file")
			}
		}
	}()

	if _, err := io.Copy(tmp, content); err != nil {
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error writing image content")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if err := tmp.Sync(); err != nil {
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error syncing image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if err := tmp.Close(); err != nil {
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error closing image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, storedName)); err != nil {
		log.Err(err).Str("func", "*imageStorage.Save").Msg("error renaming image file")
		return "", fmt.Errorf("%w: %w", ErrSavingImage, err)
	}

	success = true
	log.Debug().Str("stored_name", storedName).Msg("image saved")

	return storedName, nil
}

// Dir returns the uploads directory for read-only static serving.
func (s *imageStorage) Dir() string {
	return s.dir
}

// sanitizeFilename strips any directory components from a client-supplied
// filename and replaces path separators so the stored name cannot escape the
// uploads directory.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "upload"
	}
	return base
}
