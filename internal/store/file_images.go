package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/google/uuid"
)

// ImagePathPrefix is the public URL prefix of stored images.
const ImagePathPrefix = "uploads/"

var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// localImageStorage is the filesystem implementation of [ImageStorage].
// Files are written flat into dir and exposed as "uploads/<name>".
type localImageStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalImageStorage creates dir when missing and returns an
// [ImageStorage] writing into it.
func NewLocalImageStorage(dir string, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload dir: %w", err)
	}
	return &localImageStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// SaveImage implements [ImageStorage]. The stored name is a fresh UUID
// followed by the sanitized original name.
func (s *localImageStorage) SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := SanitizeFileName(originalName)
	if !IsAllowedImage(name) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, originalName)
	}
	name = uuid.NewString() + "_" + name

	file, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "localImageStorage.SaveImage").Msg("failed to create image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}

	if _, err = io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(file.Name())
		log.Err(err).Str("func", "localImageStorage.SaveImage").Msg("failed to write image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}
	if err = file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("error closing image file: %w", err)
	}

	return ImagePathPrefix + name, nil
}

// DeleteImage implements [ImageStorage]. Paths outside the upload prefix are
// ignored.
func (s *localImageStorage) DeleteImage(ctx context.Context, relPath string) error {
	if !strings.HasPrefix(relPath, ImagePathPrefix) {
		return nil
	}

	name := path.Base(relPath)
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "localImageStorage.DeleteImage").Msg("failed to delete image file")
		return fmt.Errorf("error deleting image file: %w", err)
	}
	return nil
}

// SanitizeFileName reduces name to its base name made of ASCII letters,
// digits, dots, dashes and underscores.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFileNameChars.ReplaceAllString(name, "")
	return strings.TrimLeft(name, "._")
}

// IsAllowedImage reports whether name has a png, jpg, jpeg or gif extension.
func IsAllowedImage(name string) bool {
	_, ok := allowedImageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
