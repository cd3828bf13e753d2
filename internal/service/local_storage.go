package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage keeps gallery images in a directory on disk. The directory is
// served as static content under the /gallery URL prefix.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates the content directory if it does not exist yet.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating gallery directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the content directory, for static file serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Put(data []byte, originalName string, contentType string) (string, error) {
	if err := validateImage(data, originalName, contentType); err != nil {
		return "", err
	}

	filename := uploadFilename(originalName)
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}
	return filename, nil
}

// Delete removes a stored image. Missing files are a no-op, and protected
// default images are never removed.
func (s *LocalStorage) Delete(filename string) error {
	if isProtectedFilename(filename) {
		return nil
	}
	// filepath.Base guards against path traversal in stored src values.
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing image file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Protected(filename string) bool {
	return isProtectedFilename(filename)
}
