package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khannoor710/carerefrigeration/internal/domain"
)

// GalleryRepository persists the gallery document as a single JSON file.
// There is no locking; concurrent savers race and the last write wins.
type GalleryRepository struct {
	path string
}

func NewGalleryRepository(path string) *GalleryRepository {
	return &GalleryRepository{path: path}
}

// Load reads the document from disk. A missing file yields an empty gallery
// without creating anything; unparseable content is reported as corrupt data
// rather than swallowed, since returning an empty document would lose the
// gallery on the next save.
func (r *GalleryRepository) Load() (domain.GalleryDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.GalleryDocument{Images: []domain.ImageRecord{}}, nil
		}
		return domain.GalleryDocument{}, fmt.Errorf("reading gallery data: %w", err)
	}

	var doc domain.GalleryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.GalleryDocument{}, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
	}
	if doc.Images == nil {
		doc.Images = []domain.ImageRecord{}
	}
	return doc, nil
}

// Save replaces the whole document. It writes to a temp file in the same
// directory and renames it over the target so a concurrent reader never
// observes a torn write.
func (r *GalleryRepository) Save(doc domain.GalleryDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding gallery data: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gallery-data-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing gallery data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing gallery data: %w", err)
	}
	return nil
}
