package application

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/khannoor710/carerefrigeration/internal/domain"
)

// GalleryService composes the metadata repository and the blob store behind
// the four gallery operations. Each operation is atomic only with respect to
// itself; a crash between the blob write and the metadata write is a known,
// accepted inconsistency window.
type GalleryService struct {
	repo  domain.GalleryMetadataRepository
	blobs domain.BlobStore
}

func NewGalleryService(repo domain.GalleryMetadataRepository, blobs domain.BlobStore) *GalleryService {
	return &GalleryService{repo: repo, blobs: blobs}
}

// ListImages returns the full stored sequence, most recent first. Callers
// wanting "latest N" truncate themselves: the public page shows the first 6,
// the admin view shows everything.
func (s *GalleryService) ListImages() ([]domain.ImageRecord, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	return doc.Images, nil
}

// UploadResult is what a successful upload reports back.
type UploadResult struct {
	Record     domain.ImageRecord
	TotalCount int
}

// UploadImage stores the image bytes and prepends a new record to the
// gallery. Title and alt are required after trimming; that check runs before
// the blob is written so a rejected upload never leaves a file behind.
func (s *GalleryService) UploadImage(data []byte, originalName, contentType, title, alt string) (*UploadResult, error) {
	title = strings.TrimSpace(title)
	alt = strings.TrimSpace(alt)
	if title == "" || alt == "" {
		return nil, fmt.Errorf("%w: title and alt text are required", domain.ErrValidation)
	}

	filename, err := s.blobs.Put(data, originalName, contentType)
	if err != nil {
		return nil, err
	}

	record := domain.ImageRecord{
		Src:        "/gallery/" + filename,
		Title:      title,
		Alt:        alt,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	}

	doc, err := s.repo.Load()
	if err == nil {
		doc.Images = append([]domain.ImageRecord{record}, doc.Images...)
		err = s.repo.Save(doc)
	}
	if err != nil {
		// Metadata never recorded the blob; remove it rather than orphan it.
		if delErr := s.blobs.Delete(filename); delErr != nil {
			log.Printf("Failed to roll back blob %s: %v", filename, delErr)
		}
		return nil, err
	}

	return &UploadResult{Record: record, TotalCount: len(doc.Images)}, nil
}

// DeleteImageAt removes the record at the given position and its backing
// file. The position is a volatile index into the list as it stood when the
// caller last fetched it, not a stable identifier: an intervening mutation by
// another admin shifts it, and that is an accepted limitation.
func (s *GalleryService) DeleteImageAt(positionAtTimeOfListing int) (int, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return 0, err
	}

	if positionAtTimeOfListing < 0 || positionAtTimeOfListing >= len(doc.Images) {
		return 0, fmt.Errorf("%w: %d (gallery has %d images)", domain.ErrOutOfRange, positionAtTimeOfListing, len(doc.Images))
	}

	record := doc.Images[positionAtTimeOfListing]
	if err := s.blobs.Delete(filepath.Base(record.Src)); err != nil {
		log.Printf("Failed to delete image file for %s: %v", record.Src, err)
	}

	doc.Images = append(doc.Images[:positionAtTimeOfListing], doc.Images[positionAtTimeOfListing+1:]...)
	if err := s.repo.Save(doc); err != nil {
		return 0, err
	}
	return len(doc.Images), nil
}

// ResetGallery deletes every non-protected image file referenced by the
// current document and overwrites it with the fixed default sequence.
// Irreversible; confirmation is the caller's responsibility.
func (s *GalleryService) ResetGallery() (int, error) {
	doc, err := s.repo.Load()
	if err != nil {
		return 0, err
	}

	for _, record := range doc.Images {
		filename := filepath.Base(record.Src)
		if s.blobs.Protected(filename) {
			continue
		}
		if err := s.blobs.Delete(filename); err != nil {
			log.Printf("Failed to delete image file for %s: %v", record.Src, err)
		}
	}

	defaults := domain.DefaultGallery()
	if err := s.repo.Save(defaults); err != nil {
		return 0, err
	}
	return len(defaults.Images), nil
}
