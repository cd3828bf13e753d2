package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khannoor710/carerefrigeration/internal/domain"
)

// MaxUploadSize is the ceiling for a single image upload.
const MaxUploadSize = 10 << 20 // 10 MiB

// allowedImageTypes lists the accepted image kinds. Both the file extension
// and the declared content type must match.
var allowedImageTypes = map[string]bool{
	"jpeg": true,
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// protectedMarkers identify the default gallery images that delete and reset
// must never remove. A filename belongs to the defaults if it CONTAINS one of
// these markers; callers must not rely on exact-match semantics.
var protectedMarkers = []string{"AC Unit", "Fridge repair", "Outdoor"}

func isProtectedFilename(filename string) bool {
	for _, marker := range protectedMarkers {
		if strings.Contains(filename, marker) {
			return true
		}
	}
	return false
}

// validateImage checks size, extension and declared content type.
func validateImage(data []byte, originalName, contentType string) error {
	if len(data) > MaxUploadSize {
		return fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrPayloadTooLarge, len(data), MaxUploadSize)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if !allowedImageTypes[ext] {
		return fmt.Errorf("%w: extension %q", domain.ErrUnsupportedMediaType, ext)
	}

	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if semi := strings.Index(mediaType, ";"); semi >= 0 {
		mediaType = strings.TrimSpace(mediaType[:semi])
	}
	subtype := strings.TrimPrefix(mediaType, "image/")
	if subtype == mediaType || !allowedImageTypes[subtype] {
		return fmt.Errorf("%w: content type %q", domain.ErrUnsupportedMediaType, contentType)
	}
	return nil
}

// uploadFilename builds a collision-resistant filename preserving the
// original extension: <base>-<unix millis>-<random suffix>.<ext>
func uploadFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), suffix, ext)
}
