package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/khannoor710/carerefrigeration/internal/domain"
	"github.com/khannoor710/carerefrigeration/internal/infrastructure/repository"
	services "github.com/khannoor710/carerefrigeration/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGalleryService(t *testing.T) (*GalleryService, string) {
	t.Helper()
	dir := t.TempDir()
	repo := repository.NewGalleryRepository(filepath.Join(dir, "gallery-data.json"))
	storage, err := services.NewLocalStorage(filepath.Join(dir, "gallery"))
	require.NoError(t, err)
	return NewGalleryService(repo, storage), filepath.Join(dir, "gallery")
}

func uploadTestImage(t *testing.T, s *GalleryService, title string) *UploadResult {
	t.Helper()
	result, err := s.UploadImage([]byte("bytes of "+title), title+".png", "image/png", title, "alt for "+title)
	require.NoError(t, err)
	return result
}

func TestUploadPrependsNewestFirst(t *testing.T) {
	s, _ := newTestGalleryService(t)

	uploadTestImage(t, s, "first")
	uploadTestImage(t, s, "second")

	images, err := s.ListImages()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "second", images[0].Title)
	assert.Equal(t, "first", images[1].Title)
	assert.NotEmpty(t, images[0].UploadedAt)
}

func TestUploadRequiresTitleAndAlt(t *testing.T) {
	s, galleryDir := newTestGalleryService(t)

	for _, tc := range []struct{ title, alt string }{
		{"", "some alt"},
		{"some title", ""},
		{"   ", "some alt"},
		{"some title", "   "},
	} {
		_, err := s.UploadImage([]byte("img"), "pic.png", "image/png", tc.title, tc.alt)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	}

	// A rejected upload must not leave a blob behind.
	entries, err := os.ReadDir(galleryDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadRollsBackBlobWhenMetadataSaveFails(t *testing.T) {
	dir := t.TempDir()
	storage, err := services.NewLocalStorage(dir)
	require.NoError(t, err)

	s := NewGalleryService(&failingSaveRepo{}, storage)
	_, err = s.UploadImage([]byte("img"), "pic.png", "image/png", "Title", "Alt")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "blob must be removed when metadata persist fails")
}

func TestDeleteAtRemovesExactlyThatRecord(t *testing.T) {
	s, _ := newTestGalleryService(t)

	uploadTestImage(t, s, "a") // ends up last
	uploadTestImage(t, s, "b") // middle
	uploadTestImage(t, s, "c") // first

	total, err := s.DeleteImageAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	images, err := s.ListImages()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "c", images[0].Title)
	assert.Equal(t, "a", images[1].Title)
}

func TestDeleteAtRemovesBackingBlob(t *testing.T) {
	s, galleryDir := newTestGalleryService(t)

	result := uploadTestImage(t, s, "doomed")
	filename := filepath.Base(result.Record.Src)

	_, err := s.DeleteImageAt(0)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(galleryDir, filename))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteAtOutOfRangeFailsClosed(t *testing.T) {
	s, _ := newTestGalleryService(t)

	uploadTestImage(t, s, "only")

	for _, position := range []int{-1, 1, 99} {
		_, err := s.DeleteImageAt(position)
		require.Error(t, err, "position %d", position)
		assert.True(t, errors.Is(err, domain.ErrOutOfRange))
	}

	// The store must be unchanged after failed deletes.
	images, err := s.ListImages()
	require.NoError(t, err)
	assert.Len(t, images, 1)
}

func TestResetRestoresDefaultsAndIsIdempotent(t *testing.T) {
	s, galleryDir := newTestGalleryService(t)

	// Seed a protected default on disk plus an uploaded image.
	defaultPath := filepath.Join(galleryDir, "AC Unit Servicing.png")
	require.NoError(t, os.WriteFile(defaultPath, []byte("default"), 0o644))
	result := uploadTestImage(t, s, "uploaded")
	uploadedPath := filepath.Join(galleryDir, filepath.Base(result.Record.Src))

	for i := 0; i < 2; i++ {
		total, err := s.ResetGallery()
		require.NoError(t, err)
		assert.Equal(t, 4, total)

		images, err := s.ListImages()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultGallery().Images, images)

		_, statErr := os.Stat(defaultPath)
		assert.NoError(t, statErr, "protected default must survive reset")
	}

	_, statErr := os.Stat(uploadedPath)
	assert.True(t, os.IsNotExist(statErr), "uploaded blob must be removed by reset")
}

func TestListImagesEmptyStore(t *testing.T) {
	s, _ := newTestGalleryService(t)

	images, err := s.ListImages()
	require.NoError(t, err)
	assert.Empty(t, images)
}

type failingSaveRepo struct{}

func (r *failingSaveRepo) Load() (domain.GalleryDocument, error) {
	return domain.GalleryDocument{Images: []domain.ImageRecord{}}, nil
}

func (r *failingSaveRepo) Save(domain.GalleryDocument) error {
	return fmt.Errorf("disk full")
}
