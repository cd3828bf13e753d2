package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/khannoor710/carerefrigeration/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyGallery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")
	repo := NewGalleryRepository(path)

	doc, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, doc.Images)
	assert.Empty(t, doc.Images)

	// Load must not create the file.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")
	repo := NewGalleryRepository(path)

	doc := domain.GalleryDocument{
		Images: []domain.ImageRecord{
			{Src: "/gallery/b.png", Title: "B", Alt: "second upload", UploadedAt: "2024-06-01T10:00:00Z"},
			{Src: "/gallery/a.png", Title: "A", Alt: "first upload", UploadedAt: "2024-06-01T09:00:00Z"},
		},
	}
	require.NoError(t, repo.Save(doc))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")
	repo := NewGalleryRepository(path)

	require.NoError(t, repo.Save(domain.GalleryDocument{
		Images: []domain.ImageRecord{{Src: "/gallery/old.png", Title: "Old", Alt: "old"}},
	}))
	require.NoError(t, repo.Save(domain.GalleryDocument{
		Images: []domain.ImageRecord{{Src: "/gallery/new.png", Title: "New", Alt: "new"}},
	}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Images, 1)
	assert.Equal(t, "New", loaded.Images[0].Title)
}

func TestSaveLeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	repo := NewGalleryRepository(filepath.Join(dir, "gallery-data.json"))

	require.NoError(t, repo.Save(domain.GalleryDocument{Images: []domain.ImageRecord{}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gallery-data.json", entries[0].Name())
}

func TestLoadCorruptDataFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewGalleryRepository(path)
	_, err := repo.Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCorruptData))
}

func TestLoadNullImagesNormalizedToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery-data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"images": null}`), 0o644))

	repo := NewGalleryRepository(path)
	doc, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, doc.Images)
	assert.Empty(t, doc.Images)
}
