package domain

// ImageRecord is one gallery entry. UploadedAt is set only for images that
// came in through the admin upload flow; the built-in defaults don't carry it.
type ImageRecord struct {
	Src        string `json:"src"`
	Title      string `json:"title"`
	Alt        string `json:"alt"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}

// GalleryDocument is the whole persisted gallery. Images are ordered newest
// first; insertion order is the only ordering guarantee.
type GalleryDocument struct {
	Images []ImageRecord `json:"images"`
}

// DefaultGallery returns the fixed four-image gallery that reset restores.
func DefaultGallery() GalleryDocument {
	return GalleryDocument{
		Images: []ImageRecord{
			{
				Src:   "/gallery/AC Unit Servicing.png",
				Title: "AC Unit Servicing",
				Alt:   "Professional technician servicing an air conditioner unit.",
			},
			{
				Src:   "/gallery/Fridge repair.png",
				Title: "Refrigerator Repair",
				Alt:   "Expert refrigerator repair and maintenance service.",
			},
			{
				Src:   "/gallery/Outdoor Unit Repair.png",
				Title: "Outdoor Unit Repair",
				Alt:   "Outdoor AC unit repair and maintenance.",
			},
			{
				Src:   "/gallery/Outdoor Repair.png",
				Title: "Outdoor Repair",
				Alt:   "Regular outdoor unit maintenance and inspection.",
			},
		},
	}
}

// GalleryMetadataRepository persists the gallery document as a single unit.
// Save replaces the whole document; there is no partial update.
type GalleryMetadataRepository interface {
	Load() (GalleryDocument, error)
	Save(doc GalleryDocument) error
}

// BlobStore owns the image files behind the gallery records.
type BlobStore interface {
	// Put validates and stores the image bytes and returns the generated
	// filename. The original extension is preserved.
	Put(data []byte, originalName string, contentType string) (string, error)
	// Delete removes a stored file. It is idempotent and silently refuses
	// to remove any of the protected default images.
	Delete(filename string) error
	// Protected reports whether a filename belongs to the default set.
	// The check is substring based, not exact match.
	Protected(filename string) bool
}
