package http

import (
	"errors"
	"io"
	"log"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/khannoor710/carerefrigeration/internal/application"
	"github.com/khannoor710/carerefrigeration/internal/domain"
	"github.com/khannoor710/carerefrigeration/internal/events"
)

type GalleryHandler struct {
	service *application.GalleryService
	hub     *events.Hub
}

func NewGalleryHandler(service *application.GalleryService, hub *events.Hub) *GalleryHandler {
	return &GalleryHandler{service: service, hub: hub}
}

// GetImages returns the full gallery, most recent first.
func (h *GalleryHandler) GetImages(c *fiber.Ctx) error {
	images, err := h.service.ListImages()
	if err != nil {
		log.Printf("Error fetching gallery: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch gallery images"})
	}
	return c.JSON(fiber.Map{"images": images})
}

// UploadImage accepts a multipart form with an image file, title and alt text.
func (h *GalleryHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file provided"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}

	title := c.FormValue("title")
	alt := c.FormValue("alt")
	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.service.UploadImage(data, fileHeader.Filename, contentType, title, alt)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and alt text are required"})
		case errors.Is(err, domain.ErrUnsupportedMediaType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only image files are allowed"})
		case errors.Is(err, domain.ErrPayloadTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image exceeds the 10MB size limit"})
		default:
			log.Printf("Error uploading image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
		}
	}

	h.hub.Broadcast(events.GalleryUpdated)

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Image uploaded successfully",
		"image":       result.Record,
		"totalImages": result.TotalCount,
	})
}

// DeleteImage removes the image at a position. The position is an index into
// the gallery as last listed, not a stable id.
func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	position, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image index"})
	}

	total, err := h.service.DeleteImageAt(position)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image index"})
		}
		log.Printf("Error deleting image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete image"})
	}

	h.hub.Broadcast(events.GalleryUpdated)

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Image deleted successfully",
		"totalImages": total,
	})
}

// RedirectGalleryImage serves /gallery/* when images live in a remote bucket
// by redirecting to the object's public URL. Gallery records always store
// src as /gallery/<filename>, so this keeps those paths reachable without a
// local content directory.
func RedirectGalleryImage(publicURL func(filename string) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filename, err := url.PathUnescape(c.Params("*"))
		if err != nil || filename == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Redirect(publicURL(filename), fiber.StatusFound)
	}
}

// ResetGallery restores the fixed default gallery.
func (h *GalleryHandler) ResetGallery(c *fiber.Ctx) error {
	total, err := h.service.ResetGallery()
	if err != nil {
		log.Printf("Error resetting gallery: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset gallery"})
	}

	h.hub.Broadcast(events.GalleryUpdated)

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Gallery reset to defaults",
		"totalImages": total,
	})
}
