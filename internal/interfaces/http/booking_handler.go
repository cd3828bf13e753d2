package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/khannoor710/carerefrigeration/internal/application"
	"github.com/khannoor710/carerefrigeration/internal/domain"
)

type BookingHandler struct {
	service *application.BookingService
	limiter *application.RateLimiter
}

func NewBookingHandler(service *application.BookingService, limiter *application.RateLimiter) *BookingHandler {
	return &BookingHandler{service: service, limiter: limiter}
}

// CreateBooking handles a booking form submission. It always answers with a
// confirmation text on success, whether or not the notification emails went
// through.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	if ok, err := h.limiter.Allow(c.IP()); !ok {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	}

	var req domain.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.service.CreateBooking(req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid booking fields"})
		}
		log.Printf("Error creating booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process booking"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"confirmation": result.Confirmation,
		"bookingRef":   result.BookingRef,
		"emailSent":    result.EmailSent,
	})
}
