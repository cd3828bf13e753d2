package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/khannoor710/carerefrigeration/internal/application"
	"github.com/khannoor710/carerefrigeration/internal/domain"
)

// AuthHandler exposes the admin session guard. The issued session is held by
// the client and presented back on status checks; the gallery mutation routes
// intentionally do NOT verify it, preserving the original site's client-side
// guard. Do not "fix" this silently — server-side enforcement would be a
// deliberate behavior change.
type AuthHandler struct {
	service *application.AuthService
	limiter *application.RateLimiter
}

func NewAuthHandler(service *application.AuthService, limiter *application.RateLimiter) *AuthHandler {
	return &AuthHandler{service: service, limiter: limiter}
}

// Login validates the fixed credential pair and issues a 24-hour session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if ok, err := h.limiter.Allow(c.IP()); !ok {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, ok := h.service.Login(req.Username, req.Password)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid username or password",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"session": session,
	})
}

// Status re-evaluates the session the client presents. Expired sessions come
// back cleared so the client drops them.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	var session domain.AdminSession
	if err := c.BodyParser(&session); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	status, cleared := h.service.Status(session)
	return c.JSON(fiber.Map{
		"authenticated": status.Authenticated,
		"session":       cleared,
	})
}

// Logout returns the cleared session for the client to store.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"session": h.service.Logout(),
	})
}
