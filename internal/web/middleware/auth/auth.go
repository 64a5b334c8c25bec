// Package auth provides the session check guarding the admin API routes.
//
// RequireAdmin validates the session cookie against the session store and
// rejects the request with a JSON 401 when the cookie is absent or stale.
// On success the admin id is stored in fiber.Locals for handlers.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/session"
)

// adminIDKey is the fiber.Locals key holding the authenticated admin id.
const adminIDKey = "adminID"

// RequireAdmin is a Fiber middleware that checks for an authenticated admin
// session.
func RequireAdmin(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return unauthorized(c)
	}

	sessData := new(session.Data)
	if err := sessData.Read(sessionID); err != nil {
		return unauthorized(c)
	}

	if sessData.AdminID == 0 {
		return unauthorized(c)
	}

	c.Locals(adminIDKey, sessData.AdminID)

	return c.Next()
}

// AdminID returns the authenticated admin id stored by RequireAdmin, or 0
// when the request was not authenticated.
func AdminID(c *fiber.Ctx) uint64 {
	id, _ := c.Locals(adminIDKey).(uint64)
	return id
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Unauthorized",
	})
}
