package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
)

// Message is the uniform JSON error envelope.
type Message struct {
	Message string `json:"message"`
}

// JSONMessage sends a JSON error envelope with the given status.
func JSONMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Message{Message: message})
}

// JSONError maps a storage error onto the HTTP error envelope. Unknown
// errors are logged and become an opaque 500.
func JSONError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return JSONMessage(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, db.ErrConflict):
		return JSONMessage(c, fiber.StatusConflict, "Already exists")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return JSONMessage(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// ParseID reads the :id route parameter as an unsigned integer.
func ParseID(c *fiber.Ctx) (uint64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}

	return uint64(id), nil
}
