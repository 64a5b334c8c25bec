// Package payment implements the admin CRUD endpoints for payment
// platforms and their tutorial videos.
package payment

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/payment"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Paths of the admin payment route groups.
const (
	PlatformsPath = "/api/admin/payment-platforms"
	VideosPath    = "/api/admin/payment-videos"
)

// Service is the admin payment handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin payment handler.
var Handler = Service{}

// Init initializes the admin payment handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(PlatformsPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListPlatforms)
		router.Post(handler.RootPath, s.CreatePlatform)
		router.Patch(handler.IDPath, s.UpdatePlatform)
		router.Delete(handler.IDPath, s.DeletePlatform)
	})

	app.Route(VideosPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListVideos)
		router.Post(handler.RootPath, s.CreateVideo)
		router.Patch(handler.IDPath, s.UpdateVideo)
		router.Delete(handler.IDPath, s.DeleteVideo)
	})

	return nil
}

// ListPlatforms returns all payment platforms, inactive ones included.
func (s *Service) ListPlatforms(c *fiber.Ctx) error {
	platforms, err := payment.ListPlatforms(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(platforms)
}

// CreatePlatform inserts a new payment platform.
func (s *Service) CreatePlatform(c *fiber.Ctx) error {
	platform := new(models.PaymentPlatform)
	if err := c.BodyParser(platform); err != nil {
		return handler.JSONBadBody(c)
	}

	platform.ID = 0
	if fieldErrors := handler.ValidateStruct(platform); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := payment.CreatePlatform(s.db, platform); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(platform)
}

// UpdatePlatform applies a partial payment platform update.
func (s *Service) UpdatePlatform(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(payment.PlatformPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	platform, err := payment.UpdatePlatform(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(platform)
}

// DeletePlatform removes a payment platform.
func (s *Service) DeletePlatform(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := payment.DeletePlatform(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListVideos returns all payment videos, inactive ones included.
func (s *Service) ListVideos(c *fiber.Ctx) error {
	videos, err := payment.ListVideos(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(videos)
}

// CreateVideo inserts a new payment video.
func (s *Service) CreateVideo(c *fiber.Ctx) error {
	video := new(models.PaymentVideo)
	if err := c.BodyParser(video); err != nil {
		return handler.JSONBadBody(c)
	}

	video.ID = 0
	if fieldErrors := handler.ValidateStruct(video); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := payment.CreateVideo(s.db, video); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(video)
}

// UpdateVideo applies a partial payment video update.
func (s *Service) UpdateVideo(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(payment.VideoPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	video, err := payment.UpdateVideo(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(video)
}

// DeleteVideo removes a payment video.
func (s *Service) DeleteVideo(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := payment.DeleteVideo(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
