// Package settings implements the admin endpoints for the site settings
// key-value store.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/setting"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Path is the base path of the admin settings routes.
const Path = "/api/admin/settings"

// Service is the admin settings handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin settings handler.
var Handler = Service{}

// Init initializes the admin settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(Path, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Save)
	})

	return nil
}

// List returns the settings rows, key and value included, ordered by key.
func (s *Service) List(c *fiber.Ctx) error {
	settings, err := setting.List(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(settings)
}

type saveRequest struct {
	Settings map[string]string `json:"settings" validate:"required"`
}

// Save upserts a batch of settings in one transaction.
func (s *Service) Save(c *fiber.Ctx) error {
	body := new(saveRequest)
	if err := c.BodyParser(body); err != nil {
		return handler.JSONBadBody(c)
	}

	if fieldErrors := handler.ValidateStruct(body); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := setting.UpsertMany(s.db, body.Settings); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
