// Package portfolio implements the admin CRUD endpoints for portfolio
// projects.
package portfolio

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/portfolio"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Path is the base path of the admin portfolio routes.
const Path = "/api/admin/portfolio"

// Service is the admin portfolio handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin portfolio handler.
var Handler = Service{}

// Init initializes the admin portfolio handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(Path, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Create)
		router.Patch(handler.IDPath, s.Update)
		router.Delete(handler.IDPath, s.Delete)
	})

	return nil
}

// List returns all projects, inactive ones included.
func (s *Service) List(c *fiber.Ctx) error {
	projects, err := portfolio.List(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(projects)
}

// Create inserts a new project.
func (s *Service) Create(c *fiber.Ctx) error {
	project := new(models.Project)
	if err := c.BodyParser(project); err != nil {
		return handler.JSONBadBody(c)
	}

	project.ID = 0
	if fieldErrors := handler.ValidateStruct(project); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := portfolio.Create(s.db, project); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// Update applies a partial project update.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(portfolio.ProjectPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	project, err := portfolio.Update(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(project)
}

// Delete removes a project.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := portfolio.Delete(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
