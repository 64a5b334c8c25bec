// Package blog implements the admin CRUD endpoints for blog posts.
package blog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/blog"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Path is the base path of the admin blog routes.
const Path = "/api/admin/blog"

// Service is the admin blog handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin blog handler.
var Handler = Service{}

// Init initializes the admin blog handler.
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

// List returns all posts, drafts included.
func (s *Service) List(c *fiber.Ctx) error {
	posts, err := blog.List(s.db, false)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(posts)
}

// Create inserts a new post.
func (s *Service) Create(c *fiber.Ctx) error {
	post := new(models.BlogPost)
	if err := c.BodyParser(post); err != nil {
		return handler.JSONBadBody(c)
	}

	post.ID = 0
	if fieldErrors := handler.ValidateStruct(post); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := blog.Create(s.db, post); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// Update applies a partial post update.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(blog.PostPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	post, err := blog.Update(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(post)
}

// Delete removes a post.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := blog.Delete(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
