// Package catalog implements the admin CRUD endpoints for services and
// packages.
package catalog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/catalog"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Paths of the admin catalog route groups.
const (
	ServicesPath = "/api/admin/services"
	PackagesPath = "/api/admin/packages"
)

// Service is the admin catalog handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin catalog handler.
var Handler = Service{}

// Init initializes the admin catalog handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(ServicesPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListServices)
		router.Post(handler.RootPath, s.CreateService)
		router.Patch(handler.IDPath, s.UpdateService)
		router.Delete(handler.IDPath, s.DeleteService)
	})

	app.Route(PackagesPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListPackages)
		router.Post(handler.RootPath, s.CreatePackage)
		router.Patch(handler.IDPath, s.UpdatePackage)
		router.Delete(handler.IDPath, s.DeletePackage)
	})

	return nil
}

// ListServices returns all services, inactive ones included.
func (s *Service) ListServices(c *fiber.Ctx) error {
	services, err := catalog.ListServices(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(services)
}

// CreateService inserts a new service.
func (s *Service) CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return handler.JSONBadBody(c)
	}

	service.ID = 0
	if fieldErrors := handler.ValidateStruct(service); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := catalog.CreateService(s.db, service); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService applies a partial service update.
func (s *Service) UpdateService(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(catalog.ServicePatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	service, err := catalog.UpdateService(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(service)
}

// DeleteService removes a service.
func (s *Service) DeleteService(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := catalog.DeleteService(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListPackages returns all packages, inactive ones included.
func (s *Service) ListPackages(c *fiber.Ctx) error {
	packages, err := catalog.ListPackages(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(packages)
}

// CreatePackage inserts a new package.
func (s *Service) CreatePackage(c *fiber.Ctx) error {
	pkg := new(models.Package)
	if err := c.BodyParser(pkg); err != nil {
		return handler.JSONBadBody(c)
	}

	pkg.ID = 0
	if fieldErrors := handler.ValidateStruct(pkg); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := catalog.CreatePackage(s.db, pkg); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pkg)
}

// UpdatePackage applies a partial package update.
func (s *Service) UpdatePackage(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(catalog.PackagePatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	pkg, err := catalog.UpdatePackage(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(pkg)
}

// DeletePackage removes a package.
func (s *Service) DeletePackage(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := catalog.DeletePackage(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
