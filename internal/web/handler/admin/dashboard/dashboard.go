// Package dashboard implements the admin overview counters endpoint.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/stats"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Path is the path of the admin dashboard endpoint.
const Path = "/api/admin/dashboard"

// Service is the dashboard handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Get(Path, authmw.RequireAdmin, s.Get)

	return nil
}

// Get returns the dashboard counters.
func (s *Service) Get(c *fiber.Ctx) error {
	dashboard, err := stats.GetDashboard(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(dashboard)
}
