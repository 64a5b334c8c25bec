// Package people implements the admin CRUD endpoints for testimonials and
// team members.
package people

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/people"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Paths of the admin people route groups.
const (
	TestimonialsPath = "/api/admin/testimonials"
	TeamPath         = "/api/admin/team"
)

// Service is the admin people handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin people handler.
var Handler = Service{}

// Init initializes the admin people handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(TestimonialsPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListTestimonials)
		router.Post(handler.RootPath, s.CreateTestimonial)
		router.Patch(handler.IDPath, s.UpdateTestimonial)
		router.Delete(handler.IDPath, s.DeleteTestimonial)
	})

	app.Route(TeamPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListTeamMembers)
		router.Post(handler.RootPath, s.CreateTeamMember)
		router.Patch(handler.IDPath, s.UpdateTeamMember)
		router.Delete(handler.IDPath, s.DeleteTeamMember)
	})

	return nil
}

// ListTestimonials returns all testimonials, inactive ones included.
func (s *Service) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := people.ListTestimonials(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(testimonials)
}

// CreateTestimonial inserts a new testimonial.
func (s *Service) CreateTestimonial(c *fiber.Ctx) error {
	testimonial := new(models.Testimonial)
	if err := c.BodyParser(testimonial); err != nil {
		return handler.JSONBadBody(c)
	}

	testimonial.ID = 0
	if fieldErrors := handler.ValidateStruct(testimonial); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := people.CreateTestimonial(s.db, testimonial); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// UpdateTestimonial applies a partial testimonial update.
func (s *Service) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(people.TestimonialPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	testimonial, err := people.UpdateTestimonial(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(testimonial)
}

// DeleteTestimonial removes a testimonial.
func (s *Service) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := people.DeleteTestimonial(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListTeamMembers returns all team members, inactive ones included.
func (s *Service) ListTeamMembers(c *fiber.Ctx) error {
	members, err := people.ListTeamMembers(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(members)
}

// CreateTeamMember inserts a new team member.
func (s *Service) CreateTeamMember(c *fiber.Ctx) error {
	member := new(models.TeamMember)
	if err := c.BodyParser(member); err != nil {
		return handler.JSONBadBody(c)
	}

	member.ID = 0
	if fieldErrors := handler.ValidateStruct(member); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	if err := people.CreateTeamMember(s.db, member); err != nil {
		return handler.JSONError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateTeamMember applies a partial team member update.
func (s *Service) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(people.TeamMemberPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	member, err := people.UpdateTeamMember(s.db, id, patch)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(member)
}

// DeleteTeamMember removes a team member.
func (s *Service) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := people.DeleteTeamMember(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
