// Package public implements the unauthenticated site API: filtered read
// views of the published content plus the two submission forms.
package public

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/blog"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/catalog"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/inbox"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/payment"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/people"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/portfolio"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/setting"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
)

// Path is the base path of the public API.
const Path = "/api"

// Service is the public API handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public API handler.
var Handler = Service{}

// Init initializes the public API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(Path, func(router fiber.Router) {
		router.Get("/services", s.ListServices)
		router.Get("/services/:slug", s.GetService)
		router.Get("/packages", s.ListPackages)
		router.Get("/projects", s.ListProjects)
		router.Get("/projects/:slug", s.GetProject)
		router.Get("/blog", s.ListBlogPosts)
		router.Get("/blog/:slug", s.GetBlogPost)
		router.Get("/testimonials", s.ListTestimonials)
		router.Get("/team", s.ListTeamMembers)
		router.Get("/payment-platforms", s.ListPaymentPlatforms)
		router.Get("/payment-videos", s.ListPaymentVideos)
		router.Get("/settings", s.GetSettings)
		router.Post("/contact", s.SubmitContact)
		router.Post("/sample-request", s.SubmitSampleRequest)
	})

	return nil
}

// ListServices returns active services ordered for display.
func (s *Service) ListServices(c *fiber.Ctx) error {
	services, err := catalog.ListServices(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if svc.IsActive {
			out = append(out, svc)
		}
	}

	return c.JSON(out)
}

// GetService returns one service by slug, active or not.
func (s *Service) GetService(c *fiber.Ctx) error {
	service, err := catalog.GetServiceBySlug(s.db, c.Params("slug"))
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(service)
}

// ListPackages returns active packages ordered for display.
func (s *Service) ListPackages(c *fiber.Ctx) error {
	packages, err := catalog.ListPackages(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	out := make([]models.Package, 0, len(packages))
	for _, pkg := range packages {
		if pkg.IsActive {
			out = append(out, pkg)
		}
	}

	return c.JSON(out)
}

// ListProjects returns active portfolio projects, newest first.
func (s *Service) ListProjects(c *fiber.Ctx) error {
	projects, err := portfolio.List(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsActive {
			out = append(out, p)
		}
	}

	return c.JSON(out)
}

// GetProject returns one project by slug, active or not.
func (s *Service) GetProject(c *fiber.Ctx) error {
	project, err := portfolio.GetBySlug(s.db, c.Params("slug"))
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(project)
}

// ListBlogPosts returns published posts, newest first.
func (s *Service) ListBlogPosts(c *fiber.Ctx) error {
	posts, err := blog.List(s.db, true)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(posts)
}

// GetBlogPost returns one post by slug, published or not.
func (s *Service) GetBlogPost(c *fiber.Ctx) error {
	post, err := blog.GetBySlug(s.db, c.Params("slug"))
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(post)
}

// ListTestimonials returns active testimonials ordered for display.
func (s *Service) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := people.ListTestimonials(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	out := make([]models.Testimonial, 0, len(testimonials))
	for _, t := range testimonials {
		if t.IsActive {
			out = append(out, t)
		}
	}

	return c.JSON(out)
}

// ListTeamMembers returns active team members ordered for display.
func (s *Service) ListTeamMembers(c *fiber.Ctx) error {
	members, err := people.ListTeamMembers(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	out := make([]models.TeamMember, 0, len(members))
	for _, m := range members {
		if m.IsActive {
			out = append(out, m)
		}
	}

	return c.JSON(out)
}

// ListPaymentPlatforms returns active payment platforms ordered for display.
func (s *Service) ListPaymentPlatforms(c *fiber.Ctx) error {
	platforms, err := payment.ListPlatforms(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	out := make([]models.PaymentPlatform, 0, len(platforms))
	for _, p := range platforms {
		if p.IsActive {
			out = append(out, p)
		}
	}

	return c.JSON(out)
}

// ListPaymentVideos returns active payment videos ordered for display.
func (s *Service) ListPaymentVideos(c *fiber.Ctx) error {
	videos, err := payment.ListVideos(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	out := make([]models.PaymentVideo, 0, len(videos))
	for _, v := range videos {
		if v.IsActive {
			out = append(out, v)
		}
	}

	return c.JSON(out)
}

// GetSettings returns the site settings flattened to a key-value object.
func (s *Service) GetSettings(c *fiber.Ctx) error {
	settings, err := setting.AsMap(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(settings)
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact stores a contact form submission.
func (s *Service) SubmitContact(c *fiber.Ctx) error {
	body := new(contactRequest)
	if err := c.BodyParser(body); err != nil {
		return handler.JSONBadBody(c)
	}

	if fieldErrors := handler.ValidateStruct(body); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	message := &models.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	}

	if err := inbox.CreateMessage(s.db, message); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

type sampleRequestRequest struct {
	FullName     string  `json:"fullName" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	Country      string  `json:"country" validate:"required"`
	ServiceID    *uint64 `json:"serviceId"`
	Requirements string  `json:"requirements" validate:"required"`
}

// SubmitSampleRequest stores a free-sample form submission with the pending
// status.
func (s *Service) SubmitSampleRequest(c *fiber.Ctx) error {
	body := new(sampleRequestRequest)
	if err := c.BodyParser(body); err != nil {
		return handler.JSONBadBody(c)
	}

	if fieldErrors := handler.ValidateStruct(body); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	request := &models.SampleRequest{
		FullName:     body.FullName,
		Phone:        body.Phone,
		Country:      body.Country,
		ServiceID:    body.ServiceID,
		Requirements: body.Requirements,
		Status:       models.SampleStatusPending,
	}

	if err := inbox.CreateSampleRequest(s.db, request); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
