// Package inbox implements the admin endpoints for contact messages and
// sample requests. There is no create here: both come in through the
// public forms.
package inbox

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/inbox"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Paths of the admin inbox route groups.
const (
	MessagesPath       = "/api/admin/messages"
	SampleRequestsPath = "/api/admin/sample-requests"
)

// Service is the admin inbox handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin inbox handler.
var Handler = Service{}

// Init initializes the admin inbox handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(MessagesPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListMessages)
		router.Patch(handler.IDPath, s.UpdateMessage)
		router.Delete(handler.IDPath, s.DeleteMessage)
	})

	app.Route(SampleRequestsPath, func(router fiber.Router) {
		router.Use(authmw.RequireAdmin)
		router.Get(handler.RootPath, s.ListSampleRequests)
		router.Patch(handler.IDPath, s.UpdateSampleRequest)
		router.Delete(handler.IDPath, s.DeleteSampleRequest)
	})

	return nil
}

// ListMessages returns all contact messages, newest first.
func (s *Service) ListMessages(c *fiber.Ctx) error {
	messages, err := inbox.ListMessages(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(messages)
}

type messagePatch struct {
	IsRead *bool `json:"isRead" validate:"required"`
}

// UpdateMessage toggles the read flag of a contact message.
func (s *Service) UpdateMessage(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(messagePatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	if fieldErrors := handler.ValidateStruct(patch); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	message, err := inbox.MarkMessageRead(s.db, id, *patch.IsRead)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(message)
}

// DeleteMessage removes a contact message.
func (s *Service) DeleteMessage(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := inbox.DeleteMessage(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListSampleRequests returns all sample requests, newest first.
func (s *Service) ListSampleRequests(c *fiber.Ctx) error {
	requests, err := inbox.ListSampleRequests(s.db)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(requests)
}

type sampleRequestPatch struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed completed"`
}

// UpdateSampleRequest moves a sample request through its status workflow.
func (s *Service) UpdateSampleRequest(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	patch := new(sampleRequestPatch)
	if err := c.BodyParser(patch); err != nil {
		return handler.JSONBadBody(c)
	}

	if fieldErrors := handler.ValidateStruct(patch); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	request, err := inbox.UpdateSampleRequestStatus(s.db, id, patch.Status)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(request)
}

// DeleteSampleRequest removes a sample request.
func (s *Service) DeleteSampleRequest(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := inbox.DeleteSampleRequest(s.db, id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
