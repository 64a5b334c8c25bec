// Package authn implements the admin authentication endpoints: login,
// logout, the current-admin lookup and profile updates.
package authn

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/adminuser"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/session"
)

// Path is the base path of the admin auth endpoints.
const Path = "/api/admin"

// Service is the auth handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the auth handler.
var Handler = Service{}

// Init initializes the auth handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	app.Route(Path, func(router fiber.Router) {
		router.Post("/login", s.Login)
		router.Post("/logout", s.Logout)
		router.Get("/me", authmw.RequireAdmin, s.Me)
		router.Patch("/profile", authmw.RequireAdmin, s.UpdateProfile)
	})

	return nil
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the admin login submission and issues the session cookie.
func (s *Service) Login(c *fiber.Ctx) error {
	body := new(loginRequest)
	if err := c.BodyParser(body); err != nil {
		return handler.JSONBadBody(c)
	}

	if fieldErrors := handler.ValidateStruct(body); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	admin, err := adminuser.GetByEmail(s.db, body.Email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return handler.JSONMessage(c, fiber.StatusUnauthorized, "Invalid credentials")
		}

		return handler.JSONError(c, err)
	}

	if !admin.VerifyPassword(body.Password) {
		return handler.JSONMessage(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return handler.JSONError(c, err)
	}

	sessData := &session.Data{AdminID: admin.ID}
	if err = sessData.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return handler.JSONError(c, err)
	}

	c.Cookie(s.sessionCookie(sessionID, int(s.cfg.Webserver.Session.ExpiryTime.Seconds())))

	return c.JSON(admin)
}

// Logout destroys the session. Logging out without a session still succeeds.
func (s *Service) Logout(c *fiber.Ctx) error {
	if sessionID := c.Cookies(session.CookieName); sessionID != "" {
		if err := session.Destroy(sessionID); err != nil {
			log.Warn().Err(err).Msg("failed to destroy session")
		}
	}

	// expire the cookie
	c.Cookie(s.sessionCookie("", -1))

	return c.JSON(fiber.Map{"ok": true})
}

// Me returns the authenticated admin.
func (s *Service) Me(c *fiber.Ctx) error {
	admin, err := adminuser.GetByID(s.db, authmw.AdminID(c))
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(admin)
}

type profileRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	AvatarURL       *string `json:"avatarUrl"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" validate:"omitempty,min=6"`
}

// UpdateProfile applies partial profile changes. A password change requires
// the current password to match.
func (s *Service) UpdateProfile(c *fiber.Ctx) error {
	body := new(profileRequest)
	if err := c.BodyParser(body); err != nil {
		return handler.JSONBadBody(c)
	}

	if fieldErrors := handler.ValidateStruct(body); fieldErrors != nil {
		return handler.JSONInvalidInput(c, fieldErrors)
	}

	admin, err := adminuser.GetByID(s.db, authmw.AdminID(c))
	if err != nil {
		return handler.JSONError(c, err)
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.AvatarURL != nil {
		updates["avatar_url"] = *body.AvatarURL
	}

	if body.NewPassword != nil {
		if body.CurrentPassword == nil || !admin.VerifyPassword(*body.CurrentPassword) {
			return handler.JSONMessage(c, fiber.StatusBadRequest, "Invalid credentials")
		}

		updates["password"] = models.HashPassword(*body.NewPassword)
	}

	updated, err := adminuser.Update(s.db, admin.ID, updates)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(updated)
}

// sessionCookie builds the session cookie with the shared attributes.
func (s *Service) sessionCookie(value string, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		MaxAge:   maxAge,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax", // TODO: make this configurable
	}
}
