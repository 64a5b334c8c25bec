// Package upload implements the authenticated image upload endpoint.
//
// Files land in the configured upload directory with a generated name and
// are served back under the /uploads static prefix.
package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/uniuri"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/handler"
	authmw "github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/middleware/auth"
)

// Path is the path of the upload endpoint.
const Path = "/api/upload"

// MaxFileSize is the upload size cap.
const MaxFileSize = 10 << 20 // 10 MiB

// tokenLen is the random token length in generated file names.
const tokenLen = 8

// allowedExtensions are the accepted image file extensions, lower case with
// the leading dot.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
}

// Service is the upload handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the upload handler.
var Handler = Service{}

// Init initializes the upload handler and makes sure the upload directory
// exists.
func (s *Service) Init(app *fiber.App, cfg *config.Config, gdb *gorm.DB) error {
	if app == nil || cfg == nil || gdb == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = gdb

	if err := os.MkdirAll(cfg.Webserver.UploadDir, 0o755); err != nil {
		return errors.Wrap(err, "create upload dir")
	}

	app.Post(Path, authmw.RequireAdmin, s.Post)

	return nil
}

// Post accepts a multipart form with a single `file` field and stores it.
func (s *Service) Post(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return handler.JSONMessage(c, fiber.StatusBadRequest, "Missing file")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return handler.JSONMessage(c, fiber.StatusUnsupportedMediaType, "Unsupported file type")
	}

	if fileHeader.Size > MaxFileSize {
		return handler.JSONMessage(c, fiber.StatusRequestEntityTooLarge, "File too large")
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uniuri.NewLen(tokenLen), ext)
	dest := filepath.Join(s.cfg.Webserver.UploadDir, name)

	if err := c.SaveFile(fileHeader, dest); err != nil {
		log.Error().Err(err).Str("dest", dest).Msg("failed to store upload")
		return handler.JSONError(c, err)
	}

	return c.JSON(fiber.Map{"url": "/uploads/" + name})
}
