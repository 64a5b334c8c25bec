// Package daemon boots the application: database, schema, seed data,
// session storage and the web service.
package daemon

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/dsn"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start(addr string) error {
	go d.webService.WaitShutdown()

	return d.webService.Start(addr)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	if err = Bootstrap(gdb); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	return &Daemon{
		webService: web.New(cfg, gdb, sessionStorage(cfg)),
	}
}

// Addr returns the listen address from the configuration.
func Addr(cfg *config.Config) string {
	return fmt.Sprintf(":%d", cfg.Webserver.Port)
}

// sessionStorage picks the fiber session storage backend matching the
// database driver. The sqlite driver keeps sessions in memory.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.Driver {
	case config.DriverMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         "sessions",
		})
	case config.DriverPostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg),
			Table:         "sessions",
		})
	default:
		return nil
	}
}
