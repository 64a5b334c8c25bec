package config

import (
	"time"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/logger"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultSessionExpiry is the fixed lifetime of an admin session,
// set at issuance (no sliding window).
const DefaultSessionExpiry = 24 * time.Hour

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// DB implements database connection settings.
type DB struct {
	Driver   string // mysql, postgres or sqlite
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Extras   string // extra DSN parameters
	Path     string // sqlite database file path
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	UploadDir    string  // directory for uploaded files
	Session      Session // session settings
}
