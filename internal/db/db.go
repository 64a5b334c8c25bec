// Package db opens the relational store and migrates the content schema.
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/dsn"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// Open connects to the database selected by the configuration.
// TranslateError is enabled so unique violations surface as gorm.ErrDuplicatedKey
// regardless of driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrDBNil
	}

	var dialector gorm.Dialector

	switch cfg.DB.Driver {
	case config.DriverMySQL:
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	case config.DriverPostgres:
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DB.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return gdb, nil
}

// Migrate creates or updates the schema for all content tables.
func Migrate(gdb *gorm.DB) error {
	if gdb == nil {
		return ErrDBNil
	}

	return gdb.AutoMigrate(
		&models.Admin{},
		&models.Service{},
		&models.Package{},
		&models.Project{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.TeamMember{},
		&models.ContactMessage{},
		&models.SampleRequest{},
		&models.SiteSetting{},
		&models.PaymentPlatform{},
		&models.PaymentVideo{},
	)
}
