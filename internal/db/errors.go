package db

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when a row lookup by id or slug misses.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on unique constraint violations
	// (duplicate slug, email or setting key).
	ErrConflict = errors.New("record already exists")
)

// Translate maps gorm errors to the domain error taxonomy.
// Unknown errors pass through unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
