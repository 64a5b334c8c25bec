// Package setting provides storage operations for the site settings
// key-value store.
package setting

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// List returns all settings rows ordered by key.
func List(gdb *gorm.DB) ([]models.SiteSetting, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var settings []models.SiteSetting
	if err := gdb.Order("key asc").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Get retrieves a single setting by key.
func Get(gdb *gorm.DB, key string) (*models.SiteSetting, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var setting models.SiteSetting
	if err := gdb.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &setting, nil
}

// AsMap returns all settings flattened into a key-value map.
func AsMap(gdb *gorm.DB) (map[string]string, error) {
	settings, err := List(gdb)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out, nil
}

// UpsertMany inserts or overwrites the given settings in one transaction, so
// a failed bulk save never leaves a partial update behind.
func UpsertMany(gdb *gorm.DB, settings map[string]string) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	if len(settings) == 0 {
		return nil
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		for key, value := range settings {
			setting := models.SiteSetting{Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&setting).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
