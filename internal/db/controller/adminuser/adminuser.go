// Package adminuser provides storage operations for admin accounts.
package adminuser

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// GetByEmail retrieves an admin by login email.
func GetByEmail(gdb *gorm.DB, email string) (*models.Admin, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var admin models.Admin
	if err := gdb.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &admin, nil
}

// GetByID retrieves an admin by id.
func GetByID(gdb *gorm.DB, id uint64) (*models.Admin, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var admin models.Admin
	if err := gdb.First(&admin, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &admin, nil
}

// Create inserts a new admin account. The password must already be hashed.
func Create(gdb *gorm.DB, admin *models.Admin) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(admin).Error)
}

// Update applies the given column updates to an admin and returns the
// refreshed row.
func Update(gdb *gorm.DB, id uint64, updates map[string]interface{}) (*models.Admin, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	if len(updates) > 0 {
		result := gdb.Model(&models.Admin{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetByID(gdb, id)
}

// Count returns the number of admin accounts.
func Count(gdb *gorm.DB) (int64, error) {
	if gdb == nil {
		return 0, db.ErrDBNil
	}

	var count int64
	if err := gdb.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
