// Package payment provides storage operations for payment platforms and
// their tutorial videos.
package payment

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// PlatformPatch carries a partial payment platform update. Only non-nil
// fields are applied.
type PlatformPatch struct {
	Name       *string            `json:"name"`
	Tagline    *string            `json:"tagline"`
	LogoURL    *string            `json:"logoUrl"`
	WebsiteURL *string            `json:"websiteUrl"`
	Steps      *models.StringList `json:"steps"`
	ColorClass *string            `json:"colorClass"`
	IsActive   *bool              `json:"isActive"`
	OrderIndex *int               `json:"orderIndex"`
}

func (p *PlatformPatch) updates() map[string]interface{} {
	out := map[string]interface{}{}

	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Tagline != nil {
		out["tagline"] = *p.Tagline
	}
	if p.LogoURL != nil {
		out["logo_url"] = *p.LogoURL
	}
	if p.WebsiteURL != nil {
		out["website_url"] = *p.WebsiteURL
	}
	if p.Steps != nil {
		out["steps"] = *p.Steps
	}
	if p.ColorClass != nil {
		out["color_class"] = *p.ColorClass
	}
	if p.IsActive != nil {
		out["is_active"] = *p.IsActive
	}
	if p.OrderIndex != nil {
		out["order_index"] = *p.OrderIndex
	}

	return out
}

// ListPlatforms returns all payment platforms ordered by ascending order
// index.
func ListPlatforms(gdb *gorm.DB) ([]models.PaymentPlatform, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var platforms []models.PaymentPlatform
	if err := gdb.Order("order_index asc").Find(&platforms).Error; err != nil {
		return nil, err
	}

	return platforms, nil
}

// GetPlatformByID retrieves a payment platform by id.
func GetPlatformByID(gdb *gorm.DB, id uint64) (*models.PaymentPlatform, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var platform models.PaymentPlatform
	if err := gdb.First(&platform, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &platform, nil
}

// CreatePlatform inserts a new payment platform.
func CreatePlatform(gdb *gorm.DB, platform *models.PaymentPlatform) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(platform).Error)
}

// UpdatePlatform applies a partial update and returns the refreshed row.
func UpdatePlatform(gdb *gorm.DB, id uint64, patch *PlatformPatch) (*models.PaymentPlatform, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.PaymentPlatform{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetPlatformByID(gdb, id)
}

// DeletePlatform removes a payment platform by id. Deleting an absent id is
// a no-op. Videos referencing the platform keep their dangling ids.
func DeletePlatform(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.PaymentPlatform{}, id).Error
}
