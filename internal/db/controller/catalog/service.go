// Package catalog provides storage operations for services and their packages.
package catalog

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// ServicePatch carries a partial service update. Only non-nil fields are applied.
type ServicePatch struct {
	Title            *string            `json:"title"`
	Slug             *string            `json:"slug"`
	Description      *string            `json:"description"`
	ShortDescription *string            `json:"shortDescription"`
	ImageURL         *string            `json:"imageUrl"`
	Price            *string            `json:"price"`
	Category         *string            `json:"category"`
	Features         *models.StringList `json:"features"`
	CompletedOrders  *int               `json:"completedOrders"`
	OrderIndex       *int               `json:"orderIndex"`
	IsActive         *bool              `json:"isActive"`
	MetaTitle        *string            `json:"metaTitle"`
	MetaDescription  *string            `json:"metaDescription"`
}

func (p *ServicePatch) updates() map[string]interface{} {
	out := map[string]interface{}{}

	if p.Title != nil {
		out["title"] = *p.Title
	}
	if p.Slug != nil {
		out["slug"] = *p.Slug
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.ShortDescription != nil {
		out["short_description"] = *p.ShortDescription
	}
	if p.ImageURL != nil {
		out["image_url"] = *p.ImageURL
	}
	if p.Price != nil {
		out["price"] = *p.Price
	}
	if p.Category != nil {
		out["category"] = *p.Category
	}
	if p.Features != nil {
		out["features"] = *p.Features
	}
	if p.CompletedOrders != nil {
		out["completed_orders"] = *p.CompletedOrders
	}
	if p.OrderIndex != nil {
		out["order_index"] = *p.OrderIndex
	}
	if p.IsActive != nil {
		out["is_active"] = *p.IsActive
	}
	if p.MetaTitle != nil {
		out["meta_title"] = *p.MetaTitle
	}
	if p.MetaDescription != nil {
		out["meta_description"] = *p.MetaDescription
	}

	return out
}

// ListServices returns all services ordered by ascending order index.
func ListServices(gdb *gorm.DB) ([]models.Service, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var services []models.Service
	if err := gdb.Order("order_index asc").Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// GetServiceBySlug retrieves a service by slug. Does not filter on IsActive.
func GetServiceBySlug(gdb *gorm.DB, slug string) (*models.Service, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var service models.Service
	if err := gdb.Where("slug = ?", slug).First(&service).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &service, nil
}

// GetServiceByID retrieves a service by id.
func GetServiceByID(gdb *gorm.DB, id uint64) (*models.Service, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var service models.Service
	if err := gdb.First(&service, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &service, nil
}

// CreateService inserts a new service. Duplicate slugs surface as db.ErrConflict.
func CreateService(gdb *gorm.DB, service *models.Service) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(service).Error)
}

// UpdateService applies a partial update and returns the refreshed row.
func UpdateService(gdb *gorm.DB, id uint64, patch *ServicePatch) (*models.Service, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.Service{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetServiceByID(gdb, id)
}

// DeleteService removes a service by id. Deleting an absent id is a no-op.
// Packages and sample requests referencing the service keep their dangling ids.
func DeleteService(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.Service{}, id).Error
}
