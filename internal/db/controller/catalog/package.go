package catalog

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// PackagePatch carries a partial package update. Only non-nil fields are applied.
type PackagePatch struct {
	Name         *string            `json:"name"`
	ServiceID    *uint64            `json:"serviceId"`
	Price        *string            `json:"price"`
	Description  *string            `json:"description"`
	Features     *models.StringList `json:"features"`
	DeliveryTime *string            `json:"deliveryTime"`
	IsPopular    *bool              `json:"isPopular"`
	IsActive     *bool              `json:"isActive"`
	OrderIndex   *int               `json:"orderIndex"`
}

func (p *PackagePatch) updates() map[string]interface{} {
	out := map[string]interface{}{}

	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.ServiceID != nil {
		out["service_id"] = *p.ServiceID
	}
	if p.Price != nil {
		out["price"] = *p.Price
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.Features != nil {
		out["features"] = *p.Features
	}
	if p.DeliveryTime != nil {
		out["delivery_time"] = *p.DeliveryTime
	}
	if p.IsPopular != nil {
		out["is_popular"] = *p.IsPopular
	}
	if p.IsActive != nil {
		out["is_active"] = *p.IsActive
	}
	if p.OrderIndex != nil {
		out["order_index"] = *p.OrderIndex
	}

	return out
}

// ListPackages returns all packages ordered by ascending order index.
func ListPackages(gdb *gorm.DB) ([]models.Package, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var packages []models.Package
	if err := gdb.Order("order_index asc").Find(&packages).Error; err != nil {
		return nil, err
	}

	return packages, nil
}

// GetPackageByID retrieves a package by id.
func GetPackageByID(gdb *gorm.DB, id uint64) (*models.Package, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var pkg models.Package
	if err := gdb.First(&pkg, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &pkg, nil
}

// CreatePackage inserts a new package.
func CreatePackage(gdb *gorm.DB, pkg *models.Package) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(pkg).Error)
}

// UpdatePackage applies a partial update and returns the refreshed row.
func UpdatePackage(gdb *gorm.DB, id uint64, patch *PackagePatch) (*models.Package, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.Package{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetPackageByID(gdb, id)
}

// DeletePackage removes a package by id. Deleting an absent id is a no-op.
func DeletePackage(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.Package{}, id).Error
}
