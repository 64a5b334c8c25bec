// Package people provides storage operations for testimonials and team members.
package people

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// TestimonialPatch carries a partial testimonial update. Only non-nil fields
// are applied.
type TestimonialPatch struct {
	ClientName *string `json:"clientName"`
	Company    *string `json:"company"`
	Review     *string `json:"review"`
	Rating     *int    `json:"rating"`
	AvatarURL  *string `json:"avatarUrl"`
	IsActive   *bool   `json:"isActive"`
	OrderIndex *int    `json:"orderIndex"`
}

func (p *TestimonialPatch) updates() map[string]interface{} {
	out := map[string]interface{}{}

	if p.ClientName != nil {
		out["client_name"] = *p.ClientName
	}
	if p.Company != nil {
		out["company"] = *p.Company
	}
	if p.Review != nil {
		out["review"] = *p.Review
	}
	if p.Rating != nil {
		out["rating"] = *p.Rating
	}
	if p.AvatarURL != nil {
		out["avatar_url"] = *p.AvatarURL
	}
	if p.IsActive != nil {
		out["is_active"] = *p.IsActive
	}
	if p.OrderIndex != nil {
		out["order_index"] = *p.OrderIndex
	}

	return out
}

// ListTestimonials returns all testimonials ordered by ascending order index.
func ListTestimonials(gdb *gorm.DB) ([]models.Testimonial, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var testimonials []models.Testimonial
	if err := gdb.Order("order_index asc").Find(&testimonials).Error; err != nil {
		return nil, err
	}

	return testimonials, nil
}

// GetTestimonialByID retrieves a testimonial by id.
func GetTestimonialByID(gdb *gorm.DB, id uint64) (*models.Testimonial, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var testimonial models.Testimonial
	if err := gdb.First(&testimonial, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &testimonial, nil
}

// CreateTestimonial inserts a new testimonial.
func CreateTestimonial(gdb *gorm.DB, testimonial *models.Testimonial) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(testimonial).Error)
}

// UpdateTestimonial applies a partial update and returns the refreshed row.
func UpdateTestimonial(gdb *gorm.DB, id uint64, patch *TestimonialPatch) (*models.Testimonial, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.Testimonial{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetTestimonialByID(gdb, id)
}

// DeleteTestimonial removes a testimonial by id. Deleting an absent id is a
// no-op.
func DeleteTestimonial(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.Testimonial{}, id).Error
}
