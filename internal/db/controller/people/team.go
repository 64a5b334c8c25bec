package people

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// TeamMemberPatch carries a partial team member update. Only non-nil fields
// are applied.
type TeamMemberPatch struct {
	Name        *string             `json:"name"`
	Designation *string             `json:"designation"`
	Bio         *string             `json:"bio"`
	AvatarURL   *string             `json:"avatarUrl"`
	IsFounder   *bool               `json:"isFounder"`
	SocialLinks *models.SocialLinks `json:"socialLinks"`
	IsActive    *bool               `json:"isActive"`
	OrderIndex  *int                `json:"orderIndex"`
}

func (p *TeamMemberPatch) updates() map[string]interface{} {
	out := map[string]interface{}{}

	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Designation != nil {
		out["designation"] = *p.Designation
	}
	if p.Bio != nil {
		out["bio"] = *p.Bio
	}
	if p.AvatarURL != nil {
		out["avatar_url"] = *p.AvatarURL
	}
	if p.IsFounder != nil {
		out["is_founder"] = *p.IsFounder
	}
	if p.SocialLinks != nil {
		out["social_links"] = *p.SocialLinks
	}
	if p.IsActive != nil {
		out["is_active"] = *p.IsActive
	}
	if p.OrderIndex != nil {
		out["order_index"] = *p.OrderIndex
	}

	return out
}

// ListTeamMembers returns all team members ordered by ascending order index.
func ListTeamMembers(gdb *gorm.DB) ([]models.TeamMember, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var members []models.TeamMember
	if err := gdb.Order("order_index asc").Find(&members).Error; err != nil {
		return nil, err
	}

	return members, nil
}

// GetTeamMemberByID retrieves a team member by id.
func GetTeamMemberByID(gdb *gorm.DB, id uint64) (*models.TeamMember, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var member models.TeamMember
	if err := gdb.First(&member, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &member, nil
}

// CreateTeamMember inserts a new team member.
func CreateTeamMember(gdb *gorm.DB, member *models.TeamMember) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(member).Error)
}

// UpdateTeamMember applies a partial update and returns the refreshed row.
func UpdateTeamMember(gdb *gorm.DB, id uint64, patch *TeamMemberPatch) (*models.TeamMember, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.TeamMember{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetTeamMemberByID(gdb, id)
}

// DeleteTeamMember removes a team member by id. Deleting an absent id is a
// no-op.
func DeleteTeamMember(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.TeamMember{}, id).Error
}
