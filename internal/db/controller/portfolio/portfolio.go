// Package portfolio provides storage operations for portfolio projects.
package portfolio

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// ProjectPatch carries a partial project update. Only non-nil fields are applied.
type ProjectPatch struct {
	Title            *string            `json:"title"`
	Slug             *string            `json:"slug"`
	Description      *string            `json:"description"`
	ShortDescription *string            `json:"shortDescription"`
	ImageURL         *string            `json:"imageUrl"`
	Category         *string            `json:"category"`
	ClientName       *string            `json:"clientName"`
	CompletionDate   *string            `json:"completionDate"`
	ProjectURL       *string            `json:"projectUrl"`
	Technologies     *models.StringList `json:"technologies"`
	IsActive         *bool              `json:"isActive"`
	MetaTitle        *string            `json:"metaTitle"`
	MetaDescription  *string            `json:"metaDescription"`
}

func (p *ProjectPatch) updates() map[string]interface{} {
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
	if p.Category != nil {
		out["category"] = *p.Category
	}
	if p.ClientName != nil {
		out["client_name"] = *p.ClientName
	}
	if p.CompletionDate != nil {
		out["completion_date"] = *p.CompletionDate
	}
	if p.ProjectURL != nil {
		out["project_url"] = *p.ProjectURL
	}
	if p.Technologies != nil {
		out["technologies"] = *p.Technologies
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

// List returns all projects, newest first.
func List(gdb *gorm.DB) ([]models.Project, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var projects []models.Project
	if err := gdb.Order("id desc").Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// GetBySlug retrieves a project by slug. Does not filter on IsActive.
func GetBySlug(gdb *gorm.DB, slug string) (*models.Project, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var project models.Project
	if err := gdb.Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &project, nil
}

// GetByID retrieves a project by id.
func GetByID(gdb *gorm.DB, id uint64) (*models.Project, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var project models.Project
	if err := gdb.First(&project, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &project, nil
}

// Create inserts a new project. Duplicate slugs surface as db.ErrConflict.
func Create(gdb *gorm.DB, project *models.Project) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(project).Error)
}

// Update applies a partial update and returns the refreshed row.
func Update(gdb *gorm.DB, id uint64, patch *ProjectPatch) (*models.Project, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.Project{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetByID(gdb, id)
}

// Delete removes a project by id. Deleting an absent id is a no-op.
func Delete(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.Project{}, id).Error
}
