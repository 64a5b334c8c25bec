// Package blog provides storage operations for blog posts.
package blog

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// PostPatch carries a partial blog post update. Only non-nil fields are applied.
type PostPatch struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	ImageURL        *string `json:"imageUrl"`
	Category        *string `json:"category"`
	Author          *string `json:"author"`
	IsPublished     *bool   `json:"isPublished"`
	PublishedAt     *string `json:"publishedAt"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

func (p *PostPatch) updates() map[string]interface{} {
	out := map[string]interface{}{}

	if p.Title != nil {
		out["title"] = *p.Title
	}
	if p.Slug != nil {
		out["slug"] = *p.Slug
	}
	if p.Content != nil {
		out["content"] = *p.Content
	}
	if p.Excerpt != nil {
		out["excerpt"] = *p.Excerpt
	}
	if p.ImageURL != nil {
		out["image_url"] = *p.ImageURL
	}
	if p.Category != nil {
		out["category"] = *p.Category
	}
	if p.Author != nil {
		out["author"] = *p.Author
	}
	if p.IsPublished != nil {
		out["is_published"] = *p.IsPublished
	}
	if p.PublishedAt != nil {
		out["published_at"] = *p.PublishedAt
	}
	if p.MetaTitle != nil {
		out["meta_title"] = *p.MetaTitle
	}
	if p.MetaDescription != nil {
		out["meta_description"] = *p.MetaDescription
	}

	return out
}

// List returns blog posts, newest first. With publishedOnly set, drafts are
// excluded (the public view).
func List(gdb *gorm.DB, publishedOnly bool) ([]models.BlogPost, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	tx := gdb.Order("id desc")
	if publishedOnly {
		tx = tx.Where("is_published = ?", true)
	}

	var posts []models.BlogPost
	if err := tx.Find(&posts).Error; err != nil {
		return nil, err
	}

	return posts, nil
}

// GetBySlug retrieves a post by slug. Does not filter on IsPublished.
func GetBySlug(gdb *gorm.DB, slug string) (*models.BlogPost, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var post models.BlogPost
	if err := gdb.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &post, nil
}

// GetByID retrieves a post by id.
func GetByID(gdb *gorm.DB, id uint64) (*models.BlogPost, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var post models.BlogPost
	if err := gdb.First(&post, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &post, nil
}

// Create inserts a new post. Duplicate slugs surface as db.ErrConflict.
func Create(gdb *gorm.DB, post *models.BlogPost) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(post).Error)
}

// Update applies a partial update and returns the refreshed row.
func Update(gdb *gorm.DB, id uint64, patch *PostPatch) (*models.BlogPost, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.BlogPost{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetByID(gdb, id)
}

// Delete removes a post by id. Deleting an absent id is a no-op.
func Delete(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.BlogPost{}, id).Error
}
