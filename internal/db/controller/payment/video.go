package payment

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// VideoPatch carries a partial payment video update. Only non-nil fields are
// applied.
type VideoPatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	PlatformID   *uint64 `json:"platformId"`
	IsActive     *bool   `json:"isActive"`
	OrderIndex   *int    `json:"orderIndex"`
}

func (p *VideoPatch) updates() map[string]interface{} {
	out := map[string]interface{}{}

	if p.Title != nil {
		out["title"] = *p.Title
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.VideoURL != nil {
		out["video_url"] = *p.VideoURL
	}
	if p.ThumbnailURL != nil {
		out["thumbnail_url"] = *p.ThumbnailURL
	}
	if p.PlatformID != nil {
		out["platform_id"] = *p.PlatformID
	}
	if p.IsActive != nil {
		out["is_active"] = *p.IsActive
	}
	if p.OrderIndex != nil {
		out["order_index"] = *p.OrderIndex
	}

	return out
}

// ListVideos returns all payment videos ordered by ascending order index.
func ListVideos(gdb *gorm.DB) ([]models.PaymentVideo, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var videos []models.PaymentVideo
	if err := gdb.Order("order_index asc").Find(&videos).Error; err != nil {
		return nil, err
	}

	return videos, nil
}

// GetVideoByID retrieves a payment video by id.
func GetVideoByID(gdb *gorm.DB, id uint64) (*models.PaymentVideo, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var video models.PaymentVideo
	if err := gdb.First(&video, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &video, nil
}

// CreateVideo inserts a new payment video.
func CreateVideo(gdb *gorm.DB, video *models.PaymentVideo) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(video).Error)
}

// UpdateVideo applies a partial update and returns the refreshed row.
func UpdateVideo(gdb *gorm.DB, id uint64, patch *VideoPatch) (*models.PaymentVideo, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	updates := patch.updates()
	if len(updates) > 0 {
		result := gdb.Model(&models.PaymentVideo{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, db.Translate(result.Error)
		}

		if result.RowsAffected == 0 {
			return nil, db.ErrNotFound
		}
	}

	return GetVideoByID(gdb, id)
}

// DeleteVideo removes a payment video by id. Deleting an absent id is a
// no-op.
func DeleteVideo(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.PaymentVideo{}, id).Error
}
