// Package inbox provides storage operations for contact messages and sample
// requests submitted through the public site.
package inbox

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// ListMessages returns all contact messages, newest first.
func ListMessages(gdb *gorm.DB) ([]models.ContactMessage, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var messages []models.ContactMessage
	if err := gdb.Order("id desc").Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

// GetMessageByID retrieves a contact message by id.
func GetMessageByID(gdb *gorm.DB, id uint64) (*models.ContactMessage, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var message models.ContactMessage
	if err := gdb.First(&message, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &message, nil
}

// CreateMessage inserts a contact form submission.
func CreateMessage(gdb *gorm.DB, message *models.ContactMessage) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(message).Error)
}

// MarkMessageRead sets the read flag on a message and returns the refreshed
// row.
func MarkMessageRead(gdb *gorm.DB, id uint64, isRead bool) (*models.ContactMessage, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	result := gdb.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", isRead)
	if result.Error != nil {
		return nil, db.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}

	return GetMessageByID(gdb, id)
}

// DeleteMessage removes a contact message by id. Deleting an absent id is a
// no-op.
func DeleteMessage(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.ContactMessage{}, id).Error
}

// CountMessages returns the total and unread contact message counts.
func CountMessages(gdb *gorm.DB) (total, unread int64, err error) {
	if gdb == nil {
		return 0, 0, db.ErrDBNil
	}

	if err := gdb.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err := gdb.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&unread).Error; err != nil {
		return 0, 0, err
	}

	return total, unread, nil
}
