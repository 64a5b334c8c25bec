package inbox

import (
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

// ListSampleRequests returns all sample requests, newest first.
func ListSampleRequests(gdb *gorm.DB) ([]models.SampleRequest, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var requests []models.SampleRequest
	if err := gdb.Order("id desc").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// GetSampleRequestByID retrieves a sample request by id.
func GetSampleRequestByID(gdb *gorm.DB, id uint64) (*models.SampleRequest, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	var request models.SampleRequest
	if err := gdb.First(&request, id).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &request, nil
}

// CreateSampleRequest inserts a free-sample form submission.
func CreateSampleRequest(gdb *gorm.DB, request *models.SampleRequest) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return db.Translate(gdb.Create(request).Error)
}

// UpdateSampleRequestStatus moves a sample request through its workflow and
// returns the refreshed row.
func UpdateSampleRequestStatus(gdb *gorm.DB, id uint64, status string) (*models.SampleRequest, error) {
	if gdb == nil {
		return nil, db.ErrDBNil
	}

	result := gdb.Model(&models.SampleRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, db.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, db.ErrNotFound
	}

	return GetSampleRequestByID(gdb, id)
}

// DeleteSampleRequest removes a sample request by id. Deleting an absent id
// is a no-op.
func DeleteSampleRequest(gdb *gorm.DB, id uint64) error {
	if gdb == nil {
		return db.ErrDBNil
	}

	return gdb.Delete(&models.SampleRequest{}, id).Error
}

// CountSampleRequests returns the total and pending sample request counts.
func CountSampleRequests(gdb *gorm.DB) (total, pending int64, err error) {
	if gdb == nil {
		return 0, 0, db.ErrDBNil
	}

	if err := gdb.Model(&models.SampleRequest{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err := gdb.Model(&models.SampleRequest{}).Where("status = ?", models.SampleStatusPending).Count(&pending).Error; err != nil {
		return 0, 0, err
	}

	return total, pending, nil
}
