package stats

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")

	err = gdb.AutoMigrate(
		&models.Service{},
		&models.Project{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.SampleRequest{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return gdb
}

func TestGetDashboardEmpty(t *testing.T) {
	gdb := setupTestDB(t)

	d, err := GetDashboard(gdb)
	require.NoError(t, err)
	assert.Equal(t, &Dashboard{}, d)
}

func TestGetDashboardCounts(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, gdb.Create(&models.Service{Title: "s", Slug: "s", Description: "d"}).Error)
	require.NoError(t, gdb.Create(&models.Project{Title: "p", Slug: "p", Description: "d"}).Error)
	require.NoError(t, gdb.Create(&models.BlogPost{Title: "b", Slug: "b", Content: "c"}).Error)
	require.NoError(t, gdb.Create(&models.Testimonial{ClientName: "c", Review: "r"}).Error)

	require.NoError(t, gdb.Create(&models.ContactMessage{Name: "n", Email: "e@x.com", Subject: "s", Message: "m"}).Error)
	require.NoError(t, gdb.Create(&models.ContactMessage{Name: "n", Email: "e@x.com", Subject: "s", Message: "m", IsRead: true}).Error)

	require.NoError(t, gdb.Create(&models.SampleRequest{FullName: "f", Phone: "1", Country: "US", Requirements: "r", Status: models.SampleStatusPending}).Error)
	require.NoError(t, gdb.Create(&models.SampleRequest{FullName: "f", Phone: "1", Country: "US", Requirements: "r", Status: models.SampleStatusCompleted}).Error)

	d, err := GetDashboard(gdb)
	require.NoError(t, err)
	assert.EqualValues(t, 1, d.TotalServices)
	assert.EqualValues(t, 1, d.TotalProjects)
	assert.EqualValues(t, 1, d.TotalBlogPosts)
	assert.EqualValues(t, 1, d.TotalTestimonials)
	assert.EqualValues(t, 2, d.TotalMessages)
	assert.EqualValues(t, 1, d.UnreadMessages)
	assert.EqualValues(t, 2, d.TotalSampleRequests)
	assert.EqualValues(t, 1, d.PendingSampleReqs)
}

func TestGetDashboardNilDB(t *testing.T) {
	_, err := GetDashboard(nil)
	assert.ErrorIs(t, err, db.ErrDBNil)
}
