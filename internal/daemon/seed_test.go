package daemon

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/adminuser"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	return gdb
}

func countRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, gdb.Model(model).Count(&count).Error)

	return count
}

func TestSeedIfEmptyPopulatesDemoDataset(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, SeedIfEmpty(gdb))

	assert.EqualValues(t, 2, countRows(t, gdb, &models.Admin{}))
	assert.EqualValues(t, 6, countRows(t, gdb, &models.Service{}))
	assert.EqualValues(t, 6, countRows(t, gdb, &models.Package{}))
	assert.EqualValues(t, 5, countRows(t, gdb, &models.Project{}))
	assert.EqualValues(t, 3, countRows(t, gdb, &models.BlogPost{}))
	assert.EqualValues(t, 6, countRows(t, gdb, &models.Testimonial{}))
	assert.EqualValues(t, 6, countRows(t, gdb, &models.TeamMember{}))
	assert.EqualValues(t, 4, countRows(t, gdb, &models.PaymentPlatform{}))
	assert.EqualValues(t, 2, countRows(t, gdb, &models.PaymentVideo{}))
	assert.EqualValues(t, 18, countRows(t, gdb, &models.SiteSetting{}))
}

func TestSeedIfEmptySetsWorkingCredentials(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, SeedIfEmpty(gdb))

	admin, err := adminuser.GetByEmail(gdb, SuperAdminEmail)
	require.NoError(t, err)
	assert.True(t, admin.IsSuperAdmin)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)
	assert.True(t, admin.VerifyPassword("admin123"))
	assert.False(t, admin.VerifyPassword("wrong"))
}

func TestSeedIfEmptyLinksPackagesToSeededServices(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, SeedIfEmpty(gdb))

	var packages []models.Package
	require.NoError(t, gdb.Find(&packages).Error)

	for _, pkg := range packages {
		require.NotNil(t, pkg.ServiceID, "package %q has no service", pkg.Name)

		var service models.Service
		require.NoError(t, gdb.First(&service, *pkg.ServiceID).Error)
	}
}

func TestSeedIfEmptySkipsNonEmptyDatabase(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, adminuser.Create(gdb, &models.Admin{
		Email:    "existing@example.com",
		Password: models.HashPassword("x"),
		Name:     "Existing",
	}))

	require.NoError(t, SeedIfEmpty(gdb))

	assert.EqualValues(t, 1, countRows(t, gdb, &models.Admin{}))
	assert.EqualValues(t, 0, countRows(t, gdb, &models.Service{}))
}

func TestEnsureAdminsCreatesMissingOnly(t *testing.T) {
	gdb := setupTestDB(t)

	require.NoError(t, adminuser.Create(gdb, &models.Admin{
		Email:    SuperAdminEmail,
		Password: models.HashPassword("custompass"),
		Name:     "Changed Name",
		Role:     models.RoleSuperAdmin,
	}))

	require.NoError(t, EnsureAdmins(gdb))

	assert.EqualValues(t, 2, countRows(t, gdb, &models.Admin{}))

	// existing account untouched
	admin, err := adminuser.GetByEmail(gdb, SuperAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, "Changed Name", admin.Name)
	assert.True(t, admin.VerifyPassword("custompass"))

	// missing one created with the default password
	admin, err = adminuser.GetByEmail(gdb, AdminEmail)
	require.NoError(t, err)
	assert.True(t, admin.VerifyPassword("admin123"))
}

func TestBootstrapChoosesSeedOrEnsure(t *testing.T) {
	// empty database gets the full demo dataset
	gdb := setupTestDB(t)
	require.NoError(t, Bootstrap(gdb))
	assert.EqualValues(t, 6, countRows(t, gdb, &models.Service{}))

	// populated database only gets the admin repair
	gdb = setupTestDB(t)
	require.NoError(t, adminuser.Create(gdb, &models.Admin{
		Email:    "someone@example.com",
		Password: models.HashPassword("x"),
		Name:     "Someone",
	}))
	require.NoError(t, Bootstrap(gdb))
	assert.EqualValues(t, 0, countRows(t, gdb, &models.Service{}))
	assert.EqualValues(t, 3, countRows(t, gdb, &models.Admin{}))
}
