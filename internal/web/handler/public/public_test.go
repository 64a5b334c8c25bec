package public

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/controller/inbox"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
)

func newTestService(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	app := fiber.New()

	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}

	var s Service
	require.NoError(t, s.Init(app, cfg, gdb))

	return app, gdb
}

func getJSON(t *testing.T, app *fiber.App, target string, out interface{}) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func TestListServicesFiltersInactive(t *testing.T) {
	app, gdb := newTestService(t)

	require.NoError(t, gdb.Create(&models.Service{Title: "Visible", Slug: "visible", Description: "d", IsActive: true, OrderIndex: 2}).Error)
	require.NoError(t, gdb.Create(&models.Service{Title: "Hidden", Slug: "hidden", Description: "d", IsActive: false, OrderIndex: 1}).Error)

	var services []models.Service
	status := getJSON(t, app, "/api/services", &services)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, services, 1)
	assert.Equal(t, "Visible", services[0].Title)
}

func TestGetServiceBySlugIgnoresActiveFlag(t *testing.T) {
	app, gdb := newTestService(t)

	require.NoError(t, gdb.Create(&models.Service{Title: "Hidden", Slug: "hidden", Description: "d", IsActive: false}).Error)

	var service models.Service
	status := getJSON(t, app, "/api/services/hidden", &service)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hidden", service.Title)
}

func TestGetServiceMissingSlug(t *testing.T) {
	app, _ := newTestService(t)

	assert.Equal(t, http.StatusNotFound, getJSON(t, app, "/api/services/nope", nil))
}

func TestListBlogFiltersDrafts(t *testing.T) {
	app, gdb := newTestService(t)

	require.NoError(t, gdb.Create(&models.BlogPost{Title: "Live", Slug: "live", Content: "c", IsPublished: true}).Error)
	require.NoError(t, gdb.Create(&models.BlogPost{Title: "Draft", Slug: "draft", Content: "c", IsPublished: false}).Error)

	var posts []models.BlogPost
	status := getJSON(t, app, "/api/blog", &posts)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, posts, 1)
	assert.Equal(t, "Live", posts[0].Title)

	// the draft is still reachable by slug (admin preview)
	var post models.BlogPost
	status = getJSON(t, app, "/api/blog/draft", &post)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Draft", post.Title)
}

func TestSettingsFlatMap(t *testing.T) {
	app, gdb := newTestService(t)

	require.NoError(t, gdb.Create(&models.SiteSetting{Key: "site_name", Value: "Digital Tech Group"}).Error)

	var settings map[string]string
	status := getJSON(t, app, "/api/settings", &settings)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Digital Tech Group", settings["site_name"])
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestSubmitContactStoresUnreadMessage(t *testing.T) {
	app, gdb := newTestService(t)

	resp := postJSON(t, app, "/api/contact", fiber.Map{
		"name":    "Jane",
		"email":   "jane@x.com",
		"subject": "Hi",
		"message": "Test",
	})
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out["ok"])

	messages, err := inbox.ListMessages(gdb)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Hi", messages[0].Subject)
	assert.False(t, messages[0].IsRead)
}

func TestSubmitContactValidation(t *testing.T) {
	app, gdb := newTestService(t)

	resp := postJSON(t, app, "/api/contact", fiber.Map{
		"name":  "Jane",
		"email": "not-an-email",
	})
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Invalid input", out.Message)

	fields := map[string]bool{}
	for _, fe := range out.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["subject"])
	assert.True(t, fields["message"])

	// nothing was stored
	messages, err := inbox.ListMessages(gdb)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSubmitSampleRequest(t *testing.T) {
	app, gdb := newTestService(t)

	resp := postJSON(t, app, "/api/sample-request", fiber.Map{
		"fullName":     "Jane Doe",
		"phone":        "+1 555 000",
		"country":      "US",
		"requirements": "logo sample",
	})
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	requests, err := inbox.ListSampleRequests(gdb)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.SampleStatusPending, requests[0].Status)
	assert.Nil(t, requests[0].ServiceID)
}

func TestSubmitSampleRequestMissingRequirements(t *testing.T) {
	app, _ := newTestService(t)

	resp := postJSON(t, app, "/api/sample-request", fiber.Map{
		"fullName": "Jane Doe",
		"phone":    "+1 555 000",
		"country":  "US",
	})
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "requirements", out.Errors[0].Field)
}
