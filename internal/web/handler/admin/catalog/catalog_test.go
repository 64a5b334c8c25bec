package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/db/models"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/session"
)

func newTestService(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	app := fiber.New()

	session.Init(nil)

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

func adminSession(t *testing.T) string {
	t.Helper()

	sessionID, err := session.GenerateSessionID()
	require.NoError(t, err)

	sessData := &session.Data{AdminID: 1}
	require.NoError(t, sessData.Write(sessionID, time.Minute))

	return sessionID
}

func do(t *testing.T, app *fiber.App, method, target string, body interface{}, cookie string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestServicesRequireSession(t *testing.T) {
	app, _ := newTestService(t)

	for _, target := range []string{ServicesPath, PackagesPath} {
		resp := do(t, app, http.MethodGet, target, nil, "")
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
	}
}

func TestServiceCRUDRoundtrip(t *testing.T) {
	app, _ := newTestService(t)
	cookie := adminSession(t)

	// create
	resp := do(t, app, http.MethodPost, ServicesPath, fiber.Map{
		"title":       "Web Design",
		"slug":        "web-design",
		"description": "Custom sites",
		"isActive":    true,
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Service
	decode(t, resp, &created)
	require.NotZero(t, created.ID)

	// list shows it, inactive rows included
	resp = do(t, app, http.MethodGet, ServicesPath, nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var services []models.Service
	decode(t, resp, &services)
	require.Len(t, services, 1)

	// patch a single field
	resp = do(t, app, http.MethodPatch, fmt.Sprintf("%s/%d", ServicesPath, created.ID), fiber.Map{
		"title": "Web Design Pro",
	}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Service
	decode(t, resp, &updated)
	assert.Equal(t, "Web Design Pro", updated.Title)
	assert.Equal(t, "web-design", updated.Slug)
	assert.True(t, updated.IsActive)

	// delete
	resp = do(t, app, http.MethodDelete, fmt.Sprintf("%s/%d", ServicesPath, created.ID), nil, cookie)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, ServicesPath, nil, cookie)
	decode(t, resp, &services)
	assert.Empty(t, services)
}

func TestCreateServiceValidation(t *testing.T) {
	app, _ := newTestService(t)

	resp := do(t, app, http.MethodPost, ServicesPath, fiber.Map{
		"title": "No slug or description",
	}, adminSession(t))
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Invalid input", out.Message)

	fields := map[string]bool{}
	for _, fe := range out.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["slug"])
	assert.True(t, fields["description"])
}

func TestCreateServiceDuplicateSlug(t *testing.T) {
	app, _ := newTestService(t)
	cookie := adminSession(t)

	body := fiber.Map{"title": "A", "slug": "same", "description": "d"}

	resp := do(t, app, http.MethodPost, ServicesPath, body, cookie)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodPost, ServicesPath, body, cookie)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateServiceIgnoresClientID(t *testing.T) {
	app, _ := newTestService(t)

	resp := do(t, app, http.MethodPost, ServicesPath, fiber.Map{
		"id":          4242,
		"title":       "A",
		"slug":        "a",
		"description": "d",
	}, adminSession(t))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Service
	decode(t, resp, &created)
	assert.NotEqual(t, uint64(4242), created.ID)
}

func TestUpdateServiceMissing(t *testing.T) {
	app, _ := newTestService(t)

	resp := do(t, app, http.MethodPatch, ServicesPath+"/999", fiber.Map{"title": "x"}, adminSession(t))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateServiceBadID(t *testing.T) {
	app, _ := newTestService(t)

	resp := do(t, app, http.MethodPatch, ServicesPath+"/abc", fiber.Map{"title": "x"}, adminSession(t))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPackageCRUDKeepsServiceLink(t *testing.T) {
	app, gdb := newTestService(t)
	cookie := adminSession(t)

	service := &models.Service{Title: "Design", Slug: "design", Description: "d"}
	require.NoError(t, gdb.Create(service).Error)

	resp := do(t, app, http.MethodPost, PackagesPath, fiber.Map{
		"name":      "Starter",
		"price":     "$99",
		"serviceId": service.ID,
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var pkg models.Package
	decode(t, resp, &pkg)
	require.NotNil(t, pkg.ServiceID)
	assert.Equal(t, service.ID, *pkg.ServiceID)

	// patching the price keeps the link
	resp = do(t, app, http.MethodPatch, fmt.Sprintf("%s/%d", PackagesPath, pkg.ID), fiber.Map{
		"price": "$149",
	}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decode(t, resp, &pkg)
	assert.Equal(t, "$149", pkg.Price)
	require.NotNil(t, pkg.ServiceID)
	assert.Equal(t, service.ID, *pkg.ServiceID)
}
