package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/session"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	session.Init(nil)

	app := fiber.New()
	app.Get("/protected", RequireAdmin, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"adminId": AdminID(c)})
	})

	return app
}

func request(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestRequireAdminNoCookie(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, "")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminUnknownSession(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, "deadbeefdeadbeef")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminEmptySessionData(t *testing.T) {
	app := newTestApp(t)

	sessionID, err := session.GenerateSessionID()
	require.NoError(t, err)

	// a session that exists but carries no admin id is rejected
	sessData := &session.Data{}
	require.NoError(t, sessData.Write(sessionID, time.Minute))

	resp := request(t, app, sessionID)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminValidSession(t *testing.T) {
	app := newTestApp(t)

	sessionID, err := session.GenerateSessionID()
	require.NoError(t, err)

	sessData := &session.Data{AdminID: 42}
	require.NoError(t, sessData.Write(sessionID, time.Minute))

	resp := request(t, app, sessionID)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminIDWithoutMiddleware(t *testing.T) {
	session.Init(nil)

	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		assert.Zero(t, AdminID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
