package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/config"
	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/internal/web/session"
)

func newTestService(t *testing.T) (*fiber.App, string) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	uploadDir := t.TempDir()

	cfg := &config.Config{
		Webserver: config.Webserver{
			UploadDir: uploadDir,
			Session:   config.Session{ExpiryTime: time.Minute},
		},
	}

	app := fiber.New(fiber.Config{BodyLimit: MaxFileSize + 1<<20})

	session.Init(nil)

	var s Service
	require.NoError(t, s.Init(app, cfg, gdb))

	return app, uploadDir
}

// adminSession creates a server-side session and returns its cookie value.
func adminSession(t *testing.T) string {
	t.Helper()

	sessionID, err := session.GenerateSessionID()
	require.NoError(t, err)

	sessData := &session.Data{AdminID: 1}
	require.NoError(t, sessData.Write(sessionID, time.Minute))

	return sessionID
}

func uploadFile(t *testing.T, app *fiber.App, filename string, content []byte, cookie string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, Path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestUploadRequiresSession(t *testing.T) {
	app, _ := newTestService(t)

	resp := uploadFile(t, app, "photo.png", []byte("png-bytes"), "")
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUploadStoresFile(t *testing.T) {
	app, uploadDir := newTestService(t)

	resp := uploadFile(t, app, "photo.PNG", []byte("png-bytes"), adminSession(t))
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, strings.HasPrefix(out.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(out.URL, ".png"), "extension is lower cased: %s", out.URL)

	// the file exists on disk under the generated name
	name := strings.TrimPrefix(out.URL, "/uploads/")
	stored, err := os.ReadFile(filepath.Join(uploadDir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestUploadGeneratedNamesAreUnique(t *testing.T) {
	app, _ := newTestService(t)
	cookie := adminSession(t)

	urls := map[string]bool{}
	for i := 0; i < 3; i++ {
		resp := uploadFile(t, app, "photo.jpg", []byte("jpg"), cookie)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			URL string `json:"url"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		_ = resp.Body.Close()

		require.False(t, urls[out.URL], "duplicate upload url %s", out.URL)
		urls[out.URL] = true
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	app, uploadDir := newTestService(t)

	resp := uploadFile(t, app, "payload.exe", []byte("MZ"), adminSession(t))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	// nothing was written
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	app, _ := newTestService(t)

	big := make([]byte, MaxFileSize+1)
	resp := uploadFile(t, app, "big.png", big, adminSession(t))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestUploadMissingFileField(t *testing.T) {
	app, _ := newTestService(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("other", "x"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, Path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: adminSession(t)})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
