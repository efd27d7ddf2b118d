package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pda-backend/internal/config"
	"pda-backend/internal/db"
	"pda-backend/internal/models"
	"pda-backend/internal/services"
	"pda-backend/internal/storage"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *storage.UploadStore) {
	t.Helper()

	settings := config.Settings{
		DBPath:    filepath.Join(t.TempDir(), "pda-test.db"),
		JWTSecret: "test-secret-key",
		UploadDir: filepath.Join(t.TempDir(), "uploads"),
	}

	database, err := db.Open(settings)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	repos := db.NewRepositories(database)
	authService := services.NewAuthService(repos.Users, []byte(settings.JWTSecret))
	uploadStore := storage.NewUploadStore(settings.UploadDir)
	handler := NewHandler(repos, authService, uploadStore, log)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, uploadStore
}

func createTestUser(t *testing.T, database *gorm.DB, username string, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func postJSONWithAuth(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer anything")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, headers map[string]string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(body), err)
	}
}

func loginForToken(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := postJSON(t, app, "/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatal("login response is missing the token")
	}
	return payload.Token
}

// newReportForm builds a multipart body for POST /reports with an
// optional attachment carrying an explicit part content type.
func newReportForm(t *testing.T, fields map[string]string, filename string, contentType string, fileBody []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write form field %s: %v", key, err)
		}
	}

	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="report_pdf"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create form file part: %v", err)
		}
		if _, err := part.Write(fileBody); err != nil {
			t.Fatalf("write form file body: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buffer, writer.FormDataContentType()
}

func postReportForm(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body.Bytes()))
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Authorization", "Bearer anything")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST /reports failed: %v", err)
	}
	return response
}

func responseError(t *testing.T, response *http.Response) string {
	t.Helper()

	var payload struct {
		Error string `json:"error"`
	}
	decodeJSONBody(t, response, &payload)
	return payload.Error
}
