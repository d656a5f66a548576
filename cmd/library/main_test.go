package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/cache"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/config"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/database"
	"github.com/mohamed0sawy/Library-Management-System-Restful-App/pkg/service"
)

var testDB *gorm.DB

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	store, err := cache.New(256)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	testDB = db
	cfg = &config.Config{}
	services = service.New(db, store, service.BcryptHasher)
	return setupRouter()
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonDecode(w *httptest.ResponseRecorder, dst any) error {
	return json.Unmarshal(w.Body.Bytes(), dst)
}

func TestHealthCheck(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, "GET", "/manage/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UP")
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTest(t)

	w := performRequest(router, "GET", "/manage/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	req := httptest.NewRequest("GET", "/manage/health", nil)
	req.Header.Set("X-Request-Id", "my-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "my-id", w.Header().Get("X-Request-Id"))
}

func TestSeedDemoData(t *testing.T) {
	router := setupTest(t)

	if err := seedDemoData(); err != nil {
		t.Fatalf("failed to seed demo data: %v", err)
	}
	// Seeding twice must not duplicate rows.
	if err := seedDemoData(); err != nil {
		t.Fatalf("failed to re-seed demo data: %v", err)
	}

	w := performRequest(router, "GET", "/api/v1/authors", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var page struct {
		TotalElements int64 `json:"totalElements"`
	}
	assert.NoError(t, jsonDecode(w, &page))
	assert.Equal(t, int64(2), page.TotalElements)
}
