package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/config"
	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestAPI opens a fresh sqlite catalog and the full router over it.
func setupTestAPI(t *testing.T) (*gin.Engine, *services.Catalog) {
	t.Helper()

	cfg := &config.Config{
		Database: config.Database{
			Driver: database.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "api.db"),
		},
	}
	catalog, err := services.OpenCatalog(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { catalog.Close() })
	require.NoError(t, catalog.Initialize())

	router := NewRouter(RouterConfig{
		Database:            catalog.Database,
		Authors:             catalog.Authors,
		Books:               catalog.Books,
		DefaultDeletePolicy: database.DeleteRestrict,
		Version:             "test",
	})
	return router, catalog
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, int64(123), id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Invalid(t *testing.T) {
	for _, value := range []string{"abc", "-1", "0"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: value}}

		id, ok := parseIDParam(c, "id")

		assert.False(t, ok, value)
		assert.Equal(t, int64(0), id)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid id")
	}
}

func TestParseQueryInt(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?from=1945", nil)

	n, ok := parseQueryInt(c, "from")
	assert.True(t, ok)
	assert.Equal(t, 1945, n)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	_, ok = parseQueryInt(c, "from")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "from is required")
}

func TestRespondStoreError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"update target missing", database.ErrUpdateTargetMissing, http.StatusNotFound},
		{"dangling author", database.ErrDanglingAuthor, http.StatusInternalServerError},
		{"anything else", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondStoreError(c, tt.err, "test")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondValidationError(c, validation.Errors{"name": errors.New("name is required")})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "validation", resp.Code)
	assert.Equal(t, map[string]any{"name": "name is required"}, resp.Details)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		id := w.Header().Get(requestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}
