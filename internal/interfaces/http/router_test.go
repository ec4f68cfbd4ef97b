package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"telmesh/internal/infrastructure/migration"
	sharedConfig "telmesh/internal/shared/config"
	"telmesh/internal/shared/logger"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	serverCfg := &sharedConfig.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		Mode:           "test",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	authCfg := &sharedConfig.AuthConfig{BcryptCost: 4}

	return NewRouter(db, serverCfg, authCfg, logger.NewLogger())
}

func doJSON(t *testing.T, router *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "response body: %s", rec.Body.String())
	return envelope.Data
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
		"role":     "USER",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	userID := uint(data["id"].(float64))
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")
	assert.NotContains(t, data, "password")

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/users", gin.H{
			"username": "alice",
			"email":    "other@example.com",
			"password": "s3cret-pass",
			"role":     "USER",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("short password rejected by binding", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/users", gin.H{
			"username": "bob",
			"email":    "bob@example.com",
			"password": "short",
			"role":     "USER",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get returns the user", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", userID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, "alice", data["username"])
	})

	t.Run("missing user is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/users/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete removes the user", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", userID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", userID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRegionUserAssociationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/regions", gin.H{
		"name":        "North",
		"description": "northern coverage",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	regionID := uint(decodeData(t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/users", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
		"role":     "USER",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	userID := uint(decodeData(t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/regions/%d/users/%d", regionID, userID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	t.Run("region lists its users", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet,
			fmt.Sprintf("/api/v1/regions/%d/users", regionID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice")
	})

	t.Run("removing a detached user is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete,
			fmt.Sprintf("/api/v1/regions/%d/users/%d", regionID, userID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodDelete,
			fmt.Sprintf("/api/v1/regions/%d/users/%d", regionID, userID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPlanSearchAndPaginationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	for _, name := range []string{"Gold Fiber", "Silver", "Bronze"} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/service-plans", gin.H{
			"name":        name,
			"description": "tier",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	t.Run("paginated list", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/service-plans?page=1&page_size=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, float64(3), data["total"])
		assert.Len(t, data["items"], 2)
		assert.Equal(t, float64(2), data["total_pages"])
	})

	t.Run("search by substring", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/service-plans/search?q=gold", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Gold Fiber")
		assert.NotContains(t, rec.Body.String(), "Silver")
	})
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	t.Run("malformed id parameter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/regions/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
