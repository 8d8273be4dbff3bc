package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/places-api/config"
	"github.com/snap-point/places-api/logging"
	"github.com/snap-point/places-api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenForTesting()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	r := gin.New()
	SetupRoutes(r, db, cfg, logging.NewWithWriter(io.Discard, "error"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSetupRoutesServesPlaces(t *testing.T) {
	r := newEngine(t, &config.Config{})

	w := get(r, "/api/places")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":[],"count":0,"filters":{},"sort":"created_at","order":"DESC"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = get(r, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":15`)

	w = get(r, "/api/cities")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":[],"count":0}`, w.Body.String())
}

func TestSetupRoutesGuardsMutations(t *testing.T) {
	r := newEngine(t, &config.Config{JWTSecret: "s3cret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/places", strings.NewReader(`{"name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Equal(t, http.StatusOK, get(r, "/api/places").Code)
}

func TestHelloPages(t *testing.T) {
	r := newEngine(t, &config.Config{})

	w := get(r, "/hello")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<h1>Hello World! 🎉</h1>")

	w = get(r, "/hello/Ana")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Hello Ana! 👋</h1>")

	w = get(r, "/hello/%3Cscript%3E")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello &lt;script&gt;!")
	assert.NotContains(t, w.Body.String(), "<script>")
}

func TestCORSEnabledFromConfig(t *testing.T) {
	r := newEngine(t, &config.Config{CORSAllowedOrigin: "https://places.example"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/places/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://places.example", w.Header().Get("Access-Control-Allow-Origin"))
}
