package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-rover/backend/internal/api"
	"github.com/pageza/recipe-rover/backend/internal/middleware"
	"github.com/pageza/recipe-rover/backend/internal/session"
	"github.com/pageza/recipe-rover/backend/internal/testhelpers"
)

func setupTestRouter(t *testing.T, cfg Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cat := testhelpers.SampleCatalog(t)
	h := api.NewHandler(cat, session.NewStore(cat), nil, api.Options{FreeLimit: 5}, zerolog.Nop())
	return SetupRouter(h, cfg, zerolog.Nop())
}

func TestSetupRouterServesAPI(t *testing.T) {
	r := setupTestRouter(t, Config{CORSOrigins: []string{"http://localhost:5173"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/recipes", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, w.Body.String())
}

func TestSetupRouterAppliesCORS(t *testing.T) {
	r := setupTestRouter(t, Config{CORSOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouterEntitlement(t *testing.T) {
	const secret = "router-secret"
	r := setupTestRouter(t, Config{CORSOrigins: []string{"http://localhost:5173"}, JWTSecret: secret})

	token, err := middleware.SignEntitlement(secret, "user-1", true, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/recipes/export", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRouterExportLimit(t *testing.T) {
	limiter := middleware.NewLocalLimiter(middleware.RateLimitConfig{Window: time.Minute, Limit: 2, KeyPrefix: "test"})
	r := setupTestRouter(t, Config{CORSOrigins: []string{"http://localhost:5173"}, ExportLimiter: limiter})

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes/3/export", nil))
		codes[i] = w.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func exportCodes(r *gin.Engine, remoteAddr string, forwarded []string) []int {
	codes := make([]int, len(forwarded))
	for i, xff := range forwarded {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/3/export", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set("X-Forwarded-For", xff)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[i] = w.Code
	}
	return codes
}

func TestSetupRouterIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	limiter := middleware.NewLocalLimiter(middleware.RateLimitConfig{Window: time.Minute, Limit: 1, KeyPrefix: "test"})
	r := setupTestRouter(t, Config{CORSOrigins: []string{"http://localhost:5173"}, ExportLimiter: limiter})

	codes := exportCodes(r, "203.0.113.9:40000", []string{"1.1.1.1", "2.2.2.2", "3.3.3.3", "4.4.4.4", "5.5.5.5"})
	assert.Equal(t, []int{
		http.StatusOK,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestSetupRouterHonoursForwardedForFromTrustedProxy(t *testing.T) {
	limiter := middleware.NewLocalLimiter(middleware.RateLimitConfig{Window: time.Minute, Limit: 1, KeyPrefix: "test"})
	r := setupTestRouter(t, Config{
		CORSOrigins:    []string{"http://localhost:5173"},
		TrustedProxies: []string{"10.0.0.0/8"},
		ExportLimiter:  limiter,
	})

	codes := exportCodes(r, "10.1.2.3:40000", []string{"1.1.1.1", "2.2.2.2", "1.1.1.1"})
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
