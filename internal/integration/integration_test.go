package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-rover/backend/internal/api"
	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/database"
	"github.com/pageza/recipe-rover/backend/internal/middleware"
	"github.com/pageza/recipe-rover/backend/internal/router"
	"github.com/pageza/recipe-rover/backend/internal/session"
	"github.com/pageza/recipe-rover/backend/internal/testhelpers"
)

const secret = "integration-secret"

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	repo := database.NewRecipeRepository(db)
	seeded, err := repo.SeedIfEmpty(ctx, catalog.SampleRecipes())
	require.NoError(t, err)
	require.True(t, seeded)

	cat, err := catalog.Load(ctx, repo)
	require.NoError(t, err)

	store := session.NewStore(cat, session.WithSearchDebounce(10*time.Millisecond))
	h := api.NewHandler(cat, store, nil, api.Options{
		FreeLimit: 5,
		PageSize:  9,
		Ping: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}, zerolog.Nop())

	return router.SetupRouter(h, router.Config{
		CORSOrigins:   []string{"http://localhost:5173"},
		JWTSecret:     secret,
		ExportLimiter: middleware.NewExportLimiter(nil, 10),
	}, zerolog.Nop())
}

func call(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIntegrationBrowseFilterScaleExport(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	r := setupRouter(t, db)

	w := call(t, r, http.MethodGet, "/api/v1/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)

	// Free tier sees the first five of the catalog loaded from the database.
	var list api.Page
	w = call(t, r, http.MethodGet, "/api/v1/recipes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 10, list.Total)
	assert.Len(t, list.Recipes, 5)
	assert.True(t, list.Limited)

	// A session narrows the catalog step by step.
	var view api.SessionView
	w = call(t, r, http.MethodPost, "/api/v1/sessions", nil, "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	base := "/api/v1/sessions/" + view.ID

	w = call(t, r, http.MethodPut, base+"/tags", api.ValuesRequest{Values: []string{"Vegetarian"}}, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, http.MethodPut, base+"/ingredients/excluded", api.ValuesRequest{Values: []string{"cheese"}}, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, http.MethodPut, base+"/nutrients/calories", map[string]float64{"max": 330}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	names := make([]string, len(view.Recipes))
	for i, rec := range view.Recipes {
		names[i] = rec.Name
	}
	assert.Equal(t, []string{"Avocado Toast with Poached Egg", "Chocolate Banana Smoothie", "Caprese Salad"}, names)

	// Scale the first hit to two servings and download it.
	var detail api.RecipeDetail
	w = call(t, r, http.MethodGet, "/api/v1/recipes/1?servings=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 160.0, detail.Nutrition.Calories)
	assert.Equal(t, "1 medium", detail.Ingredients[0].Quantity)

	w = call(t, r, http.MethodGet, "/api/v1/recipes/1/export?servings=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "# Avocado Toast with Poached Egg"))
	assert.Contains(t, w.Body.String(), "- 1 medium avocado")

	// Bulk download needs the premium entitlement.
	w = call(t, r, http.MethodGet, "/api/v1/recipes/export", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	token, err := middleware.SignEntitlement(secret, "subscriber", true, time.Hour)
	require.NoError(t, err)
	w = call(t, r, http.MethodGet, "/api/v1/recipes/export", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
