// Package api exposes the recipe catalog, the filter sessions and the
// recipe export over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/model"
	"github.com/pageza/recipe-rover/backend/internal/scale"
	"github.com/pageza/recipe-rover/backend/internal/session"
)

const (
	defaultPageSize = 9
	maxPageSize     = 100
	suggestLimit    = 5
)

// ImageResolver turns a stored image reference into a URL a browser can load.
type ImageResolver interface {
	ImageURL(ctx context.Context, ref string) (string, error)
}

// Options tunes the handler.
type Options struct {
	// FreeLimit caps the results shown to the free tier. Zero disables it.
	FreeLimit int
	PageSize  int
	// AllowedOrigins is checked against the Origin header of websocket
	// upgrades.
	AllowedOrigins []string
	// Ping reports database health. Nil skips the check.
	Ping func(ctx context.Context) error
	Now  func() time.Time
}

// Handler serves every /api/v1 route.
type Handler struct {
	catalog  *catalog.Catalog
	sessions *session.Store
	images   ImageResolver
	opts     Options
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewHandler wires the handler. images may be nil, in which case stored
// image references are returned unchanged.
func NewHandler(cat *catalog.Catalog, sessions *session.Store, images ImageResolver, opts Options, log zerolog.Logger) *Handler {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	h := &Handler{
		catalog:  cat,
		sessions: sessions,
		images:   images,
		opts:     opts,
		log:      log,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin:      h.checkOrigin,
	}
	return h
}

// RegisterRoutes mounts the API on router. exportLimit guards the single
// recipe download and may be nil.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, exportLimit gin.HandlerFunc) {
	router.GET("/health", h.Health)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/export", h.ExportAll)
		recipes.GET("/:id", h.GetRecipe)
		if exportLimit != nil {
			recipes.GET("/:id/export", exportLimit, h.ExportRecipe)
		} else {
			recipes.GET("/:id/export", h.ExportRecipe)
		}
	}

	facets := router.Group("/facets")
	{
		facets.GET("", h.GetFacets)
		facets.GET("/categories", h.SuggestCategories)
	}

	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.POST("/:id/reset", h.ResetSession)
		sessions.PUT("/:id/search", h.SetSearch)
		sessions.PUT("/:id/tags", h.SetTags)
		sessions.POST("/:id/tags/toggle", h.ToggleTag)
		sessions.PUT("/:id/categories", h.SetCategories)
		sessions.POST("/:id/categories/toggle", h.ToggleCategory)
		sessions.PUT("/:id/nutrients/:macro", h.SetNutrientRange)
		sessions.PUT("/:id/ingredients/included", h.SetIncluded)
		sessions.POST("/:id/ingredients/included", h.AddIncluded)
		sessions.DELETE("/:id/ingredients/included/:value", h.RemoveIncluded)
		sessions.PUT("/:id/ingredients/excluded", h.SetExcluded)
		sessions.POST("/:id/ingredients/excluded", h.AddExcluded)
		sessions.DELETE("/:id/ingredients/excluded/:value", h.RemoveExcluded)
		sessions.GET("/:id/ingredients/suggest", h.SuggestIngredients)
		sessions.GET("/:id/live", h.Live)
	}
}

// page tier-limits and paginates results.
func (h *Handler) page(ctx context.Context, results []model.Recipe, premium bool, page, size int) Page {
	visible, limited := filter.LimitTier(results, premium, h.opts.FreeLimit)
	return Page{
		Recipes:    h.resolveImages(ctx, filter.Paginate(visible, page, size)),
		Total:      len(results),
		Page:       page,
		PageSize:   size,
		TotalPages: filter.TotalPages(len(visible), size),
		Limited:    limited,
	}
}

// resolveImages returns copies of recipes with browser-loadable image URLs.
func (h *Handler) resolveImages(ctx context.Context, recipes []model.Recipe) []model.Recipe {
	out := make([]model.Recipe, len(recipes))
	copy(out, recipes)
	if h.images == nil {
		return out
	}
	for i := range out {
		if out[i].ImageURL == "" {
			continue
		}
		url, err := h.images.ImageURL(ctx, out[i].ImageURL)
		if err != nil {
			h.log.Warn().Err(err).Uint("recipe_id", out[i].ID).Msg("failed to resolve image url")
			continue
		}
		out[i].ImageURL = url
	}
	return out
}

var errBadRequest = errors.New("bad request")

// respondError maps domain errors onto status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var parseErr *scale.ParseError
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, catalog.ErrRecipeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest), errors.Is(err, filter.ErrUnknownMacro),
		errors.Is(err, scale.ErrInvalidRatio), errors.As(err, &parseErr):
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
