package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-rover/backend/internal/api"
	"github.com/pageza/recipe-rover/backend/internal/logging"
	"github.com/pageza/recipe-rover/backend/internal/middleware"
)

// Config carries the cross-cutting settings the router applies.
type Config struct {
	CORSOrigins []string
	JWTSecret   string
	// TrustedProxies are the peers allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
	// ExportLimiter guards single recipe downloads. Nil disables the limit.
	ExportLimiter middleware.Limiter
}

// SetupRouter configures the application routes
func SetupRouter(handler *api.Handler, cfg Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Error().Err(err).Strs("trusted_proxies", cfg.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(logging.GinMiddleware())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	var exportLimit gin.HandlerFunc
	if cfg.ExportLimiter != nil {
		exportLimit = middleware.RateLimit(cfg.ExportLimiter, log)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Entitlement(cfg.JWTSecret))
	handler.RegisterRoutes(v1, exportLimit)

	router.NoRoute(middleware.NotFound())
	return router
}
