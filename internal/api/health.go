package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports catalog size, live sessions and database reachability.
func (h *Handler) Health(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	database := "skipped"
	if h.opts.Ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.opts.Ping(ctx); err != nil {
			h.log.Error().Err(err).Msg("database health check failed")
			status, code, database = "unhealthy", http.StatusServiceUnavailable, "unreachable"
		} else {
			database = "ok"
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": database,
		"recipes":  h.catalog.Len(),
		"sessions": h.sessions.Len(),
	})
}
