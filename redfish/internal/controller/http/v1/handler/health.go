package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/pkg/logger"
)

const healthRetryAfter = 5

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db      Pinger
	version string
	logger  logger.Interface
}

// CreateHealthHandler creates a new health handler. db may be nil.
func CreateHealthHandler(db Pinger, version string, log logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, version: version, logger: log}
}

// GetHealth handles GET /health.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	startTime := time.Now()

	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			h.logger.Warn("health check: database unreachable", "error", err)
			ServiceUnavailableError(c, healthRetryAfter)

			return
		}
	}

	c.Header("X-Response-Time", time.Since(startTime).String())
	c.Header("Cache-Control", "no-cache")

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "redfish-gateway",
		"version":   h.version,
	})
}
