package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping    Pinger
	timeout time.Duration
	logger  *zap.Logger
}

func NewHealthHandler(ping Pinger, timeout time.Duration, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, timeout: timeout, logger: logger}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.HealthCheck)
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "detail": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
