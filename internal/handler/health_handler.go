package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ram45016/water-purifier-api/pkg/database"
	"github.com/Ram45016/water-purifier-api/pkg/redis"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db    *database.PostgresDB
	cache *redis.Client
}

// NewHealthHandler creates a new HealthHandler. The cache client may be
// nil when the service runs without Redis.
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "water-purifier-api",
	})
}

// Ready checks if the service is ready to accept traffic
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "not_ready",
			"service":  "water-purifier-api",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "connected"
		if err := h.cache.Ping(c.Request.Context()); err != nil {
			cacheStatus = "disconnected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "water-purifier-api",
		"database": "connected",
		"cache":    cacheStatus,
	})
}
