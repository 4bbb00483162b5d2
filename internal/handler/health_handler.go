package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/campuskit/acadsched-api/internal/service"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// HealthHandler serves liveness, readiness, and runtime metric snapshots.
type HealthHandler struct {
	db      *sqlx.DB
	cache   *redis.Client
	metrics *service.MetricsService
	started time.Time
}

func NewHealthHandler(db *sqlx.DB, cache *redis.Client, metrics *service.MetricsService) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, metrics: metrics, started: time.Now()}
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready godoc
// @Summary Readiness probe
// @Description Pings the database and cache. A missing cache degrades, a missing database fails.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := gin.H{"database": "ok", "cache": "ok"}
	status := http.StatusOK

	if h.db == nil {
		checks["database"] = "unconfigured"
		status = http.StatusServiceUnavailable
	} else if err := h.db.PingContext(c.Request.Context()); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if h.cache == nil {
		checks["cache"] = "disabled"
	} else if err := h.cache.Ping(c.Request.Context()).Err(); err != nil {
		checks["cache"] = err.Error()
	}

	checks["status"] = "ready"
	if status != http.StatusOK {
		checks["status"] = "unavailable"
	}
	c.JSON(status, checks)
}

// Stats godoc
// @Summary Runtime metrics snapshot
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /system/stats [get]
func (h *HealthHandler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot(), nil)
}
