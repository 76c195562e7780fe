package handler

import (
	"net/http"
	"time"

	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	db        *persistence.Database
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db, startedAt: time.Now()}
}

// Health handles GET /health. It reports degraded with a 503 when the
// database is unreachable.
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK
	dbStatus := "up"

	if err := h.db.Ping(); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
		dbStatus = "down"
	}

	c.JSON(httpStatus, gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(h.startedAt).String(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
