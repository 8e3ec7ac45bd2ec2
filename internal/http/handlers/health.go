package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// Pinger is the slice of the database layer the health probe needs.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	log *logger.Logger
	db  Pinger
}

func NewHealthHandler(baseLog *logger.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		log: baseLog.With("handler", "HealthHandler"),
		db:  db,
	}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *HealthHandler) Database(c *gin.Context) {
	now := time.Now().UTC().Format(time.RFC3339)
	if err := h.db.Ping(); err != nil {
		h.log.Error("database health probe failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"message":   "database connection failed",
			"timestamp": now,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "database connection ok",
		"timestamp": now,
	})
}
