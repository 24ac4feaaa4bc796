package health

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler reports service liveness and the state of its dependencies
type Handler struct {
	db               *gorm.DB
	remoteConfigured bool
	uploadDir        string
}

// NewHandler creates a new health handler
func NewHandler(db *gorm.DB, remoteConfigured bool, uploadDir string) *Handler {
	return &Handler{
		db:               db,
		remoteConfigured: remoteConfigured,
		uploadDir:        uploadDir,
	}
}

// RegisterRoutes attaches the health endpoint to the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.HandleHealth)
}

// HandleHealth returns the aggregate service status. The report is always
// 200; degradation shows up in the body, not the status code.
func (h *Handler) HandleHealth(c *gin.Context) {
	database := "connected"
	if !h.databaseReachable() {
		database = "disconnected"
	}

	remote := "not configured"
	if h.remoteConfigured {
		remote = "configured"
	}

	storage := "available"
	if info, err := os.Stat(h.uploadDir); err != nil || !info.IsDir() {
		storage = "unavailable"
	}

	status := "healthy"
	if database == "disconnected" || storage == "unavailable" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"services": gin.H{
			"database":      database,
			"remoteStorage": remote,
			"storage":       storage,
		},
	})
}

func (h *Handler) databaseReachable() bool {
	if h.db == nil {
		return false
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
