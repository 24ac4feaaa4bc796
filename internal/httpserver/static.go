package httpserver

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// RootHandler serves the frontend index page when a frontend build is
// present, and falls back to a JSON endpoint index otherwise.
func RootHandler(frontendDir string) gin.HandlerFunc {
	index := filepath.Join(frontendDir, "index.html")
	return func(c *gin.Context) {
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"service": "video upload service",
			"endpoints": gin.H{
				"upload": "POST /upload",
				"videos": "GET /videos",
				"video":  "GET /videos/:id",
				"health": "GET /health",
			},
		})
	}
}
