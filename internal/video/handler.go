package video

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ttylabs/tty/backend/internal/apperrors"
)

// Handler handles HTTP requests for video operations
type Handler struct {
	service IngestService
	maxSize int64
	logger  Logger
}

// NewHandler creates a new video handler
func NewHandler(service IngestService, maxSize int64, logger Logger) *Handler {
	return &Handler{
		service: service,
		maxSize: maxSize,
		logger:  logger,
	}
}

// RegisterRoutes attaches the video endpoints to the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/upload", h.HandleUpload)
	router.GET("/videos", h.HandleList)
	router.GET("/videos/:id", h.HandleGet)
}

// HandleUpload accepts a multipart upload in the "video" form field and runs
// the ingestion pipeline
func (h *Handler) HandleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	// Reject on the declared size before touching any storage.
	if fileHeader.Size > h.maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "details": err.Error()})
		return
	}
	defer file.Close()

	v, err := h.service.Ingest(file, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		h.logger.LogError(err, "Upload failed")
		switch err.(type) {
		case *apperrors.PayloadTooLargeError:
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Status: "success",
		Video: UploadedVideo{
			ID:       v.ID.String(),
			URL:      v.URL(),
			Filename: v.Filename,
			Duration: v.Duration,
		},
	})
}

// HandleList returns all videos newest first
func (h *Handler) HandleList(c *gin.Context) {
	videos, err := h.service.List()
	if err != nil {
		h.logger.LogError(err, "Failed to list videos")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// HandleGet returns a single video's metadata
func (h *Handler) HandleGet(c *gin.Context) {
	v, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		h.logger.LogError(err, "Failed to get video")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}
