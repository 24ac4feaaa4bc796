package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/ttylabs/tty/backend/internal/config"
	"github.com/ttylabs/tty/backend/internal/database"
	"github.com/ttylabs/tty/backend/internal/health"
	"github.com/ttylabs/tty/backend/internal/httpserver"
	"github.com/ttylabs/tty/backend/internal/logger"
	"github.com/ttylabs/tty/backend/internal/storage"
	"github.com/ttylabs/tty/backend/internal/storage/s3"
	"github.com/ttylabs/tty/backend/internal/video"
	"gorm.io/gorm"
)

// App holds the application's wired dependencies
type App struct {
	config *config.Config
	logger logger.Logger
	db     *gorm.DB
	router *gin.Engine
	server *http.Server
}

// NewApp wires every service from configuration. A failed database
// connection is fatal; absent remote storage credentials are not.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := database.Connect(&cfg.Database, log)
	if err != nil {
		return nil, err
	}

	blobs, err := storage.NewLocalStore(&storage.Config{
		UploadDir:   cfg.Storage.UploadDir,
		PublicPath:  "/uploads",
		MaxFileSize: cfg.Video.MaxSize,
	}, log)
	if err != nil {
		return nil, err
	}

	var remote storage.ObjectStorage
	if cfg.RemoteStorageConfigured() {
		remote, err = s3.NewService(&storage.S3Config{
			Endpoint:        cfg.Storage.S3.Endpoint,
			Region:          cfg.Storage.S3.Region,
			Bucket:          cfg.Storage.S3.Bucket,
			AccessKeyID:     cfg.Storage.S3.AccessKeyID,
			SecretAccessKey: cfg.Storage.S3.SecretAccessKey,
		}, log)
		if err != nil {
			return nil, err
		}
		log.LogInfo("Remote storage configured", map[string]interface{}{
			"bucket": cfg.Storage.S3.Bucket,
			"relay":  cfg.RelayEnabled(),
		})
	} else {
		log.LogInfo("Remote storage not configured, serving uploads locally", nil)
	}

	repo := video.NewRepository(db)
	ingest := video.NewService(repo, blobs, remote, cfg.RelayEnabled(), log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(httpserver.RecoveryMiddleware(log))
	router.Use(httpserver.RequestLoggerMiddleware(log))
	router.Use(httpserver.CORSMiddleware())

	video.NewHandler(ingest, cfg.Video.MaxSize, log).RegisterRoutes(router)
	health.NewHandler(db, cfg.RemoteStorageConfigured(), blobs.Dir()).RegisterRoutes(router)
	router.Static("/uploads", blobs.Dir())
	router.Static("/js", filepath.Join("frontend", "js"))
	router.GET("/", httpserver.RootHandler("frontend"))

	return &App{
		config: cfg,
		logger: log,
		db:     db,
		router: router,
	}, nil
}

// Run starts the HTTP server in the background
func (a *App) Run() error {
	a.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", a.config.Server.Port),
		Handler: a.router,
	}

	a.logger.LogInfo("Server starting", map[string]interface{}{
		"port":        a.config.Server.Port,
		"environment": a.config.Environment,
	})

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.LogFatal(err, "Server failed")
		}
	}()

	return nil
}

// Shutdown drains in-flight requests and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.LogInfo("Shutting down", nil)

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.LogError(err, "Server shutdown failed")
		}
	}

	if err := database.Close(a.db); err != nil {
		return a.logger.LogError(err, "Database close failed")
	}
	return nil
}
