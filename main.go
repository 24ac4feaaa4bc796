package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ttylabs/tty/backend/internal/config"
	"github.com/ttylabs/tty/backend/internal/logger"
)

func main() {
	// Bootstrap logger used until the configured level is known
	log, err := logger.NewService(&logger.Config{Level: "debug"})
	if err != nil {
		panic(err)
	}

	cfg, err := config.NewConfigService(log).Load(".")
	if err != nil {
		log.LogFatal(err, "Failed to load configuration")
	}

	log, err = logger.NewService(&logger.Config{Level: cfg.Logging.Level})
	if err != nil {
		log.LogFatal(err, "Failed to initialize logger")
	}

	app, err := NewApp(cfg, log)
	if err != nil {
		log.LogFatal(err, "Failed to initialize application")
	}

	if err := app.Run(); err != nil {
		log.LogFatal(err, "Failed to start server")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		log.LogError(err, "Shutdown finished with errors")
	}
}
