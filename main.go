package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/places-api/config"
	"github.com/snap-point/places-api/logging"
	"github.com/snap-point/places-api/routes"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("failed to open log file", "path", cfg.LogFile, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Error("database unavailable", "error", err, "params", cfg.DB.Params())
		os.Exit(1)
	}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg, logger)

	logger.Info("starting server", "port", cfg.Port, "driver", cfg.DB.Driver)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
