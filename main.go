package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JSambassador/barber-shop/client"
	"github.com/JSambassador/barber-shop/config"
	"github.com/JSambassador/barber-shop/routes"
	"github.com/JSambassador/barber-shop/services"
	"github.com/JSambassador/barber-shop/storage"
	"github.com/JSambassador/barber-shop/utils"
)

func main() {
	cfg := config.Load()

	logger := utils.NewLogger(cfg.Environment)
	defer logger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	kv, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}
	defer kv.Close()

	store := storage.New(kv, logger)
	store.Initialize(context.Background())

	data := services.NewDataService(store, logger)

	// Optional: replicate this node's data to an upstream server on a schedule.
	if cfg.AutoSyncSchedule != "" {
		sync := services.NewSyncService(data, client.New(cfg.APIBaseURL), logger)
		scheduler := services.NewSyncScheduler(sync, logger)
		if err := scheduler.Start(cfg.AutoSyncSchedule); err != nil {
			logger.Fatal("invalid AUTO_SYNC_SCHEDULE", zap.String("schedule", cfg.AutoSyncSchedule), zap.Error(err))
		}
		defer scheduler.Stop()
	}

	r := routes.SetupRouter(data, logger)
	printRoutes(r)

	logger.Info("sync server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
