// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/api"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/cache"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/catalog"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/config"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/service"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/storage"
	"github.com/andresuchdata/fulfillment-bi/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.Setup(cfg.Server.Mode, cfg.App.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Dashboard cache falls back to noop when redis is unreachable
	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Dashboard cache unavailable, deriving on every request")
		dashboardCache = cache.NewNoopDashboardCache()
	}
	defer dashboardCache.Close()

	// KPI catalog is loaded once; a failed load leaves it empty
	var objectStorage storage.ObjectStorage
	if storageCfg := cfg.Storage.Sevalla(); storageCfg.Enabled() {
		client, err := storage.NewSevallaClient(storageCfg)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Object storage unavailable")
		} else {
			objectStorage = client
		}
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	kpiCatalog := catalog.Open(loadCtx, catalog.NewLoader(objectStorage), cfg.Assistant.CatalogLocation)
	cancelLoad()
	logger.Log.Info().
		Str("source", kpiCatalog.Source()).
		Strs("sections", kpiCatalog.Sections()).
		Time("loaded_at", kpiCatalog.LoadedAt()).
		Msg("KPI catalog ready")

	// Initialize services
	dashboardService := service.NewDashboardService(dashboardCache)
	assistantService := service.NewAssistantService(kpiCatalog, service.AssistantOptions{
		Delay:            cfg.Assistant.ResponseDelay(),
		MaxConversations: cfg.Assistant.MaxConversations,
	})
	defer assistantService.Shutdown()

	// Initialize HTTP server
	router := api.NewRouter(&api.Services{
		DashboardService: dashboardService,
		AssistantService: assistantService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Int("kpis", kpiCatalog.Len()).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	timeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
