package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wfbarn/wfbarn_app/internal/adapters/webdav"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
	"github.com/wfbarn/wfbarn_app/internal/core/services"
	"github.com/wfbarn/wfbarn_app/internal/core/state"
	"github.com/wfbarn/wfbarn_app/internal/dto"
	"github.com/wfbarn/wfbarn_app/internal/handlers"
	"github.com/wfbarn/wfbarn_app/internal/middleware"
	"github.com/wfbarn/wfbarn_app/internal/platform/config"
	"github.com/wfbarn/wfbarn_app/internal/repositories/database/pgsql"
	"github.com/wfbarn/wfbarn_app/internal/repositories/storage/jsonfile"
	"github.com/wfbarn/wfbarn_app/pkg/database"
)

// @title WFBarn Backend API
// @version 1.0
// @description Personal finance tracker backend with WebDAV state synchronization.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	store, cleanup, err := buildDocumentStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize document store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	// The in-memory state container is seeded once from the local store;
	// every mutation afterwards goes through the container and back to disk.
	container := state.NewContainer(store.Load(ctx))

	remote := webdav.NewClient(logger)
	svcs := services.NewServiceContainer(cfg, container, store, remote)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterCustomValidators()

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcs)

	svcs.Sync.StartAutoSync(ctx)
	defer svcs.Sync.Stop()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildDocumentStore selects the Postgres document store when a database URL
// is configured and falls back to the JSON file store otherwise.
func buildDocumentStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.DocumentStore, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store, err := pgsql.NewDocumentStore(ctx, pool, logger)
		if err != nil {
			database.ClosePgxPool(pool)
			return nil, nil, err
		}
		logger.Info("Using Postgres document store")
		return store, func() { database.ClosePgxPool(pool) }, nil
	}

	store, err := jsonfile.NewDocumentStore(cfg.DataDir, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using JSON file document store", slog.String("path", store.Path()))
	return store, func() {}, nil
}
