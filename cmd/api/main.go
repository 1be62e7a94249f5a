package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"items-api/config"
	_ "items-api/docs" // Swagger docs
	"items-api/internal/httpserver"
	itemRepo "items-api/internal/item/repository/postgre"
	"items-api/pkg/log"
	"items-api/pkg/postgre"
)

// @title       Items CRUD API
// @description CRUD API over a single persisted Item resource.
// @version     1.0.0
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		stop()
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Items CRUD API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Connection pool
	db, err := postgre.Connect(ctx, postgre.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AcquireTimeout:  cfg.Database.AcquireTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close database pool: %v", err)
		}
		logger.Info(ctx, "Database pool closed")
	}()

	provider := postgre.NewProvider(db, cfg.Database.AcquireTimeout)

	// 4. Schema
	if err := postgre.WithinScope(ctx, provider, itemRepo.New(logger).EnsureSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info(ctx, "Database schema ready")

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		RoutePrefix:        cfg.HTTPServer.RoutePrefix,
		RateLimitPerMin:    cfg.HTTPServer.RateLimitPerMin,
		CORSAllowedOrigins: cfg.HTTPServer.CORSAllowedOrigins,
		ShutdownTimeout:    cfg.HTTPServer.ShutdownTimeout,
		DB:                 db,
		SessionProvider:    provider,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 6. Run until signalled
	return httpServer.Run(ctx)
}
