package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-memos/config"
	_ "voice-memos/docs" // Swagger docs
	"voice-memos/internal/httpserver"
	memoSQLite "voice-memos/internal/memo/repository/sqlite"
	memoUsecase "voice-memos/internal/memo/usecase"
	"voice-memos/pkg/clipboard"
	"voice-memos/pkg/executor"
	"voice-memos/pkg/log"
	pkgSQLite "voice-memos/pkg/sqlite"
)

// @title       Voice Memos API
// @description Command layer over the voice memo store: list, merge, delete, relabel and play recordings.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Voice Memos API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Infrastructure
	db, err := pkgSQLite.Connect(ctx, pkgSQLite.Config{Path: cfg.Database.Path})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer pkgSQLite.Disconnect(db)

	if cfg.Storage.Dir == "" {
		logger.Warn(ctx, "storage.dir is not set: open will not find any audio files")
	}
	if !clipboard.Supported() {
		logger.Warn(ctx, "No clipboard utility found: copy will fail")
	}

	// 4. Memo domain
	memoRepo := memoSQLite.New(db, logger)
	memoUC := memoUsecase.New(memoRepo, logger, executor.New(), clipboard.New(), memoUsecase.Config{
		StorageDir:    cfg.Storage.Dir,
		PlayerPath:    cfg.Player.Path,
		PlayerArgs:    cfg.Player.Args,
		PlayerMacOnly: cfg.Player.MacOnly,
		ThingsAppPath: cfg.Things.AppPath,
		ThingsOpener:  cfg.Things.Opener,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		APIToken:        cfg.HTTPServer.APIToken,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		MemoUseCase:     memoUC,
		DB:              db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
