package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/katakuxiko/askqa/internal/api"
	"github.com/katakuxiko/askqa/internal/config"
	"github.com/katakuxiko/askqa/internal/service"
	"github.com/katakuxiko/askqa/internal/store"
)

func main() {
	boot, err := zap.NewProduction()
	if err != nil {
		log.Printf("zap production logger unavailable, falling back to example logger: %v", err)
		boot = zap.NewExample()
	}

	// config
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		boot.Fatal("failed to build logger", zap.Error(err), zap.String("level", cfg.LogLevel))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// store
	dbStore, err := store.New(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err), zap.String("driver", cfg.DBDriver))
	}
	defer dbStore.Close()

	// services
	llm, err := service.NewCompleter(cfg)
	if err != nil {
		logger.Fatal("failed to initialize LLM client", zap.Error(err), zap.String("provider", cfg.LLMProvider))
	}
	ask := service.NewAskPipeline(dbStore, llm, logger)
	list := service.NewListPipeline(dbStore, logger)

	// api
	app := api.NewApp(logger)
	api.RegisterRoutes(app, api.NewHandler(ask, list, dbStore, logger))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("🚀 Server started", zap.String("addr", cfg.ServerAddr), zap.String("model", cfg.ChatModel))
	if err := app.Listen(cfg.ServerAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
