package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/autofixpro/workshop-system/internal/api"
	"github.com/autofixpro/workshop-system/internal/core/ports"
	"github.com/autofixpro/workshop-system/internal/core/service"
	"github.com/autofixpro/workshop-system/internal/infrastructure/mirror"
	"github.com/autofixpro/workshop-system/internal/infrastructure/queue"
	"github.com/autofixpro/workshop-system/internal/infrastructure/supabase"
	"github.com/autofixpro/workshop-system/internal/pkg/config"
	"github.com/autofixpro/workshop-system/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Local mirror backend ---
	var (
		mir ports.Mirror
		rdb *redis.Client
	)
	switch cfg.Mirror.Backend {
	case "redis":
		rm, err := mirror.ConnectRedis(ctx, mirror.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
			Key:  cfg.Mirror.Key,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis mirror connect failed")
		}
		defer rm.Close()
		mir, rdb = rm, rm.Client()
	default:
		fm, err := mirror.OpenFile(cfg.Mirror.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("file mirror open failed")
		}
		mir = fm
	}

	// --- Remote store behind the sharded background writer ---
	remote := supabase.NewClient(supabase.Config{
		Endpoint: cfg.Supabase.Endpoint,
		APIKey:   cfg.Supabase.Key,
		Timeout:  cfg.Supabase.Timeout,
	}, log)
	if remote.Enabled() {
		log.Info().Str("endpoint", cfg.Supabase.Endpoint).Msg("remote sync enabled")
	} else {
		log.Warn().Msg("remote sync disabled, running local-only")
	}

	writer := queue.NewWriter(remote, cfg.Supabase.Workers, log)
	writer.Start(ctx)

	// --- Core services ---
	syncService := service.NewSyncService(writer, mir, log)
	if _, err := syncService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("initial load failed")
	}

	authService := service.NewAuthService(cfg.JWTSecret, 24*time.Hour)
	adviceService := service.NewAdviceService()

	e := api.NewRouter(api.Deps{
		Sync:      syncService,
		Auth:      authService,
		Advice:    adviceService,
		Remote:    remote,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	cancel() // stop background writers
}
