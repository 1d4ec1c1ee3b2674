package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/pwgen/internal/config"
	"github.com/vaultpass/pwgen/internal/handler"
	"github.com/vaultpass/pwgen/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	src, err := cfg.Source()
	if err != nil {
		slog.Error("invalid random source", "error", err)
		os.Exit(1)
	}
	if cfg.RandomSource == "math" {
		slog.Warn("using seeded non-cryptographic random source", "seed", cfg.RandomSeed)
	}
	if cfg.TokenSecret == "" {
		slog.Warn("TOKEN_SECRET not set, api auth disabled")
	}

	router := handler.NewRouter(handler.RouterConfig{
		Generator:      handler.NewGeneratorHandler(service.NewGeneratorService(src, cfg.DefaultLength)),
		Strength:       handler.NewStrengthHandler(service.NewStrengthService()),
		TokenSecret:    cfg.TokenSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
