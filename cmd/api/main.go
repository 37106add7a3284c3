package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/streetbite/internal/config"
	"github.com/joshua-takyi/streetbite/internal/container"
	"github.com/joshua-takyi/streetbite/internal/routes"
)

const shutdownTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server exited")
}

// run serves until ctx is cancelled or the listener fails. All state is in
// memory and is rebuilt from fixtures on every start.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Starting StreetBite API server",
		"environment", cfg.Environment,
		"seed_fixtures", cfg.SeedFixtures,
	)

	app := container.NewContainer(logger, cfg)
	defer app.Close()
	logger.Info("State store ready", "stores", len(app.Binding.Stores()))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
	case <-ctx.Done():
	}

	logger.Info("Server is shutting down...")
	// hijacked websocket connections are not drained by Shutdown
	app.Hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	return nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel, slog.LevelInfo)}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	// Human-readable logging for development
	opts.Level = parseLevel(cfg.LogLevel, slog.LevelDebug)
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// parseLevel accepts slog level names ("debug", "warn", "error+2"); anything
// else falls back.
func parseLevel(raw string, fallback slog.Level) slog.Level {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return fallback
	}
	return level
}
