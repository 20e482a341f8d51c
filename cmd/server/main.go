// Package main is the entry point for the EduConnect HTTP server.
//
// Configuration comes from the environment (and an optional .env file); see
// internal/config. The process exits with status 1 when configuration,
// storage or the server itself fails.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/sakif/educonnect/internal/config"
	"github.com/sakif/educonnect/internal/server"
	"github.com/sakif/educonnect/internal/storage/backend"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := backend.Open(ctx, cfg.Storage, logger)
	cancel()
	if err != nil {
		logger.Error("failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv, err := server.New(cfg, store, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		if cerr := store.Close(); cerr != nil {
			logger.Error("closing storage failed", slog.String("error", cerr.Error()))
		}
		os.Exit(1)
	}

	// Start blocks until SIGINT/SIGTERM and closes the storage on the way out.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
