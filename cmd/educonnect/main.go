// Command educonnect is the command-line client. It works directly on the
// store; no server is needed.
//
//	educonnect -db data/educonnect.db register -name Ana -email a@x.com
//	educonnect groups available
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sakif/educonnect/internal/apperror"
	"github.com/sakif/educonnect/internal/cli"
	"github.com/sakif/educonnect/internal/config"
	"github.com/sakif/educonnect/internal/storage"
	"github.com/sakif/educonnect/internal/storage/backend"
)

func main() {
	os.Exit(run())
}

func run() int {
	dbPath := flag.String("db", "", "SQLite database file (overrides STORAGE_DRIVER and DB_PATH)")
	envFile := flag.String("env", ".env", "optional .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *dbPath != "" {
		cfg.Storage.Driver = config.DriverSQLite
		cfg.Storage.DBPath = *dbPath
	}

	// Only warnings and errors reach stderr unless LOG_LEVEL asks for more.
	level := max(cfg.LogLevel, slog.LevelWarn)
	if os.Getenv("LOG_LEVEL") != "" {
		level = cfg.LogLevel
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	h, err := backend.Open(ctx, cfg.Storage, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer h.Close()

	app := cli.New(storage.NewStore(h.KV, logger), logger, os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(ctx, flag.Args()); err != nil {
		switch {
		case errors.Is(err, cli.ErrUsage):
			return 2
		case errors.Is(err, apperror.ErrUnauthorized):
			// the login hint is already printed
		default:
			fmt.Fprintln(os.Stderr, apperror.UserMessage(err, "Erro inesperado: "+err.Error()))
		}
		return 1
	}
	return 0
}
