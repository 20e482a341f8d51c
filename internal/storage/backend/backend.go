// Package backend opens the KV store named by the configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/educonnect/internal/config"
	"github.com/sakif/educonnect/internal/storage"
	"github.com/sakif/educonnect/internal/storage/postgres"
	"github.com/sakif/educonnect/internal/storage/redis"
	"github.com/sakif/educonnect/internal/storage/sqlite"
)

// Handle is an open backend. Close releases its connections; it is a no-op
// for the memory driver.
type Handle struct {
	KV    storage.KV
	close func() error
}

func (h *Handle) Close() error {
	if h.close == nil {
		return nil
	}
	return h.close()
}

// Open connects to the backend cfg.Driver names.
//
// For sqlite the parent directory of DBPath is created when missing.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Handle, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("backend: creating %s: %w", dir, err)
			}
		}
		db, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		logger.Info("storage opened", slog.String("driver", "sqlite"), slog.String("path", cfg.DBPath))
		return &Handle{KV: db, close: db.Close}, nil

	case config.DriverRedis:
		rcfg := redis.DefaultConfig()
		rcfg.Addr = cfg.RedisAddr
		rcfg.Password = cfg.RedisPassword
		rcfg.DB = cfg.RedisDB
		rcfg.Prefix = cfg.RedisPrefix
		kv, err := redis.New(ctx, rcfg)
		if err != nil {
			return nil, err
		}
		logger.Info("storage opened", slog.String("driver", "redis"), slog.String("addr", cfg.RedisAddr))
		return &Handle{KV: kv, close: kv.Close}, nil

	case config.DriverPostgres:
		kv, err := postgres.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		logger.Info("storage opened", slog.String("driver", "postgres"))
		return &Handle{KV: kv, close: kv.Close}, nil

	case config.DriverMemory:
		logger.Warn("storage opened", slog.String("driver", "memory"), slog.String("note", "data is lost on exit"))
		return &Handle{KV: storage.NewMemoryKV()}, nil
	}
	return nil, fmt.Errorf("backend: unknown storage driver %q", cfg.Driver)
}
