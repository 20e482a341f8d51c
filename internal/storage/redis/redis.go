// Package redis implements storage.KV on a Redis server.
//
// Every key is namespaced with a prefix ("educonnect:" by default) so the
// store can share a Redis database with other applications:
//
//	educonnect:users       → JSON array of users
//	educonnect:currentUser → email string
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sakif/educonnect/internal/storage"
)

var _ storage.KV = (*KV)(nil)

// DefaultPrefix namespaces every key written by this package.
const DefaultPrefix = "educonnect:"

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns settings for a local, unauthenticated Redis.
func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:6379",
		Prefix:       DefaultPrefix,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// KV stores values as plain Redis strings without expiry.
type KV struct {
	client redis.UniversalClient
	prefix string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, cfg Config) (*KV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: pinging %s: %w", cfg.Addr, err)
	}

	return NewFromClient(client, cfg.Prefix), nil
}

// NewFromClient wraps an existing client. An empty prefix means DefaultPrefix.
func NewFromClient(client redis.UniversalClient, prefix string) *KV {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &KV{client: client, prefix: prefix}
}

func (k *KV) key(key string) string {
	return k.prefix + key
}

// Get maps redis.Nil (key does not exist) to ok=false.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := k.client.Get(ctx, k.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis: getting key %s: %w", key, err)
	}
	return value, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	if err := k.client.Set(ctx, k.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis: setting key %s: %w", key, err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if err := k.client.Del(ctx, k.key(key)).Err(); err != nil {
		return fmt.Errorf("redis: deleting key %s: %w", key, err)
	}
	return nil
}

func (k *KV) Close() error {
	return k.client.Close()
}
