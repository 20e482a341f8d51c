// Package sqlite implements storage.KV on an embedded SQLite database.
//
// The whole store is one file, opened through modernc.org/sqlite (pure Go,
// no cgo).
//
// THE SCHEMA:
// The database holds exactly one table, a key → value map:
//
//	kv(key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at DATETIME)
//
// Each collection (users, groups, ...) is one row whose value is a JSON array.
// Decoding that JSON is the job of storage.Collection, not of this package.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// BLANK IMPORT:
	// The driver registers itself with database/sql as "sqlite" in its init().
	_ "modernc.org/sqlite"

	"github.com/sakif/educonnect/internal/storage"
)

// COMPILE-TIME INTERFACE CHECK:
// Fails the build right here if *DB stops satisfying storage.KV.
var _ storage.KV = (*DB)(nil)

// DB wraps a sql.DB connection pool.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
//
// dbPath examples:
//   - "data/educonnect.db" → file-based database (persistent)
//   - ":memory:"           → in-memory database (tests; lost on Close)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// ONE CONNECTION:
	// SQLite allows a single writer at a time, and every new connection to
	// ":memory:" would see its own empty database. Pinning the pool to one
	// connection avoids both surprises.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets readers keep going while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the kv table. IF NOT EXISTS makes it safe to run on
// every startup.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating kv table: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
//
// sql.ErrNoRows is not a failure here: a key that was never written is
// simply absent, and callers treat that as an empty collection.
func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := db.conn.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("sqlite: getting key %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
//
// UPSERT:
// INSERT ... ON CONFLICT(key) DO UPDATE turns "insert or replace" into a
// single statement, so the overwrite is one write from the caller's view.
func (db *DB) Set(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("sqlite: setting key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (db *DB) Delete(ctx context.Context, key string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite: deleting key %s: %w", key, err)
	}
	return nil
}
