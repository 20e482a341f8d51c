// Package storage is the key-value store adapter every domain operation goes
// through.
//
// THE MODEL:
// The whole application state is a handful of string values in a flat
// key-value store:
//
//	users       → JSON array of model.User
//	groups      → JSON array of model.Group
//	mentorings  → JSON array of model.Mentoring
//	mentors     → JSON array of model.MentorProfile
//	materials   → JSON array of model.Material
//	currentUser → plain email string (only for clients that persist their session)
//
// KV is the port a backend implements (SQLite, Redis, PostgreSQL or memory).
// Collection[T] sits on top and gives typed get/set/add over one named
// collection.
//
// FAIL SOFT:
// A missing or unparseable collection reads as empty. Corrupt data is logged
// and otherwise ignored; it is overwritten by the next successful write. Only
// backend failures (I/O, network) are returned as errors.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sakif/educonnect/internal/model"
)

// Names of the persisted keys.
const (
	UsersKey       = "users"
	GroupsKey      = "groups"
	MentoringsKey  = "mentorings"
	MentorsKey     = "mentors"
	MaterialsKey   = "materials"
	CurrentUserKey = "currentUser"
)

// KV is a persistent string store addressed by key.
//
// Get reports ok=false when the key has never been set (or was deleted).
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Collection is a typed view over one key holding a JSON array of T.
//
// Read-modify-write cycles (Append, Update) hold mu for their whole duration.
// Collections created by the same Store share one mutex, so within a process
// no two cycles interleave. Separate processes writing the same backend are
// NOT coordinated: the last write wins.
type Collection[T any] struct {
	name   string
	kv     KV
	mu     *sync.Mutex
	logger *slog.Logger
}

// NewCollection builds a collection over kv. A nil mu gives the collection
// its own lock.
func NewCollection[T any](kv KV, name string, mu *sync.Mutex, logger *slog.Logger) *Collection[T] {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &Collection[T]{name: name, kv: kv, mu: mu, logger: logger}
}

// Name returns the key the collection is stored under.
func (c *Collection[T]) Name() string {
	return c.name
}

// All returns the stored sequence in insertion order. Absent or corrupt
// data yields an empty, non-nil slice.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Replace overwrites the whole collection with items in a single write.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store(ctx, items)
}

// Append adds item at the end of the collection.
func (c *Collection[T]) Append(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.store(ctx, append(items, item))
}

// Update loads the collection, hands it to fn and stores the result when fn
// reports a change. Nothing is written when changed is false.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) (updated []T, changed bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	updated, changed := fn(items)
	if !changed {
		return nil
	}
	return c.store(ctx, updated)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", c.name, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.logger.Warn("corrupt collection treated as empty",
			slog.String("collection", c.name),
			slog.String("error", err.Error()),
		)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) store(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("storage: encoding %s: %w", c.name, err)
	}
	if err := c.kv.Set(ctx, c.name, string(data)); err != nil {
		return fmt.Errorf("storage: writing %s: %w", c.name, err)
	}
	return nil
}

// Store bundles the five named collections over one KV.
type Store struct {
	Users      *Collection[model.User]
	Groups     *Collection[model.Group]
	Mentorings *Collection[model.Mentoring]
	Mentors    *Collection[model.MentorProfile]
	Materials  *Collection[model.Material]

	kv KV
}

// NewStore wires the collections to kv with one shared lock.
func NewStore(kv KV, logger *slog.Logger) *Store {
	mu := &sync.Mutex{}
	return &Store{
		Users:      NewCollection[model.User](kv, UsersKey, mu, logger),
		Groups:     NewCollection[model.Group](kv, GroupsKey, mu, logger),
		Mentorings: NewCollection[model.Mentoring](kv, MentoringsKey, mu, logger),
		Mentors:    NewCollection[model.MentorProfile](kv, MentorsKey, mu, logger),
		Materials:  NewCollection[model.Material](kv, MaterialsKey, mu, logger),
		kv:         kv,
	}
}

// KV returns the underlying store, e.g. for a PersistentSession.
func (s *Store) KV() KV {
	return s.kv
}
