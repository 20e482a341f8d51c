package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sakif/educonnect/internal/model"
	"github.com/sakif/educonnect/internal/storage"
)

// seqIDs hands out "id-1", "id-2", ... so tests can predict ids.
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func ptr[T any](v T) *T { return &v }

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv wires every service to one in-memory store.
type testEnv struct {
	kv        *storage.MemoryKV
	store     *storage.Store
	auth      *AuthService
	groups    *GroupService
	mentors   *MentorService
	materials *MaterialService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithKV(t, storage.NewMemoryKV())
}

func newTestEnvWithKV(t *testing.T, kv *storage.MemoryKV) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewStore(kv, logger)
	deps := Deps{
		Store:  store,
		IDs:    &seqIDs{},
		Now:    func() time.Time { return testNow },
		Logger: logger,
	}
	return &testEnv{
		kv:        kv,
		store:     store,
		auth:      NewAuthService(deps, ""),
		groups:    NewGroupService(deps),
		mentors:   NewMentorService(deps),
		materials: NewMaterialService(deps),
	}
}

// register creates a user in its own session and fails the test on error.
func (e *testEnv) register(t *testing.T, name, email string) (*model.User, *MemorySession) {
	t.Helper()
	sess := NewMemorySession("")
	user, err := e.auth.Register(context.Background(), sess, RegisterInput{
		Name:     name,
		Email:    email,
		Password: "senha1",
	})
	require.NoError(t, err)
	return user, sess
}
