package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	sess := NewPersistentSession(kv)

	email, err := sess.Email(ctx)
	require.NoError(t, err)
	assert.Empty(t, email, "fresh store has no session")

	require.NoError(t, sess.SetEmail(ctx, "a@x.com"))

	// A second session over the same KV sees the pointer, like a new process would.
	email, err = NewPersistentSession(kv).Email(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	raw, ok, err := kv.Get(ctx, CurrentUserKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", raw)

	require.NoError(t, sess.Clear(ctx))
	email, err = sess.Email(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)
}
