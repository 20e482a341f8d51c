package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a real server named by EDUCONNECT_TEST_POSTGRES_DSN.
func TestKV_Lifecycle(t *testing.T) {
	dsn := os.Getenv("EDUCONNECT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("EDUCONNECT_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	kv, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	key := "test-" + xid.New().String()
	t.Cleanup(func() { _ = kv.Delete(context.Background(), key) })

	_, ok, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, key, "[]"))
	require.NoError(t, kv.Set(ctx, key, `["second"]`))

	value, ok, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["second"]`, value)

	require.NoError(t, kv.Delete(ctx, key))
	_, ok, err = kv.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_BadDSN(t *testing.T) {
	_, err := New(context.Background(), "://not a dsn")
	assert.Error(t, err)
}
