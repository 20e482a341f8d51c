package redis

import (
	"context"
	"os"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests talk to a real server and are skipped unless
// EDUCONNECT_TEST_REDIS_ADDR points at one.
func newTestKV(t *testing.T) *KV {
	t.Helper()
	addr := os.Getenv("EDUCONNECT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("EDUCONNECT_TEST_REDIS_ADDR not set")
	}

	cfg := DefaultConfig()
	cfg.Addr = addr
	// unique prefix per test so runs never see each other's keys
	cfg.Prefix = "educonnect-test:" + xid.New().String() + ":"

	kv, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "localhost:6379", cfg.Addr)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
}

func TestNewFromClient_DefaultPrefix(t *testing.T) {
	kv := NewFromClient(nil, "")
	assert.Equal(t, "educonnect:users", kv.key("users"))
}

func TestKV_Lifecycle(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "users", "[]"))
	value, ok, err := kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)

	require.NoError(t, kv.Delete(ctx, "users"))
	_, ok, err = kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, ok)
}
