package repository

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisStorageIntegration runs against a live Redis when REDIS_TEST_ADDR is set
func TestRedisStorageIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	storage, err := NewRedisStorage(ctx, &redis.Options{Addr: addr}, "village_test:")
	require.NoError(t, err)
	defer storage.Close()
	defer storage.RemoveItem(ctx, "village_user")

	require.NoError(t, storage.SetItem(ctx, "village_user", `{"id":"1"}`))

	value, ok, err := storage.GetItem(ctx, "village_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, value)

	require.NoError(t, storage.RemoveItem(ctx, "village_user"))
	_, ok, err = storage.GetItem(ctx, "village_user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoragePrefixesKeys(t *testing.T) {
	storage := NewRedisStorageFromClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "village:")
	defer storage.Close()

	assert.Equal(t, "village:village_user", storage.key("village_user"))
}

func TestNewRedisStorageFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisStorage(ctx, &redis.Options{Addr: "127.0.0.1:1"}, "village:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
