package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobhub_backend/pkg/kvstore"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	err = client.Ping(context.Background()).Err()
	require.NoError(t, err)

	return client, mr
}

func TestRedisBackend(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()
	backend := kvstore.NewRedisBackend(client)

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		_, err := backend.Get(ctx, "conquista_properties")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, backend.Set(ctx, "conquista_settings", `{"siteName":"x"}`))

		value, err := backend.Get(ctx, "conquista_settings")
		require.NoError(t, err)
		assert.Equal(t, `{"siteName":"x"}`, value)
		assert.Equal(t, time.Duration(0), mr.TTL("conquista_settings"))
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, backend.Set(ctx, "conquista_auth", `{"id":"1"}`))
		require.NoError(t, backend.Delete(ctx, "conquista_auth"))
		assert.False(t, mr.Exists("conquista_auth"))
	})

	t.Run("store over redis", func(t *testing.T) {
		store := kvstore.New(backend)
		kvstore.SetList(store, "items", []item{{ID: "1", Name: "redis"}})

		items := kvstore.GetList[item](store, "items")
		require.Len(t, items, 1)
		assert.Equal(t, "redis", items[0].Name)
	})
}
