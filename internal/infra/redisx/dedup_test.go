//go:build unit

package redisx_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"gin-order-service/internal/infra/redisx"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDedupClient struct {
	mu   sync.Mutex
	keys map[string]time.Duration
	err  error
}

func newFakeDedupClient() *fakeDedupClient {
	return &fakeDedupClient{keys: make(map[string]time.Duration)}
}

func (f *fakeDedupClient) SetNX(ctx context.Context, key string, _ interface{}, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.keys[key]; ok {
		cmd.SetVal(false)
		return cmd
	}
	f.keys[key] = expiration
	cmd.SetVal(true)
	return cmd
}

func (f *fakeDedupClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			delete(f.keys, k)
			n++
		}
	}
	cmd.SetVal(n)
	return cmd
}

func TestDedupStore(t *testing.T) {
	ctx := context.Background()

	t.Run("success: first claim wins, second is a duplicate", func(t *testing.T) {
		client := newFakeDedupClient()
		store := redisx.NewDedupStore(client, "payments", time.Hour)

		first, err := store.Claim(ctx, "evt_1")
		require.NoError(t, err)
		second, err := store.Claim(ctx, "evt_1")
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
		assert.Equal(t, time.Hour, client.keys["dedup:payments:evt_1"])
	})

	t.Run("success: forget allows a retry", func(t *testing.T) {
		store := redisx.NewDedupStore(newFakeDedupClient(), "payments", 0)

		_, err := store.Claim(ctx, "evt_2")
		require.NoError(t, err)
		require.NoError(t, store.Forget(ctx, "evt_2"))

		again, err := store.Claim(ctx, "evt_2")
		require.NoError(t, err)
		assert.True(t, again)
	})

	t.Run("error: redis failure is returned", func(t *testing.T) {
		client := newFakeDedupClient()
		client.err = assert.AnError
		store := redisx.NewDedupStore(client, "payments", time.Hour)

		ok, err := store.Claim(ctx, "evt_3")
		assert.False(t, ok)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
