//go:build unit

package bootstrap

import (
	"context"
	"testing"
	"time"

	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRefused = errs.New("connection refused")

func TestConnectWithRetry(t *testing.T) {
	cfg := config.DBConfig{Host: "db", ConnectAttempts: 3, ConnectRetryDelay: time.Second}

	t.Run("success: connects once postgres accepts", func(t *testing.T) {
		calls := 0
		var slept []time.Duration
		connect := func(context.Context, config.DBConfig) (*pgxpool.Pool, func(), error) {
			calls++
			if calls < 3 {
				return nil, nil, errRefused
			}
			return nil, func() {}, nil
		}

		_, cleanup, err := connectWithRetry(context.Background(), cfg, connect, func(d time.Duration) { slept = append(slept, d) })
		require.NoError(t, err)
		assert.NotNil(t, cleanup)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []time.Duration{time.Second, time.Second}, slept)
	})

	t.Run("error: gives up after the configured attempts", func(t *testing.T) {
		calls, sleeps := 0, 0
		connect := func(context.Context, config.DBConfig) (*pgxpool.Pool, func(), error) {
			calls++
			return nil, nil, errRefused
		}

		_, _, err := connectWithRetry(context.Background(), cfg, connect, func(time.Duration) { sleeps++ })
		require.Error(t, err)
		assert.True(t, errs.Is(err, errRefused))
		assert.Equal(t, 3, calls)
		assert.Equal(t, 2, sleeps)
	})

	t.Run("success: zero attempts still tries once", func(t *testing.T) {
		calls := 0
		connect := func(context.Context, config.DBConfig) (*pgxpool.Pool, func(), error) {
			calls++
			return nil, func() {}, nil
		}

		_, _, err := connectWithRetry(context.Background(), config.DBConfig{}, connect, func(time.Duration) {})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}
