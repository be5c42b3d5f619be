package redisx

import (
	"context"
	"log/slog"
	"time"

	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect opens a client and pings it. A failed ping is logged but not fatal, since
// dedup is an optimization on top of idempotent event handling.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func()) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis ping failed, continuing without dedup guarantee", "addr", cfg.Addr, "error", err.Error())
	} else {
		slog.Info("redis connected", "addr", cfg.Addr)
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return rdb, cleanup
}

func wrapRedisErr(err error, op string) error {
	return errs.Wrap(err, "redis: "+op)
}
