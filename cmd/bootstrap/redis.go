package bootstrap

import (
	"context"

	"gin-order-service/internal/infra/redisx"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const webhookDedupScope = "payment_webhook"

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewWebhookDeduper,
			fx.As(new(commands.EventDeduper)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb, cleanup := redisx.Connect(context.Background(), cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return rdb
}

func NewWebhookDeduper(rdb *redis.Client, cfg config.Config) *redisx.DedupStore {
	return redisx.NewDedupStore(rdb, webhookDedupScope, cfg.Redis.DedupTTL)
}
