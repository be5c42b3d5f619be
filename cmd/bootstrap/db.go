package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"gin-order-service/internal/infra/db"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

type connectFunc func(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error)

// NewDB opens the order store pool. Slot reservations and checkout each hold a connection
// for a whole transaction, so pool exhaustion is logged when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := connectWithRetry(context.Background(), cfg.DB, db.Connect, time.Sleep)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			st := pool.Stat()
			slog.Info("order store pool stats",
				"acquire_count", st.AcquireCount(),
				"empty_acquire_count", st.EmptyAcquireCount(),
				"canceled_acquire_count", st.CanceledAcquireCount(),
				"max_conns", st.MaxConns())
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func connectWithRetry(ctx context.Context, cfg config.DBConfig, connect connectFunc, sleep func(time.Duration)) (*pgxpool.Pool, func(), error) {
	attempts := max(cfg.ConnectAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		pool, cleanup, err := connect(ctx, cfg)
		if err == nil {
			return pool, cleanup, nil
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		slog.Warn("order store not reachable yet",
			"host", cfg.Host,
			"attempt", attempt,
			"of", attempts,
			"error", err.Error())
		sleep(cfg.ConnectRetryDelay)
	}
	return nil, nil, errs.Wrapf(lastErr, "order store unreachable after %d attempts", attempts)
}
