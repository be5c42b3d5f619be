package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gin-order-service/internal/infra/eventbus"
	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventBusModule = fx.Module("eventbus",
	fx.Invoke(
		StartOutboxRelay,
		StartPaymentEventConsumer,
	),
)

// StartOutboxRelay runs the relay for the lifetime of the app. Without brokers, order events
// stay queued in the outbox table.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock) {
	if !cfg.Kafka.Enabled() {
		slog.Info("kafka brokers not configured, outbox relay disabled")
		return
	}

	producer := eventbus.NewProducer(eventbus.NewKafkaWriter(cfg.Kafka), cfg.Kafka.PublishWriteTimeout)
	relay := eventbus.NewOutboxRelay(uow, producer, clk, eventbus.RelayOptions{
		Topics:      map[string]string{shared.TopicOrders: cfg.Kafka.OrderEventsTopic},
		Producer:    cfg.Kafka.ProducerName,
		Interval:    cfg.Kafka.RelayInterval,
		BatchSize:   cfg.Kafka.RelayBatchSize,
		MaxAttempts: cfg.Kafka.RelayMaxAttempts,
	})

	appendBackground(lc, "outbox relay", func(ctx context.Context) error {
		relay.Run(ctx)
		return nil
	}, producer.Close)
}

// StartPaymentEventConsumer applies payment outcomes published by an upstream payment service.
// It only runs when a payment events topic is configured.
func StartPaymentEventConsumer(lc fx.Lifecycle, cfg config.Config, cmds commands.PaymentEventCommands) {
	if !cfg.Kafka.Enabled() || cfg.Kafka.PaymentEventsTopic == "" {
		return
	}

	opts := eventbus.ConsumerOptions{
		Workers:      cfg.Kafka.ConsumerWorkers,
		MaxRetries:   cfg.Kafka.ConsumerMaxRetries,
		RetryBackoff: cfg.Kafka.ConsumerRetryBackoff,
	}
	handler := eventbus.PaymentEventHandler(cmds.HandlePaymentEvent)

	// a stopped consumer leaves the group; rejoining resumes from the last committed offset
	appendBackground(lc, "payment event consumer", func(ctx context.Context) error {
		for {
			err := eventbus.NewConsumer(eventbus.NewKafkaReader(cfg.Kafka), opts).Run(ctx, handler)
			if err == nil || ctx.Err() != nil {
				return err
			}
			slog.Error("payment event consumer stopped, rejoining",
				"error", err.Error(),
				"delay", cfg.Kafka.ConsumerRestartDelay.String())

			select {
			case <-time.After(cfg.Kafka.ConsumerRestartDelay):
			case <-ctx.Done():
				return nil
			}
		}
	}, nil)
}

func appendBackground(lc fx.Lifecycle, name string, run func(ctx context.Context) error, closeFn func()) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := run(ctx); err != nil {
					slog.Error(name+" exited", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-stopCtx.Done():
				slog.Warn(name+" did not stop in time")
			}
			if closeFn != nil {
				closeFn()
			}
			return nil
		},
	})
}
