package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gin-order-service/internal/pkg/clock"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte, headers map[string]string) error
}

type RelayOptions struct {
	Topics      map[string]string
	Producer    string
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
	PurgeEvery  int
}

// OutboxRelay drains queued order events to Kafka. Each batch runs in its own transaction so
// rows claimed by one relay instance are skipped by the others.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	opts      RelayOptions
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, opts RelayOptions) *OutboxRelay {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 10
	}
	if opts.Interval <= 0 {
		opts.Interval = 2 * time.Second
	}
	if opts.PurgeEvery <= 0 {
		opts.PurgeEvery = 300
	}
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		opts:      opts,
	}
}

// Run polls until ctx is cancelled. Expired idempotency keys are purged every PurgeEvery ticks.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	slog.Info("outbox relay started", "interval", r.opts.Interval.String(), "batch_size", r.opts.BatchSize)
	tick := 0
	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay batch failed", "error", err.Error())
			}
			tick++
			if tick%r.opts.PurgeEvery == 0 {
				r.purgeExpiredKeys(ctx)
			}
		}
	}
}

// RunOnce publishes one batch and returns how many events were sent.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		msgs, err := tx.Outbox().ClaimDue(ctx, now, r.opts.BatchSize)
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			if pubErr := r.publish(ctx, msg); pubErr != nil {
				attempts := msg.Attempts + 1
				giveUp := attempts >= r.opts.MaxAttempts
				slog.Warn("outbox publish failed",
					"event_id", msg.ID.String(),
					"event_type", msg.Type,
					"attempt", attempts,
					"give_up", giveUp,
					"error", pubErr.Error())
				if err := tx.Outbox().MarkRetry(ctx, msg.ID, pubErr.Error(), now.Add(retryDelay(attempts)), giveUp); err != nil {
					return err
				}
				continue
			}
			if err := tx.Outbox().MarkSent(ctx, msg.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

func (r *OutboxRelay) publish(ctx context.Context, msg shared.OutboxMessage) error {
	topic, ok := r.opts.Topics[msg.Topic]
	if !ok || topic == "" {
		return errs.Newf("no kafka topic configured for %q", msg.Topic)
	}

	value, err := json.Marshal(Envelope{
		EventID:       msg.ID.String(),
		EventType:     msg.Type,
		EventVersion:  EnvelopeVersion,
		OccurredAt:    msg.CreatedAt,
		Producer:      r.opts.Producer,
		CorrelationID: msg.AggregateID.String(),
		Payload:       msg.Payload,
	})
	if err != nil {
		return errs.Wrap(err, "encode envelope")
	}

	return r.publisher.Publish(ctx, topic, []byte(msg.AggregateID.String()), value, map[string]string{
		"event_type": msg.Type,
	})
}

func (r *OutboxRelay) purgeExpiredKeys(ctx context.Context) {
	var deleted int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Idempotency().DeleteExpired(ctx)
		return err
	})
	if err != nil {
		slog.Warn("failed to purge expired idempotency keys", "error", err.Error())
		return
	}
	if deleted > 0 {
		slog.Info("purged expired idempotency keys", "count", deleted)
	}
}

// retryDelay grows quadratically and caps at ten minutes.
func retryDelay(attempts int) time.Duration {
	d := time.Duration(attempts*attempts) * time.Second
	return min(d, 10*time.Minute)
}
