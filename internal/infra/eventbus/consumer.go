package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// ErrRetriesExhausted stops the consumer when a message keeps failing.
var ErrRetriesExhausted = errs.New("payment event retries exhausted")

const maxRetryBackoff = 10 * time.Second

// Handler returns nil only when the message was applied and its offset may be committed.
type Handler func(ctx context.Context, env Envelope) error

// MessageReader is the subset of *kafka.Reader used by the consumer.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ConsumerOptions struct {
	Workers      int
	MaxRetries   int
	RetryBackoff time.Duration
}

func (o ConsumerOptions) withDefaults() ConsumerOptions {
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = 200 * time.Millisecond
	}
	return o
}

type Consumer struct {
	r    MessageReader
	opts ConsumerOptions
}

func NewKafkaReader(cfg config.KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.ConsumerGroup,
		Topic:          cfg.PaymentEventsTopic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
	})
}

func NewConsumer(r MessageReader, opts ConsumerOptions) *Consumer {
	return &Consumer{r: r, opts: opts.withDefaults()}
}

// Run dispatches messages until ctx is cancelled. Each partition is pinned to one worker, so
// its messages are applied and committed in offset order. A failing message is retried in
// place; after MaxRetries Run returns ErrRetriesExhausted without committing it, and the group
// resumes from that offset when the consumer rejoins.
func (c *Consumer) Run(ctx context.Context, h Handler) error {
	defer func() {
		if err := c.r.Close(); err != nil {
			slog.Warn("failed to close kafka reader", "error", err.Error())
		}
	}()

	ctx, stop := context.WithCancelCause(ctx)
	defer stop(nil)

	lanes := make([]chan kafka.Message, c.opts.Workers)
	var wg sync.WaitGroup
	for i := range lanes {
		lanes[i] = make(chan kafka.Message, 4)
		wg.Add(1)
		go func(lane <-chan kafka.Message) {
			defer wg.Done()
			for m := range lane {
				if err := c.handle(ctx, h, m); err != nil {
					stop(err)
					return
				}
			}
		}(lanes[i])
	}

	defer func() {
		for _, lane := range lanes {
			close(lane)
		}
		wg.Wait()
	}()

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return stopCause(ctx)
			}
			return err
		}
		select {
		case lanes[m.Partition%len(lanes)] <- m:
		case <-ctx.Done():
			return stopCause(ctx)
		}
	}
}

// stopCause is nil for a plain shutdown and the worker error otherwise.
func stopCause(ctx context.Context) error {
	cause := context.Cause(ctx)
	if cause == nil || errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		return nil
	}
	return cause
}

func (c *Consumer) handle(ctx context.Context, h Handler, m kafka.Message) error {
	var env Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		// poison message: commit so it does not block the partition
		slog.Error("dropping undecodable payment event",
			"topic", m.Topic,
			"partition", m.Partition,
			"offset", m.Offset,
			"error", err.Error())
		c.commit(ctx, m)
		return nil
	}

	backoff := c.opts.RetryBackoff
	for attempt := 1; ; attempt++ {
		err := h(ctx, env)
		if err == nil {
			c.commit(ctx, m)
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		slog.Error("payment event handler failed",
			"event_id", env.EventID,
			"event_type", env.EventType,
			"partition", m.Partition,
			"offset", m.Offset,
			"attempt", attempt,
			"error", err.Error())
		if attempt > c.opts.MaxRetries {
			return errs.Wrapf(ErrRetriesExhausted, "partition %d offset %d: %v", m.Partition, m.Offset, err)
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

func (c *Consumer) commit(ctx context.Context, m kafka.Message) {
	if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
		slog.Warn("failed to commit kafka offset", "partition", m.Partition, "offset", m.Offset, "error", err.Error())
	}
}
