package eventbus

import (
	"context"
	"log/slog"
	"time"

	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used by the producer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	w            MessageWriter
	writeTimeout time.Duration
}

// NewKafkaWriter builds a synchronous writer so the relay learns about every failed publish.
// The topic is set per message.
func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           cfg.PublishWriteTimeout,
	}
}

func NewProducer(w MessageWriter, writeTimeout time.Duration) *Producer {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Producer{
		w:            w,
		writeTimeout: writeTimeout,
	}
}

// Publish writes one message keyed by the aggregate id so events of an order stay ordered.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte, headers map[string]string) error {
	ctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
	}
	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "kafka: publish to %s", topic)
	}
	return nil
}

func (p *Producer) Close() {
	if err := p.w.Close(); err != nil {
		slog.Warn("failed to close kafka writer", "error", err.Error())
	}
}
