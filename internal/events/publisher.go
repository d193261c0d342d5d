package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mindebamsen/checkout-service/internal/config"
	"github.com/mindebamsen/checkout-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// Publisher emits order status-change events for downstream consumers
// (fulfillment, notifications). Publication is best-effort: callers log
// failures but never fail the request over them.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *Publisher) PublishStatusChange(ctx context.Context, change entities.StatusChange) error {
	value, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal status change: %w", err)
	}

	// Key by reference so all events for one order stay ordered within a
	// partition.
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.Reference),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish status change: %w", err)
	}

	p.logger.DebugContext(ctx, "status change published",
		slog.String("reference", change.Reference),
		slog.String("to", string(change.To)),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
