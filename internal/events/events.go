package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/config"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Message is the JSON body written to the order events topic.
type Message struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	Number     string    `json:"order_number"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

func encode(e entities.OrderEvent) (kafka.Message, error) {
	body, err := json.Marshal(Message{
		Type:       string(e.Type),
		OrderID:    e.OrderID,
		Number:     e.Number,
		Status:     string(e.Status),
		Total:      e.Total.StringFixed(2),
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(e.OrderID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}, nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events keyed by order id, so all events of
// one order land on the same partition in order.
type KafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	msg, err := encode(e)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	p.logger.Debug("event published", slog.String("type", string(e.Type)), slog.String("order_id", e.OrderID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher only logs events. It is used when Kafka is disabled.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(slog.String("publisher", "log"))}
}

func (p *LogPublisher) Publish(ctx context.Context, e entities.OrderEvent) error {
	p.logger.InfoContext(ctx, "order event",
		slog.String("type", string(e.Type)),
		slog.String("order_id", e.OrderID),
		slog.String("status", string(e.Status)),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
