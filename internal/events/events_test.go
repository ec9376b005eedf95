package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := &KafkaPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), writer: writer}
	at := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), entities.OrderEvent{
		Type:       entities.OrderPaid,
		OrderID:    "order-1",
		Number:     "ORD-20250615-ABCDEF12",
		Status:     entities.OrderStatusProcessing,
		Total:      decimal.NewFromInt(230000),
		OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, writer.msgs, 1)

	msg := writer.msgs[0]
	assert.Equal(t, "order-1", string(msg.Key))

	var body Message
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, Message{
		Type:       "order.paid",
		OrderID:    "order-1",
		Number:     "ORD-20250615-ABCDEF12",
		Status:     "processing",
		Total:      "230000.00",
		OccurredAt: at,
	}, body)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		writer: &fakeWriter{err: errors.New("broker down")},
	}

	err := p.Publish(context.Background(), entities.OrderEvent{Type: entities.OrderCreated, OrderID: "x"})
	assert.ErrorContains(t, err, "broker down")
}
