package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/config"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type CallbackHandler interface {
	HandleCallback(ctx context.Context, cb entities.PaymentCallback) (entities.CallbackResult, error)
}

// CallbackMessage is a gateway notification delivered through Kafka.
type CallbackMessage struct {
	TransactionID string            `json:"transaction_id" validate:"required,startswith=TXN-"`
	Status        string            `json:"status" validate:"required"`
	Raw           map[string]string `json:"raw"`
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	svc      CallbackHandler
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc CallbackHandler) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.CallbackTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// HandleCallback retries transient failures itself.
		if err := h.handleCallback(ctx, m); err != nil {
			callbacksFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			callbacksDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleCallback(ctx context.Context, m kafka.Message) error {
	start := time.Now()
	defer func() { callbackProcessingDuration.Observe(time.Since(start).Seconds()) }()

	var msg CallbackMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal callback: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid callback data: %w", err)
	}

	res, err := h.svc.HandleCallback(ctx, entities.PaymentCallback{
		TransactionID: msg.TransactionID,
		Status:        msg.Status,
		Raw:           msg.Raw,
	})
	if err != nil {
		return err
	}
	callbacksHandled.WithLabelValues("kafka", callbackOutcome(res)).Inc()
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dlq := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dlq)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
