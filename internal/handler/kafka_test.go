package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	mocks "github.com/SergeyBogomolovv/herbal-pharmacy/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader returns the queued messages and then io.EOF.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written []kafka.Message
	err     error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func newTestKafkaHandler(t *testing.T, msgs ...kafka.Message) (*kafkaHandler, *fakeReader, *fakeWriter, *mocks.MockPaymentService) {
	reader := &fakeReader{queue: msgs}
	dlq := &fakeWriter{}
	svc := mocks.NewMockPaymentService(t)
	return &kafkaHandler{
		dlq:      dlq,
		reader:   reader,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(),
		svc:      svc,
	}, reader, dlq, svc
}

func message(offset int64, value string) kafka.Message {
	return kafka.Message{Topic: "payment-callbacks", Offset: offset, Key: []byte("TXN-1"), Value: []byte(value)}
}

func TestKafkaHandler_Consume(t *testing.T) {
	h, reader, dlq, svc := newTestKafkaHandler(t,
		message(1, `{"transaction_id":"TXN-1","status":"success","raw":{"code":"00"}}`),
		message(2, `{"transaction_id":"TXN-2","status":"failed"}`),
		message(3, `not json`),
		message(4, `{"transaction_id":"bogus","status":"success"}`),
	)

	svc.EXPECT().
		HandleCallback(mock.Anything, entities.PaymentCallback{TransactionID: "TXN-1", Status: "success", Raw: map[string]string{"code": "00"}}).
		Return(entities.CallbackResult{Success: true}, nil).Once()
	svc.EXPECT().
		HandleCallback(mock.Anything, entities.PaymentCallback{TransactionID: "TXN-2", Status: "failed"}).
		Return(entities.CallbackResult{}, entities.ErrPaymentNotFound).Once()

	h.Consume(context.Background())

	require.Len(t, reader.committed, 4, "every message is committed once handled or parked")
	require.Len(t, dlq.written, 3)
	for _, m := range dlq.written {
		assert.Equal(t, "payment-callbacks-dlq", m.Topic)
	}
	assert.Equal(t, `not json`, string(dlq.written[1].Value))
}

func TestKafkaHandler_DLQFailureSkipsCommit(t *testing.T) {
	h, reader, dlq, _ := newTestKafkaHandler(t, message(1, `{}`))
	dlq.err = errors.New("broker down")

	h.Consume(context.Background())

	assert.Empty(t, reader.committed)
}
