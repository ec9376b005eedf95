package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutItem struct {
	ProductID int64
	Quantity  int
}

// CheckoutRequest takes items either from the caller's cart or from Items,
// and shipping either from a saved address or from Shipping.
type CheckoutRequest struct {
	Caller Caller

	UseCart bool
	Items   []CheckoutItem

	AddressID int64
	Shipping  Shipping

	Notes         string
	PaymentMethod PaymentMethod
	PromotionCode string
}

// CheckoutResult is what a successful checkout returns to the caller.
type CheckoutResult struct {
	Order   Order
	Payment *Payment

	// PromotionRejected is set when a promotion code was supplied but did
	// not produce a discount.
	PromotionRejected RejectReason
}

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderCancelled     OrderEventType = "order.cancelled"
	OrderStatusChanged OrderEventType = "order.status_changed"
	OrderPaid          OrderEventType = "order.paid"
	OrderDeleted       OrderEventType = "order.deleted"
)

type OrderEvent struct {
	Type       OrderEventType
	OrderID    string
	Number     string
	Status     OrderStatus
	Total      decimal.Decimal
	OccurredAt time.Time
}

func NewOrderEvent(t OrderEventType, o Order) OrderEvent {
	return OrderEvent{
		Type:       t,
		OrderID:    o.ID,
		Number:     o.Number,
		Status:     o.Status,
		Total:      o.Total,
		OccurredAt: time.Now().UTC(),
	}
}

func Marshal[T any](v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal[T any](data []byte) (T, error) {
	var v T
	err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v)
	return v, err
}

func init() {
	gob.Register(UserOwner{})
	gob.Register(GuestOwner{})
}
