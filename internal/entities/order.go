package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition out of s exists.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancellable reports whether an order in status s may still be cancelled.
func (s OrderStatus) Cancellable() bool {
	return s.CanTransitionTo(OrderStatusCancelled)
}

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "cash_on_delivery"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodEWallet      PaymentMethod = "e_wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodCreditCard, PaymentMethodEWallet:
		return true
	}
	return false
}

// Owner is either UserOwner or GuestOwner.
type Owner interface {
	owner()
}

type UserOwner struct {
	UserID int64
}

type GuestOwner struct {
	Phone string
}

func (UserOwner) owner()  {}
func (GuestOwner) owner() {}

// Shipping is copied into the order at checkout and never follows later
// changes of the saved address it may come from.
type Shipping struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	City     string
	District string
	Ward     string
}

type Order struct {
	ID     string
	Number string
	Owner  Owner

	Shipping Shipping
	Notes    string

	Status        OrderStatus
	PaymentMethod PaymentMethod
	IsPaid        bool

	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal

	PromotionCode  string
	TrackingNumber string
	StatusNote     string
	CancelReason   string

	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items    []OrderItem
	Payments []Payment
}

// OrderItem is a snapshot of the product at checkout time.
type OrderItem struct {
	ID          int64
	OrderID     string
	ProductID   int64
	ProductName string
	SKU         string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

// OwnedBy reports whether the caller is the owner of the order.
func (o Order) OwnedBy(c Caller) bool {
	switch owner := o.Owner.(type) {
	case UserOwner:
		return c.UserID != 0 && c.UserID == owner.UserID
	case GuestOwner:
		return c.GuestPhone != "" && c.GuestPhone == owner.Phone
	default:
		return false
	}
}

// AccessibleBy reports whether the caller may read or mutate the order.
func (o Order) AccessibleBy(c Caller) bool {
	return c.IsAdmin() || o.OwnedBy(c)
}

type OrderFilter struct {
	Owner  Owner
	Status OrderStatus
	Search string
	Page   int
	Limit  int
}

// StatusUpdate is the admin-supplied transition with its metadata.
type StatusUpdate struct {
	Status         OrderStatus
	TrackingNumber string
	Note           string
	CancelReason   string
}

type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}

func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
