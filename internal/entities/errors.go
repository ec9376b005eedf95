package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrAddressNotFound   = errors.New("address not found")
	ErrCartItemNotFound  = errors.New("cart item not found")

	ErrEmptyOrder         = errors.New("order has no items")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrAlreadyPaid        = errors.New("order is already paid")
	ErrOrderNotPayable    = errors.New("order cannot be paid")
	ErrPromotionRejected  = errors.New("promotion cannot be applied")
	ErrPromotionExhausted = errors.New("promotion usage limit reached")
	ErrPromotionExists    = errors.New("promotion with this code already exists")

	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError is a malformed request detected before any side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

type ProductUnavailableError struct {
	ProductID int64
	Name      string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %q is not available", e.Name)
}

func (e *ProductUnavailableError) Unwrap() error { return ErrProductUnavailable }

type InsufficientStockError struct {
	ProductID int64
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %q: requested %d, available %d", e.Name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order cannot move from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

type RejectReason string

const (
	RejectInactive        RejectReason = "inactive"
	RejectExpired         RejectReason = "expired"
	RejectExhausted       RejectReason = "exhausted"
	RejectMinimumPurchase RejectReason = "minimum_purchase_not_met"
)

// PromotionRejectedError describes why an existing promotion cannot be used.
type PromotionRejectedError struct {
	Code   string
	Reason RejectReason
}

func (e *PromotionRejectedError) Error() string {
	return fmt.Sprintf("promotion %s rejected: %s", e.Code, e.Reason)
}

func (e *PromotionRejectedError) Unwrap() error { return ErrPromotionRejected }
