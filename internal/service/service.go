package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type TxManager interface {
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, keys ...string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type ProductRepo interface {
	GetProductByID(ctx context.Context, id int64) (entities.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (entities.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]entities.Product, error)
	ListProducts(ctx context.Context, filter entities.ProductFilter) (entities.Page[entities.Product], error)
	UpdateProduct(ctx context.Context, id int64, patch entities.ProductPatch) (entities.Product, error)

	// DecrementStock returns ErrInsufficientStock when fewer than qty units are left.
	DecrementStock(ctx context.Context, productID int64, qty int) error
	RestoreStock(ctx context.Context, productID int64, qty int) error
}

type CartRepo interface {
	GetCartItems(ctx context.Context, userID int64) ([]entities.CartItem, error)
	GetCartItem(ctx context.Context, userID, productID int64) (entities.CartItem, error)
	SetItemQuantity(ctx context.Context, userID, productID int64, qty int) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type PromotionRepo interface {
	GetPromotionByCode(ctx context.Context, code string) (entities.Promotion, error)

	// IncrementUsage returns ErrPromotionExhausted when the usage limit is reached.
	IncrementUsage(ctx context.Context, id string) error
	CreatePromotion(ctx context.Context, p entities.Promotion) error
	ListActivePromotions(ctx context.Context, now time.Time) ([]entities.Promotion, error)
	DeletePromotion(ctx context.Context, id string) error
}

type AddressRepo interface {
	GetAddress(ctx context.Context, id, userID int64) (entities.Address, error)
}

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) (entities.Page[entities.Order], error)
	UpdateOrder(ctx context.Context, o entities.Order) error
	DeleteOrder(ctx context.Context, id string) error
}

type PaymentRepo interface {
	CreatePayment(ctx context.Context, p entities.Payment) error
	GetPaymentByID(ctx context.Context, id string) (entities.Payment, error)
	GetPaymentByTransaction(ctx context.Context, transactionID string) (entities.Payment, error)
	GetPaymentForUpdate(ctx context.Context, id string) (entities.Payment, error)
	ListOrderPayments(ctx context.Context, orderID string) ([]entities.Payment, error)
	UpdatePayment(ctx context.Context, p entities.Payment) error
	CloseOrderPayments(ctx context.Context, orderID string) error
}

// ShippingPolicy charges a flat fee, waived from FreeThreshold on when it is set.
type ShippingPolicy struct {
	Fee           decimal.Decimal
	FreeThreshold decimal.Decimal
}

func (p ShippingPolicy) FeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if p.FreeThreshold.IsPositive() && subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}
	return p.Fee
}

func productKey(id int64) string {
	return "product:" + strconv.FormatInt(id, 10)
}

func productSlugKey(slug string) string {
	return "product:slug:" + slug
}

func orderKey(id string) string {
	return "order:" + id
}

// normalizePage applies the listing defaults and bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// authorize hides other guests' orders behind not-found and refuses
// signed-in callers that do not own the order.
func authorize(c entities.Caller, o entities.Order) error {
	if o.AccessibleBy(c) {
		return nil
	}
	if c.IsGuest() {
		return entities.ErrOrderNotFound
	}
	return fmt.Errorf("order %s: %w", o.ID, entities.ErrForbidden)
}
