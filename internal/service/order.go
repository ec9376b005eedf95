package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromotionValidator interface {
	Validate(ctx context.Context, code string, subtotal decimal.Decimal) (entities.Promotion, error)
	IncrementUsage(ctx context.Context, id string) error
}

type OrderPayments interface {
	CreatePendingForOrder(ctx context.Context, order entities.Order) (entities.Payment, error)
	CloseOrderPayments(ctx context.Context, orderID string) error
}

// OrderRepos groups the stores the order workflow reads and writes.
type OrderRepos struct {
	Orders    OrderRepo
	Products  ProductRepo
	Cart      CartRepo
	Addresses AddressRepo
}

type orderService struct {
	logger     *slog.Logger
	txManager  TxManager
	repos      OrderRepos
	promotions PromotionValidator
	payments   OrderPayments
	shipping   ShippingPolicy
	cache      Cache
	events     EventPublisher
	now        func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager TxManager,
	repos OrderRepos,
	promotions PromotionValidator,
	payments OrderPayments,
	shipping ShippingPolicy,
	cache Cache,
	events EventPublisher,
) *orderService {
	return &orderService{
		logger:     logger.With(slog.String("service", "order")),
		txManager:  txManager,
		repos:      repos,
		promotions: promotions,
		payments:   payments,
		shipping:   shipping,
		cache:      cache,
		events:     events,
		now:        time.Now,
	}
}

// CreateOrder places an order. Stock, promotion usage, the order with its
// items, the cart and the pending payment are written in one transaction;
// any failure leaves all of them untouched.
func (s *orderService) CreateOrder(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error) {
	if err := validateCheckout(&req); err != nil {
		return entities.CheckoutResult{}, err
	}

	var (
		result   entities.CheckoutResult
		products []entities.Product
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		result = entities.CheckoutResult{}

		items, err := s.resolveItems(ctx, req)
		if err != nil {
			return err
		}

		shipping, err := s.resolveShipping(ctx, req)
		if err != nil {
			return err
		}

		lines, snapshot, err := s.priceItems(ctx, items)
		if err != nil {
			return err
		}
		products = snapshot

		subtotal := decimal.Zero
		for _, line := range lines {
			subtotal = subtotal.Add(line.Subtotal)
		}
		shippingFee := s.shipping.FeeFor(subtotal)

		discount, rejected, err := s.applyPromotion(ctx, req.PromotionCode, subtotal, shippingFee)
		if err != nil {
			return err
		}
		result.PromotionRejected = rejected

		for _, line := range lines {
			if err := s.takeStock(ctx, line); err != nil {
				return err
			}
		}

		now := s.now().UTC()
		order := entities.Order{
			ID:            uuid.NewString(),
			Number:        orderNumber(now),
			Owner:         ownerOf(req.Caller, shipping),
			Shipping:      shipping,
			Notes:         req.Notes,
			Status:        entities.OrderStatusPending,
			PaymentMethod: req.PaymentMethod,
			Subtotal:      subtotal,
			ShippingFee:   shippingFee,
			Discount:      discount,
			Total:         subtotal.Add(shippingFee).Sub(discount),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if req.PromotionCode != "" && rejected == "" {
			order.PromotionCode = normalizeCode(req.PromotionCode)
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		order.Items = lines

		if err := s.repos.Orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.repos.Orders.SaveItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}

		if req.UseCart {
			if err := s.repos.Cart.ClearCart(ctx, req.Caller.UserID); err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}
		}

		if order.PaymentMethod != entities.PaymentMethodCOD {
			payment, err := s.payments.CreatePendingForOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}
			order.Payments = []entities.Payment{payment}
			result.Payment = &payment
		}

		result.Order = order
		return nil
	})
	if err != nil {
		return entities.CheckoutResult{}, err
	}

	s.invalidateProducts(ctx, products...)
	s.publish(ctx, entities.NewOrderEvent(entities.OrderCreated, result.Order))

	s.logger.Info("order created",
		slog.String("order_id", result.Order.ID),
		slog.String("number", result.Order.Number),
		slog.String("total", result.Order.Total.String()),
	)
	return result, nil
}

func validateCheckout(req *entities.CheckoutRequest) error {
	if req.PaymentMethod == "" {
		req.PaymentMethod = entities.PaymentMethodCOD
	}
	if !req.PaymentMethod.Valid() {
		return &entities.ValidationError{Field: "payment_method", Reason: "unknown payment method"}
	}

	if req.UseCart && len(req.Items) > 0 {
		return &entities.ValidationError{Field: "items", Reason: "use either the cart or explicit items"}
	}
	if req.UseCart && req.Caller.IsGuest() {
		return &entities.ValidationError{Field: "use_cart", Reason: "guests have no cart"}
	}
	if !req.UseCart && len(req.Items) == 0 {
		return entities.ErrEmptyOrder
	}
	for _, it := range req.Items {
		if it.ProductID <= 0 {
			return &entities.ValidationError{Field: "product_id", Reason: "must be positive"}
		}
		if it.Quantity <= 0 {
			return &entities.ValidationError{Field: "quantity", Reason: "must be positive"}
		}
	}

	if req.AddressID != 0 {
		if req.Caller.IsGuest() {
			return &entities.ValidationError{Field: "address_id", Reason: "guests have no saved addresses"}
		}
		return nil
	}
	switch {
	case strings.TrimSpace(req.Shipping.Name) == "":
		return &entities.ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(req.Shipping.Phone) == "":
		return &entities.ValidationError{Field: "phone", Reason: "is required"}
	case strings.TrimSpace(req.Shipping.Address) == "":
		return &entities.ValidationError{Field: "address", Reason: "is required"}
	}
	return nil
}

func (s *orderService) resolveItems(ctx context.Context, req entities.CheckoutRequest) ([]entities.CheckoutItem, error) {
	if !req.UseCart {
		return mergeItems(req.Items), nil
	}

	cart, err := s.repos.Cart.GetCartItems(ctx, req.Caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, entities.ErrEmptyOrder
	}

	items := make([]entities.CheckoutItem, 0, len(cart))
	for _, it := range cart {
		items = append(items, entities.CheckoutItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return mergeItems(items), nil
}

func (s *orderService) resolveShipping(ctx context.Context, req entities.CheckoutRequest) (entities.Shipping, error) {
	if req.AddressID == 0 {
		return req.Shipping, nil
	}

	address, err := s.repos.Addresses.GetAddress(ctx, req.AddressID, req.Caller.UserID)
	if err != nil {
		return entities.Shipping{}, err
	}
	shipping := address.ToShipping()
	shipping.Email = req.Shipping.Email
	return shipping, nil
}

// priceItems checks every product and snapshots it into an order item.
func (s *orderService) priceItems(ctx context.Context, items []entities.CheckoutItem) ([]entities.OrderItem, []entities.Product, error) {
	lines := make([]entities.OrderItem, 0, len(items))
	products := make([]entities.Product, 0, len(items))

	for _, it := range items {
		product, err := s.repos.Products.GetProductByID(ctx, it.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if !product.IsActive() {
			return nil, nil, &entities.ProductUnavailableError{ProductID: product.ID, Name: product.Name}
		}
		if it.Quantity > product.Stock {
			return nil, nil, &entities.InsufficientStockError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: it.Quantity,
				Available: product.Stock,
			}
		}

		price := product.UnitPrice()
		lines = append(lines, entities.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         product.SKU,
			UnitPrice:   price,
			Quantity:    it.Quantity,
			Subtotal:    price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
		products = append(products, product)
	}
	return lines, products, nil
}

// applyPromotion returns the discount for code. Unknown codes fail the
// checkout; any other rejection gives no discount and reports the reason.
func (s *orderService) applyPromotion(ctx context.Context, code string, subtotal, shippingFee decimal.Decimal) (decimal.Decimal, entities.RejectReason, error) {
	if strings.TrimSpace(code) == "" {
		return decimal.Zero, "", nil
	}

	promo, err := s.promotions.Validate(ctx, code, subtotal)
	var rejected *entities.PromotionRejectedError
	switch {
	case errors.As(err, &rejected):
		s.logger.Warn("promotion rejected", slog.String("code", rejected.Code), slog.String("reason", string(rejected.Reason)))
		return decimal.Zero, rejected.Reason, nil
	case err != nil:
		return decimal.Zero, "", err
	}

	err = s.promotions.IncrementUsage(ctx, promo.ID)
	switch {
	case errors.Is(err, entities.ErrPromotionExhausted):
		s.logger.Warn("promotion exhausted during checkout", slog.String("code", promo.Code))
		return decimal.Zero, entities.RejectExhausted, nil
	case err != nil:
		return decimal.Zero, "", fmt.Errorf("failed to count promotion usage: %w", err)
	}

	return promo.Discount(subtotal, shippingFee), "", nil
}

func (s *orderService) takeStock(ctx context.Context, line entities.OrderItem) error {
	err := s.repos.Products.DecrementStock(ctx, line.ProductID, line.Quantity)
	if !errors.Is(err, entities.ErrInsufficientStock) {
		return err
	}

	available := 0
	if product, err := s.repos.Products.GetProductByID(ctx, line.ProductID); err == nil {
		available = product.Stock
	}
	return &entities.InsufficientStockError{
		ProductID: line.ProductID,
		Name:      line.ProductName,
		Requested: line.Quantity,
		Available: available,
	}
}

func ownerOf(c entities.Caller, shipping entities.Shipping) entities.Owner {
	if !c.IsGuest() {
		return entities.UserOwner{UserID: c.UserID}
	}
	phone := c.GuestPhone
	if phone == "" {
		phone = strings.TrimSpace(shipping.Phone)
	}
	return entities.GuestOwner{Phone: phone}
}

func orderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD-" + now.Format("20060102") + "-" + suffix
}

// mergeItems sums quantities of repeated products and orders the result
// by product id, which is also the order stock rows are locked in.
func mergeItems(items []entities.CheckoutItem) []entities.CheckoutItem {
	qty := make(map[int64]int, len(items))
	for _, it := range items {
		qty[it.ProductID] += it.Quantity
	}

	merged := make([]entities.CheckoutItem, 0, len(qty))
	for id, q := range qty {
		merged = append(merged, entities.CheckoutItem{ProductID: id, Quantity: q})
	}
	slices.SortFunc(merged, func(a, b entities.CheckoutItem) int {
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	return merged
}

// CancelOrder moves a pending or processing order to cancelled and puts
// its items back in stock.
func (s *orderService) CancelOrder(ctx context.Context, caller entities.Caller, id, reason string) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repos.Orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(caller, current); err != nil {
			return err
		}
		if !current.Status.Cancellable() {
			return &entities.InvalidTransitionError{From: current.Status, To: entities.OrderStatusCancelled}
		}

		if err := s.cancel(ctx, &current, reason); err != nil {
			return err
		}
		if err := s.repos.Orders.UpdateOrder(ctx, current); err != nil {
			return err
		}

		order, err = s.repos.Orders.GetOrderByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.invalidateOrder(ctx, order)
	s.publish(ctx, entities.NewOrderEvent(entities.OrderCancelled, order))
	s.logger.Info("order cancelled", slog.String("order_id", order.ID), slog.String("reason", reason))
	return order, nil
}

// cancel restores stock, closes payments and stamps o as cancelled. A paid
// order is refunded, so it stops counting as paid. The caller persists o.
func (s *orderService) cancel(ctx context.Context, o *entities.Order, reason string) error {
	if err := s.restoreStock(ctx, o.Items); err != nil {
		return err
	}
	if err := s.payments.CloseOrderPayments(ctx, o.ID); err != nil {
		return err
	}

	now := s.now().UTC()
	o.Status = entities.OrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.IsPaid = false
	o.PaidAt = nil
	return nil
}

func (s *orderService) restoreStock(ctx context.Context, items []entities.OrderItem) error {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b entities.OrderItem) int {
		return cmp.Compare(a.ProductID, b.ProductID)
	})
	for _, it := range sorted {
		if err := s.repos.Products.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus applies an admin transition along the order state machine.
func (s *orderService) UpdateStatus(ctx context.Context, caller entities.Caller, id string, upd entities.StatusUpdate) (entities.Order, error) {
	if !caller.IsAdmin() {
		return entities.Order{}, entities.ErrForbidden
	}
	if !upd.Status.Valid() {
		return entities.Order{}, &entities.ValidationError{Field: "status", Reason: "unknown status"}
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repos.Orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !current.Status.CanTransitionTo(upd.Status) {
			return &entities.InvalidTransitionError{From: current.Status, To: upd.Status}
		}

		now := s.now().UTC()
		switch upd.Status {
		case entities.OrderStatusShipped:
			current.ShippedAt = &now
			if upd.TrackingNumber != "" {
				current.TrackingNumber = upd.TrackingNumber
			}
		case entities.OrderStatusDelivered:
			current.DeliveredAt = &now
			if !current.IsPaid {
				current.IsPaid = true
				current.PaidAt = &now
			}
		case entities.OrderStatusCancelled:
			if err := s.cancel(ctx, &current, upd.CancelReason); err != nil {
				return err
			}
		}
		current.Status = upd.Status
		if upd.Note != "" {
			current.StatusNote = upd.Note
		}

		if err := s.repos.Orders.UpdateOrder(ctx, current); err != nil {
			return err
		}
		order, err = s.repos.Orders.GetOrderByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.invalidateOrder(ctx, order)
	eventType := entities.OrderStatusChanged
	if order.Status == entities.OrderStatusCancelled {
		eventType = entities.OrderCancelled
	}
	s.publish(ctx, entities.NewOrderEvent(eventType, order))
	s.logger.Info("order status updated", slog.String("order_id", order.ID), slog.String("status", string(order.Status)))
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, caller entities.Caller, id string) (entities.Order, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if err := authorize(caller, order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) loadOrder(ctx context.Context, id string) (entities.Order, error) {
	key := orderKey(id)
	if data, ok := s.cache.Get(ctx, key); ok {
		order, err := entities.Unmarshal[entities.Order](data)
		if err == nil {
			return order, nil
		}
		s.logger.Warn("dropping broken cache entry", slog.String("key", key), slog.Any("error", err))
		s.cache.Delete(ctx, key)
	}

	var order entities.Order
	err := utils.Retry(ctx, utils.DefaultRetry, func() error {
		var err error
		order, err = s.repos.Orders.GetOrderByID(ctx, id)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	data, err := entities.Marshal(order)
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", id), slog.Any("error", err))
		return order, nil
	}
	s.cache.Set(ctx, key, data)
	return order, nil
}

// ListOrders lists the caller's orders; admins see every order and may
// search by number, customer name or phone.
func (s *orderService) ListOrders(ctx context.Context, caller entities.Caller, filter entities.OrderFilter) (entities.Page[entities.Order], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	if filter.Status != "" && !filter.Status.Valid() {
		return entities.Page[entities.Order]{}, &entities.ValidationError{Field: "status", Reason: "unknown status"}
	}

	if !caller.IsAdmin() {
		filter.Search = ""
		switch {
		case !caller.IsGuest():
			filter.Owner = entities.UserOwner{UserID: caller.UserID}
		case caller.GuestPhone != "":
			filter.Owner = entities.GuestOwner{Phone: caller.GuestPhone}
		default:
			return entities.Page[entities.Order]{}, &entities.ValidationError{Field: "phone", Reason: "is required"}
		}
	}

	return s.repos.Orders.ListOrders(ctx, filter)
}

// DeleteOrder removes an order for good. Stock held by an order that was
// never shipped goes back to the catalog.
func (s *orderService) DeleteOrder(ctx context.Context, caller entities.Caller, id string) error {
	if !caller.IsAdmin() {
		return entities.ErrForbidden
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repos.Orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order.Status.Cancellable() {
			if err := s.restoreStock(ctx, order.Items); err != nil {
				return err
			}
		}
		return s.repos.Orders.DeleteOrder(ctx, id)
	})
	if err != nil {
		return err
	}

	s.invalidateOrder(ctx, order)
	s.publish(ctx, entities.NewOrderEvent(entities.OrderDeleted, order))
	s.logger.Info("order deleted", slog.String("order_id", id))
	return nil
}

func (s *orderService) invalidateOrder(ctx context.Context, o entities.Order) {
	keys := []string{orderKey(o.ID)}
	for _, it := range o.Items {
		keys = append(keys, productKey(it.ProductID))
	}
	s.cache.Delete(ctx, keys...)
}

func (s *orderService) invalidateProducts(ctx context.Context, products ...entities.Product) {
	keys := make([]string, 0, len(products))
	for _, p := range products {
		keys = append(keys, productKey(p.ID))
	}
	s.cache.Delete(ctx, keys...)
}

func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
