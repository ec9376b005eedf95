package service

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/cache"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory implementation of every repository port.
// fakeTx snapshots it when a transaction starts and restores the snapshot
// when the transaction fails.
type memStore struct {
	mu sync.Mutex

	products  map[int64]entities.Product
	cart      map[int64]map[int64]entities.CartItem
	addresses map[int64]entities.Address
	promos    map[string]entities.Promotion
	orders    map[string]entities.Order
	payments  map[string]entities.Payment

	nextItemID int64

	// failures makes the named method return the error.
	failures map[string]error
	// locks lists the rows taken with row locks, in order.
	locks []string
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[int64]entities.Product{},
		cart:      map[int64]map[int64]entities.CartItem{},
		addresses: map[int64]entities.Address{},
		promos:    map[string]entities.Promotion{},
		orders:    map[string]entities.Order{},
		payments:  map[string]entities.Payment{},
		failures:  map[string]error{},
	}
}

type snapshot struct {
	products   map[int64]entities.Product
	cart       map[int64]map[int64]entities.CartItem
	promos     map[string]entities.Promotion
	orders     map[string]entities.Order
	payments   map[string]entities.Payment
	nextItemID int64
}

func (s *memStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := make(map[int64]map[int64]entities.CartItem, len(s.cart))
	for user, items := range s.cart {
		cart[user] = maps.Clone(items)
	}
	return snapshot{
		products:   maps.Clone(s.products),
		cart:       cart,
		promos:     maps.Clone(s.promos),
		orders:     maps.Clone(s.orders),
		payments:   maps.Clone(s.payments),
		nextItemID: s.nextItemID,
	}
}

func (s *memStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = snap.products
	s.cart = snap.cart
	s.promos = snap.promos
	s.orders = snap.orders
	s.payments = snap.payments
	s.nextItemID = snap.nextItemID
}

func (s *memStore) takenLocks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.locks)
}

func (s *memStore) resetLocks() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locks = nil
}

func (s *memStore) fail(method string) error {
	return s.failures[method]
}

func (s *memStore) addProduct(p entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Status == "" {
		p.Status = entities.ProductStatusActive
	}
	if p.Slug == "" {
		p.Slug = strings.ToLower(strings.ReplaceAll(p.Name, " ", "-"))
	}
	s.products[p.ID] = p
}

func (s *memStore) addPromotion(p entities.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promos[p.ID] = p
}

func (s *memStore) stock(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *memStore) promotion(id string) entities.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.promos[id]
}

// ProductRepo

func (s *memStore) GetProductByID(_ context.Context, id int64) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: id}
	}
	return p, nil
}

func (s *memStore) GetProductBySlug(_ context.Context, slug string) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return entities.Product{}, entities.ErrProductNotFound
}

func (s *memStore) GetProductsByIDs(_ context.Context, ids []int64) (map[int64]entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make(map[int64]entities.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			res[id] = p
		}
	}
	return res, nil
}

func (s *memStore) ListProducts(_ context.Context, filter entities.ProductFilter) (entities.Page[entities.Product], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []entities.Product
	for _, p := range s.products {
		if filter.OnlyActive && !p.IsActive() {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		all = append(all, p)
	}
	slices.SortFunc(all, func(a, b entities.Product) int { return cmp.Compare(a.ID, b.ID) })
	return paginate(all, filter.Page, filter.Limit), nil
}

func (s *memStore) UpdateProduct(_ context.Context, id int64, patch entities.ProductPatch) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: id}
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.SalePrice != nil {
		p.SalePrice = *patch.SalePrice
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	s.products[id] = p
	return p, nil
}

func (s *memStore) DecrementStock(_ context.Context, productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("DecrementStock"); err != nil {
		return err
	}
	p, ok := s.products[productID]
	if !ok || p.Stock < qty {
		return entities.ErrInsufficientStock
	}
	p.Stock -= qty
	s.products[productID] = p
	return nil
}

func (s *memStore) RestoreStock(_ context.Context, productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[productID]; ok {
		p.Stock += qty
		s.products[productID] = p
	}
	return nil
}

// CartRepo

func (s *memStore) GetCartItems(_ context.Context, userID int64) ([]entities.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := slices.Collect(maps.Values(s.cart[userID]))
	slices.SortFunc(items, func(a, b entities.CartItem) int { return cmp.Compare(a.ProductID, b.ProductID) })
	return items, nil
}

func (s *memStore) GetCartItem(_ context.Context, userID, productID int64) (entities.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.cart[userID][productID]
	if !ok {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	return it, nil
}

func (s *memStore) SetItemQuantity(_ context.Context, userID, productID int64, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart[userID] == nil {
		s.cart[userID] = map[int64]entities.CartItem{}
	}
	s.cart[userID][productID] = entities.CartItem{UserID: userID, ProductID: productID, Quantity: qty, CreatedAt: time.Now()}
	return nil
}

func (s *memStore) RemoveItem(_ context.Context, userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cart[userID][productID]; !ok {
		return entities.ErrCartItemNotFound
	}
	delete(s.cart[userID], productID)
	return nil
}

func (s *memStore) ClearCart(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("ClearCart"); err != nil {
		return err
	}
	delete(s.cart, userID)
	return nil
}

// AddressRepo

func (s *memStore) GetAddress(_ context.Context, id, userID int64) (entities.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.addresses[id]
	if !ok || a.UserID != userID {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	return a, nil
}

// PromotionRepo

func (s *memStore) GetPromotionByCode(_ context.Context, code string) (entities.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.promos {
		if strings.EqualFold(p.Code, code) {
			return p, nil
		}
	}
	return entities.Promotion{}, entities.ErrPromotionNotFound
}

func (s *memStore) IncrementUsage(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("IncrementUsage"); err != nil {
		return err
	}
	p, ok := s.promos[id]
	if !ok || (p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit) {
		return entities.ErrPromotionExhausted
	}
	p.UsageCount++
	s.promos[id] = p
	return nil
}

func (s *memStore) CreatePromotion(_ context.Context, p entities.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.promos {
		if strings.EqualFold(existing.Code, p.Code) {
			return entities.ErrPromotionExists
		}
	}
	s.promos[p.ID] = p
	return nil
}

func (s *memStore) ListActivePromotions(_ context.Context, now time.Time) ([]entities.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []entities.Promotion
	for _, p := range s.promos {
		if p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate) {
			res = append(res, p)
		}
	}
	return res, nil
}

func (s *memStore) DeletePromotion(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.promos[id]; !ok {
		return entities.ErrPromotionNotFound
	}
	delete(s.promos, id)
	return nil
}

// OrderRepo

func (s *memStore) SaveOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SaveOrder"); err != nil {
		return err
	}
	o.Items = nil
	o.Payments = nil
	s.orders[o.ID] = o
	return nil
}

func (s *memStore) SaveItems(_ context.Context, orderID string, items []entities.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("SaveItems"); err != nil {
		return err
	}
	o := s.orders[orderID]
	stored := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		s.nextItemID++
		it.ID = s.nextItemID
		it.OrderID = orderID
		stored = append(stored, it)
	}
	o.Items = stored
	s.orders[orderID] = o
	return nil
}

func (s *memStore) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderLocked(id)
}

func (s *memStore) GetOrderForUpdate(_ context.Context, id string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locks = append(s.locks, "order:"+id)
	return s.orderLocked(id)
}

func (s *memStore) orderLocked(id string) (entities.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o.Items = slices.Clone(o.Items)
	o.Payments = s.orderPaymentsLocked(id)
	return o, nil
}

func (s *memStore) orderPaymentsLocked(orderID string) []entities.Payment {
	var res []entities.Payment
	for _, p := range s.payments {
		if p.OrderID == orderID {
			res = append(res, p)
		}
	}
	slices.SortFunc(res, func(a, b entities.Payment) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return res
}

func (s *memStore) ListOrders(_ context.Context, filter entities.OrderFilter) (entities.Page[entities.Order], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []entities.Order
	for id := range s.orders {
		o, _ := s.orderLocked(id)
		if filter.Owner != nil && o.Owner != filter.Owner {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(o.Number, filter.Search) {
			continue
		}
		all = append(all, o)
	}
	slices.SortFunc(all, func(a, b entities.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return paginate(all, filter.Page, filter.Limit), nil
}

func (s *memStore) UpdateOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[o.ID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	stored.Status = o.Status
	stored.IsPaid = o.IsPaid
	stored.TrackingNumber = o.TrackingNumber
	stored.StatusNote = o.StatusNote
	stored.CancelReason = o.CancelReason
	stored.PaidAt = o.PaidAt
	stored.ShippedAt = o.ShippedAt
	stored.DeliveredAt = o.DeliveredAt
	stored.CancelledAt = o.CancelledAt
	stored.UpdatedAt = time.Now()
	s.orders[o.ID] = stored
	return nil
}

func (s *memStore) DeleteOrder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return entities.ErrOrderNotFound
	}
	delete(s.orders, id)
	for pid, p := range s.payments {
		if p.OrderID == id {
			delete(s.payments, pid)
		}
	}
	return nil
}

// PaymentRepo

func (s *memStore) CreatePayment(_ context.Context, p entities.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("CreatePayment"); err != nil {
		return err
	}
	s.payments[p.ID] = p
	return nil
}

func (s *memStore) GetPaymentByID(_ context.Context, id string) (entities.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return entities.Payment{}, entities.ErrPaymentNotFound
	}
	return p, nil
}

func (s *memStore) GetPaymentByTransaction(_ context.Context, transactionID string) (entities.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.TransactionID == transactionID {
			return p, nil
		}
	}
	return entities.Payment{}, entities.ErrPaymentNotFound
}

func (s *memStore) GetPaymentForUpdate(ctx context.Context, id string) (entities.Payment, error) {
	s.mu.Lock()
	s.locks = append(s.locks, "payment:"+id)
	s.mu.Unlock()
	return s.GetPaymentByID(ctx, id)
}

func (s *memStore) ListOrderPayments(_ context.Context, orderID string) ([]entities.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderPaymentsLocked(orderID), nil
}

func (s *memStore) UpdatePayment(_ context.Context, p entities.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.payments[p.ID]
	if !ok {
		return entities.ErrPaymentNotFound
	}
	stored.Status = p.Status
	stored.ProviderResponse = p.ProviderResponse
	stored.PaidAt = p.PaidAt
	s.payments[p.ID] = stored
	return nil
}

func (s *memStore) CloseOrderPayments(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.OrderID == orderID {
			s.locks = append(s.locks, "payment:"+p.ID)
		}
	}
	for id, p := range s.payments {
		if p.OrderID != orderID {
			continue
		}
		switch p.Status {
		case entities.PaymentStatusPending:
			p.Status = entities.PaymentStatusFailed
		case entities.PaymentStatusCompleted:
			p.Status = entities.PaymentStatusRefunded
		}
		s.payments[id] = p
	}
	return nil
}

func paginate[T any](all []T, page, limit int) entities.Page[T] {
	total := len(all)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	return entities.Page[T]{Items: all[start:end], Total: total, Page: page, Limit: limit}
}

type fakeTxKey struct{}

// fakeTx runs one transaction at a time and rolls the store back when the
// callback fails. A nested Do joins the outer transaction.
type fakeTx struct {
	mu    sync.Mutex
	store *memStore
}

func (t *fakeTx) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ctx.Value(fakeTxKey{}) != nil {
		return callback(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.store.snapshot()
	if err := callback(context.WithValue(ctx, fakeTxKey{}, true)); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.OrderEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event entities.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []entities.OrderEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]entities.OrderEventType, 0, len(p.events))
	for _, e := range p.events {
		res = append(res, e.Type)
	}
	return res
}

type testEnv struct {
	store      *memStore
	tx         *fakeTx
	cache      *cache.LRUCache
	events     *recordingPublisher
	orders     *orderService
	payments   *paymentService
	promotions *promotionService
	now        time.Time
}

var flatShipping = ShippingPolicy{Fee: decimal.NewFromInt(30000)}

func newTestEnv(shipping ShippingPolicy) *testEnv {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemStore()
	tx := &fakeTx{store: store}
	lru := cache.NewLRUCache(100, time.Minute)
	events := &recordingPublisher{}
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	promotions := NewPromotionService(logger, store)
	promotions.now = clock

	payments := NewPaymentService(logger, tx, store, store, lru, events, "http://api.test")
	payments.now = clock

	orders := NewOrderService(logger, tx, OrderRepos{
		Orders:    store,
		Products:  store,
		Cart:      store,
		Addresses: store,
	}, promotions, payments, shipping, lru, events)
	orders.now = clock

	return &testEnv{
		store:      store,
		tx:         tx,
		cache:      lru,
		events:     events,
		orders:     orders,
		payments:   payments,
		promotions: promotions,
		now:        now,
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func ptr[T any](v T) *T {
	return &v
}

var (
	customer = entities.Caller{UserID: 7, Role: entities.RoleCustomer}
	stranger = entities.Caller{UserID: 8, Role: entities.RoleCustomer}
	admin    = entities.Caller{UserID: 1, Role: entities.RoleAdmin}
)

var testShipping = entities.Shipping{
	Name:    "Nguyen Van A",
	Phone:   "0901234567",
	Address: "12 Le Loi",
	City:    "Hanoi",
}

func checkout(caller entities.Caller, items ...entities.CheckoutItem) entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Caller:   caller,
		Items:    items,
		Shipping: testShipping,
	}
}

func item(productID int64, qty int) entities.CheckoutItem {
	return entities.CheckoutItem{ProductID: productID, Quantity: qty}
}
