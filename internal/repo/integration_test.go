//go:build integration

package repo_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/config"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/events"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/postgres"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/repo"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/service"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/cache"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

type orderWorkflow interface {
	CreateOrder(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error)
	CancelOrder(ctx context.Context, caller entities.Caller, id, reason string) (entities.Order, error)
	ListOrders(ctx context.Context, caller entities.Caller, filter entities.OrderFilter) (entities.Page[entities.Order], error)
}

type callbackHandler interface {
	HandleCallback(ctx context.Context, cb entities.PaymentCallback) (entities.CallbackResult, error)
}

type promotionCreator interface {
	CreatePromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error)
}

type stack struct {
	db         *sqlx.DB
	orders     orderWorkflow
	payments   callbackHandler
	promotions promotionCreator
}

func setupStack(t *testing.T) *stack {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pharmacy"),
		tcpostgres.WithUsername("pharmacy"),
		tcpostgres.WithPassword("pharmacy"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Connect(dsn, config.Postgres{MaxOpenConns: 20, MaxIdleConns: 20})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, postgres.Migrate(ctx, db))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tx := trm.NewManager(db)
	lru := cache.NewLRUCache(100, time.Minute)
	publisher := events.NewLogPublisher(logger)
	orderRepo := repo.NewOrderRepo(db)

	promotions := service.NewPromotionService(logger, repo.NewPromotionRepo(db))
	payments := service.NewPaymentService(logger, tx, repo.NewPaymentRepo(db), orderRepo, lru, publisher, "http://api.test")
	orders := service.NewOrderService(logger, tx,
		service.OrderRepos{
			Orders:    orderRepo,
			Products:  repo.NewProductRepo(db),
			Cart:      repo.NewCartRepo(db),
			Addresses: repo.NewAddressRepo(db),
		},
		promotions, payments,
		service.ShippingPolicy{Fee: decimal.NewFromInt(30000)},
		lru, publisher,
	)

	return &stack{db: db, orders: orders, payments: payments, promotions: promotions}
}

func (s *stack) addProduct(t *testing.T, slug string, price int64, stock int) int64 {
	t.Helper()
	var id int64
	err := s.db.QueryRowx(
		`INSERT INTO products (name, slug, price, stock) VALUES ($1, $2, $3, $4) RETURNING id`,
		"Product "+slug, slug, price, stock,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func (s *stack) stock(t *testing.T, id int64) int {
	t.Helper()
	var stock int
	require.NoError(t, s.db.Get(&stock, `SELECT stock FROM products WHERE id = $1`, id))
	return stock
}

func guestCheckout(phone string, productID int64, qty int, method entities.PaymentMethod, promo string) entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Caller:        entities.Guest(phone),
		Items:         []entities.CheckoutItem{{ProductID: productID, Quantity: qty}},
		Shipping:      entities.Shipping{Name: "Lan", Phone: phone, Address: "12 Hang Bac", City: "Hanoi"},
		PaymentMethod: method,
		PromotionCode: promo,
	}
}

func TestCheckout_LastUnitIsSoldOnce(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()
	productID := s.addProduct(t, "ginseng-tea", 120000, 1)

	const buyers = 10
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		outOfStock int
	)
	for i := range buyers {
		wg.Go(func() {
			_, err := s.orders.CreateOrder(ctx, guestCheckout(fmt.Sprintf("090000%04d", i), productID, 1, entities.PaymentMethodCOD, ""))
			mu.Lock()
			defer mu.Unlock()
			var stockErr *entities.InsufficientStockError
			switch {
			case err == nil:
				succeeded++
			case errors.As(err, &stockErr):
				outOfStock++
			default:
				t.Errorf("unexpected checkout error: %v", err)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, buyers-1, outOfStock)
	assert.Equal(t, 0, s.stock(t, productID))

	var orders int
	require.NoError(t, s.db.Get(&orders, `SELECT count(*) FROM orders`))
	assert.Equal(t, 1, orders)
}

func TestCheckout_PromotionUsageLimit(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()
	productID := s.addProduct(t, "lotus-seeds", 100000, 50)

	limit := 2
	now := time.Now()
	_, err := s.promotions.CreatePromotion(ctx, entities.Promotion{
		Name:       "Two only",
		Code:       "TWO",
		Type:       entities.PromotionPercentage,
		Amount:     decimal.NewFromInt(10),
		UsageLimit: &limit,
		IsActive:   true,
		StartDate:  now.Add(-time.Hour),
		EndDate:    now.Add(time.Hour),
	})
	require.NoError(t, err)

	const buyers = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		discounted int
	)
	for i := range buyers {
		wg.Go(func() {
			res, err := s.orders.CreateOrder(ctx, guestCheckout(fmt.Sprintf("091000%04d", i), productID, 1, entities.PaymentMethodCOD, "two"))
			if !assert.NoError(t, err) {
				return
			}
			if res.Order.Discount.IsPositive() {
				mu.Lock()
				discounted++
				mu.Unlock()
				assert.True(t, res.Order.Discount.Equal(decimal.NewFromInt(10000)))
			} else {
				assert.Equal(t, entities.RejectExhausted, res.PromotionRejected)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, limit, discounted)
	var used int
	require.NoError(t, s.db.Get(&used, `SELECT usage_count FROM promotions WHERE code = 'TWO'`))
	assert.Equal(t, limit, used)
	assert.Equal(t, 50-buyers, s.stock(t, productID))
}

func TestCheckout_PaymentAndCancelRoundTrip(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()
	productID := s.addProduct(t, "chrysanthemum", 80000, 5)
	phone := "0912345678"
	guest := entities.Guest(phone)

	placed, err := s.orders.CreateOrder(ctx, guestCheckout(phone, productID, 2, entities.PaymentMethodBankTransfer, ""))
	require.NoError(t, err)
	require.NotNil(t, placed.Payment)
	assert.True(t, placed.Order.Total.Equal(decimal.NewFromInt(190000)))
	assert.Equal(t, 3, s.stock(t, productID))

	res, err := s.payments.HandleCallback(ctx, entities.PaymentCallback{
		TransactionID: placed.Payment.TransactionID,
		Status:        entities.CallbackSuccess,
		Raw:           map[string]string{"status": "success"},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)

	page, err := s.orders.ListOrders(ctx, guest, entities.OrderFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	got := page.Items[0]
	assert.Equal(t, entities.OrderStatusProcessing, got.Status)
	assert.True(t, got.IsPaid)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, entities.PaymentStatusCompleted, got.Payments[0].Status)

	cancelled, err := s.orders.CancelOrder(ctx, guest, got.ID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.IsPaid)
	assert.Equal(t, 5, s.stock(t, productID))

	var status string
	require.NoError(t, s.db.Get(&status, `SELECT status FROM payments WHERE id = $1`, placed.Payment.ID))
	assert.Equal(t, string(entities.PaymentStatusRefunded), status)
}

func TestCheckout_CallbackRacesCancel(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()
	const orders = 20
	productID := s.addProduct(t, "mulberry-leaf", 50000, orders)

	type placedOrder struct {
		phone string
		res   entities.CheckoutResult
	}
	placed := make([]placedOrder, 0, orders)
	for i := range orders {
		phone := fmt.Sprintf("092000%04d", i)
		res, err := s.orders.CreateOrder(ctx, guestCheckout(phone, productID, 1, entities.PaymentMethodBankTransfer, ""))
		require.NoError(t, err)
		require.NotNil(t, res.Payment)
		placed = append(placed, placedOrder{phone: phone, res: res})
	}
	require.Equal(t, 0, s.stock(t, productID))

	var wg sync.WaitGroup
	for _, p := range placed {
		wg.Go(func() {
			_, err := s.payments.HandleCallback(ctx, entities.PaymentCallback{
				TransactionID: p.res.Payment.TransactionID,
				Status:        entities.CallbackSuccess,
			})
			assert.NoError(t, err)
		})
		wg.Go(func() {
			_, err := s.orders.CancelOrder(ctx, entities.Guest(p.phone), p.res.Order.ID, "changed my mind")
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	assert.Equal(t, orders, s.stock(t, productID))
	for _, p := range placed {
		var row struct {
			Status string `db:"status"`
			IsPaid bool   `db:"is_paid"`
		}
		require.NoError(t, s.db.Get(&row, `SELECT status, is_paid FROM orders WHERE id = $1`, p.res.Order.ID))
		assert.Equal(t, string(entities.OrderStatusCancelled), row.Status)
		assert.False(t, row.IsPaid)

		var payment string
		require.NoError(t, s.db.Get(&payment, `SELECT status FROM payments WHERE id = $1`, p.res.Payment.ID))
		assert.Contains(t, []string{string(entities.PaymentStatusFailed), string(entities.PaymentStatusRefunded)}, payment)
	}
}
