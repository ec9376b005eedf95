package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_CreatePayment(t *testing.T) {
	testCases := []struct {
		name     string
		method   entities.PaymentMethod
		caller   entities.Caller
		provider entities.PaymentProvider
		prepare  func(t *testing.T, env *testEnv, o entities.CheckoutResult)
		wantErr  error
		invalid  bool
		check    func(t *testing.T, o entities.CheckoutResult, p entities.Payment)
	}{
		{
			name:     "vnpay payment for cash order",
			method:   entities.PaymentMethodCOD,
			caller:   customer,
			provider: entities.ProviderVNPay,
			check: func(t *testing.T, o entities.CheckoutResult, p entities.Payment) {
				assert.Equal(t, entities.PaymentStatusPending, p.Status)
				assert.True(t, p.Amount.Equal(o.Order.Total))

				u, err := url.Parse(p.PaymentURL)
				require.NoError(t, err)
				assert.Equal(t, "sandbox.vnpayment.vn", u.Host)
				assert.Equal(t, o.Order.Number, u.Query().Get("orderId"))
				assert.Equal(t, p.TransactionID, u.Query().Get("txnRef"))
				assert.Equal(t, "http://api.test/payments/callback?transactionId="+url.QueryEscape(p.TransactionID), u.Query().Get("returnUrl"))
			},
		},
		{
			name:     "bank transfer carries instructions",
			method:   entities.PaymentMethodCOD,
			caller:   customer,
			provider: entities.ProviderBankTransfer,
			check: func(t *testing.T, o entities.CheckoutResult, p entities.Payment) {
				assert.Equal(t, "Vietcombank", p.Metadata["bankName"])
				assert.Equal(t, "Payment for "+o.Order.Number, p.Metadata["transferContent"])
				assert.Contains(t, p.PaymentURL, "provider=bank")
			},
		},
		{
			name:     "existing pending payment is reused",
			method:   entities.PaymentMethodEWallet,
			caller:   customer,
			provider: entities.ProviderVNPay,
			check: func(t *testing.T, o entities.CheckoutResult, p entities.Payment) {
				require.NotNil(t, o.Payment)
				assert.Equal(t, o.Payment.ID, p.ID)
				assert.Equal(t, entities.ProviderMomo, p.Provider)
			},
		},
		{
			name:     "admin may open a payment",
			method:   entities.PaymentMethodCOD,
			caller:   admin,
			provider: entities.ProviderPaypal,
			check: func(t *testing.T, o entities.CheckoutResult, p entities.Payment) {
				assert.Contains(t, p.PaymentURL, "provider=paypal")
			},
		},
		{
			name:     "not the owner",
			method:   entities.PaymentMethodCOD,
			caller:   stranger,
			provider: entities.ProviderVNPay,
			wantErr:  entities.ErrForbidden,
		},
		{
			name:     "unknown provider",
			method:   entities.PaymentMethodCOD,
			caller:   customer,
			provider: "cheque",
			invalid:  true,
		},
		{
			name:     "cancelled order",
			method:   entities.PaymentMethodCOD,
			caller:   customer,
			provider: entities.ProviderVNPay,
			prepare: func(t *testing.T, env *testEnv, o entities.CheckoutResult) {
				_, err := env.orders.CancelOrder(context.Background(), customer, o.Order.ID, "")
				require.NoError(t, err)
			},
			wantErr: entities.ErrOrderNotPayable,
		},
		{
			name:     "already paid",
			method:   entities.PaymentMethodCreditCard,
			caller:   customer,
			provider: entities.ProviderVNPay,
			prepare: func(t *testing.T, env *testEnv, o entities.CheckoutResult) {
				_, err := env.payments.HandleCallback(context.Background(), entities.PaymentCallback{
					TransactionID: o.Payment.TransactionID,
					Status:        entities.CallbackSuccess,
				})
				require.NoError(t, err)
			},
			wantErr: entities.ErrAlreadyPaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(flatShipping)
			seedCatalog(env)
			order := placeOrder(t, env, customer, tc.method, item(1, 1))
			if tc.prepare != nil {
				tc.prepare(t, env, order)
			}

			got, err := env.payments.CreatePayment(context.Background(), tc.caller, order.Order.ID, tc.provider, "")

			if tc.invalid {
				var ve *entities.ValidationError
				assert.ErrorAs(t, err, &ve)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, order, got)
		})
	}
}

func TestPaymentService_HandleCallback(t *testing.T) {
	testCases := []struct {
		name        string
		statuses    []string
		wantSuccess bool
		wantPayment entities.PaymentStatus
		wantOrder   entities.OrderStatus
		wantPaid    bool
	}{
		{
			name:        "success completes payment and order",
			statuses:    []string{entities.CallbackSuccess},
			wantSuccess: true,
			wantPayment: entities.PaymentStatusCompleted,
			wantOrder:   entities.OrderStatusProcessing,
			wantPaid:    true,
		},
		{
			name:        "duplicate success is a no-op",
			statuses:    []string{entities.CallbackCompleted, entities.CallbackSuccess},
			wantSuccess: true,
			wantPayment: entities.PaymentStatusCompleted,
			wantOrder:   entities.OrderStatusProcessing,
			wantPaid:    true,
		},
		{
			name:        "failure leaves order untouched",
			statuses:    []string{entities.CallbackFailed},
			wantPayment: entities.PaymentStatusFailed,
			wantOrder:   entities.OrderStatusPending,
		},
		{
			name:        "success after cancel does not pay a closed payment",
			statuses:    []string{entities.CallbackCancel, entities.CallbackSuccess},
			wantPayment: entities.PaymentStatusFailed,
			wantOrder:   entities.OrderStatusPending,
		},
		{
			name:        "unknown status",
			statuses:    []string{"maybe"},
			wantPayment: entities.PaymentStatusPending,
			wantOrder:   entities.OrderStatusPending,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(flatShipping)
			seedCatalog(env)
			ctx := context.Background()
			order := placeOrder(t, env, customer, entities.PaymentMethodBankTransfer, item(1, 1))
			require.NotNil(t, order.Payment)

			var res entities.CallbackResult
			for _, status := range tc.statuses {
				var err error
				res, err = env.payments.HandleCallback(ctx, entities.PaymentCallback{
					TransactionID: order.Payment.TransactionID,
					Status:        status,
					Raw:           map[string]string{"status": status},
				})
				require.NoError(t, err)
			}

			assert.Equal(t, tc.wantSuccess, res.Success)

			got, err := env.orders.GetOrder(ctx, customer, order.Order.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, got.Status)
			assert.Equal(t, tc.wantPaid, got.IsPaid)
			require.Len(t, got.Payments, 1)
			assert.Equal(t, tc.wantPayment, got.Payments[0].Status)
		})
	}
}

func TestPaymentService_HandleCallback_Errors(t *testing.T) {
	env := newTestEnv(flatShipping)
	ctx := context.Background()

	_, err := env.payments.HandleCallback(ctx, entities.PaymentCallback{Status: entities.CallbackSuccess})
	var ve *entities.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = env.payments.HandleCallback(ctx, entities.PaymentCallback{TransactionID: "TXN-missing", Status: entities.CallbackSuccess})
	assert.ErrorIs(t, err, entities.ErrPaymentNotFound)
}

func TestPaymentService_CallbackAndCancelLockOrderFirst(t *testing.T) {
	env := newTestEnv(flatShipping)
	seedCatalog(env)
	ctx := context.Background()
	placed := placeOrder(t, env, customer, entities.PaymentMethodBankTransfer, item(1, 1))
	orderLock := "order:" + placed.Order.ID
	paymentLock := "payment:" + placed.Payment.ID

	env.store.resetLocks()
	_, err := env.payments.HandleCallback(ctx, entities.PaymentCallback{
		TransactionID: placed.Payment.TransactionID,
		Status:        entities.CallbackSuccess,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{orderLock, paymentLock}, env.store.takenLocks())

	env.store.resetLocks()
	_, err = env.orders.CancelOrder(ctx, customer, placed.Order.ID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{orderLock, paymentLock}, env.store.takenLocks())
}

func TestPaymentService_PaidEventPublished(t *testing.T) {
	env := newTestEnv(flatShipping)
	seedCatalog(env)
	order := placeOrder(t, env, customer, entities.PaymentMethodCreditCard, item(1, 1))

	_, err := env.payments.HandleCallback(context.Background(), entities.PaymentCallback{
		TransactionID: order.Payment.TransactionID,
		Status:        entities.CallbackSuccess,
	})
	require.NoError(t, err)

	assert.Equal(t, []entities.OrderEventType{entities.OrderCreated, entities.OrderPaid}, env.events.types())
}

func TestPaymentService_CancelRefundsCompletedPayment(t *testing.T) {
	env := newTestEnv(flatShipping)
	seedCatalog(env)
	ctx := context.Background()
	order := placeOrder(t, env, customer, entities.PaymentMethodCreditCard, item(1, 1))

	_, err := env.payments.HandleCallback(ctx, entities.PaymentCallback{
		TransactionID: order.Payment.TransactionID,
		Status:        entities.CallbackSuccess,
	})
	require.NoError(t, err)

	got, err := env.orders.CancelOrder(ctx, customer, order.Order.ID, "")
	require.NoError(t, err)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, entities.PaymentStatusRefunded, got.Payments[0].Status)
	assert.False(t, got.IsPaid)
	assert.Nil(t, got.PaidAt)
}

func TestPaymentService_GetPayment(t *testing.T) {
	env := newTestEnv(flatShipping)
	seedCatalog(env)
	ctx := context.Background()
	order := placeOrder(t, env, customer, entities.PaymentMethodEWallet, item(1, 1))

	got, err := env.payments.GetPayment(ctx, customer, order.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Payment.TransactionID, got.TransactionID)

	_, err = env.payments.GetPayment(ctx, stranger, order.Payment.ID)
	assert.ErrorIs(t, err, entities.ErrForbidden)

	_, err = env.payments.GetPayment(ctx, customer, "missing")
	assert.ErrorIs(t, err, entities.ErrPaymentNotFound)
}
