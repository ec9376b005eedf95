package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	}
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
		OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:    {OrderStatusDelivered},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, OrderStatusPending.Cancellable())
	assert.True(t, OrderStatusProcessing.Cancellable())
	assert.False(t, OrderStatusShipped.Cancellable())
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatus("lost").Valid())
}

func TestOrder_AccessibleBy(t *testing.T) {
	userOrder := Order{Owner: UserOwner{UserID: 7}}
	guestOrder := Order{Owner: GuestOwner{Phone: "0912345678"}}

	testCases := []struct {
		name   string
		order  Order
		caller Caller
		want   bool
	}{
		{name: "owner", order: userOrder, caller: Caller{UserID: 7, Role: RoleCustomer}, want: true},
		{name: "other customer", order: userOrder, caller: Caller{UserID: 8, Role: RoleCustomer}},
		{name: "admin", order: userOrder, caller: Caller{UserID: 1, Role: RoleAdmin}, want: true},
		{name: "guest with phone", order: guestOrder, caller: Guest("0912345678"), want: true},
		{name: "guest with other phone", order: guestOrder, caller: Guest("0999999999")},
		{name: "anonymous", order: guestOrder, caller: Caller{}},
		{name: "user on guest order", order: guestOrder, caller: Caller{UserID: 7, Role: RoleCustomer}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.order.AccessibleBy(tc.caller))
		})
	}
}

func TestOrder_GobKeepsOwner(t *testing.T) {
	o := Order{ID: "o-1", Owner: GuestOwner{Phone: "0912345678"}, Total: decimal.RequireFromString("150000.50")}

	data, err := Marshal(o)
	require.NoError(t, err)
	got, err := Unmarshal[Order](data)
	require.NoError(t, err)

	assert.Equal(t, GuestOwner{Phone: "0912345678"}, got.Owner)
	assert.True(t, got.Total.Equal(o.Total))
}

func TestPage_TotalPages(t *testing.T) {
	assert.Equal(t, 0, Page[int]{Total: 0, Limit: 10}.TotalPages())
	assert.Equal(t, 1, Page[int]{Total: 10, Limit: 10}.TotalPages())
	assert.Equal(t, 3, Page[int]{Total: 21, Limit: 10}.TotalPages())
	assert.Equal(t, 0, Page[int]{Total: 5}.TotalPages())
}

func TestProviderFor(t *testing.T) {
	p, ok := ProviderFor(PaymentMethodEWallet)
	assert.True(t, ok)
	assert.Equal(t, ProviderMomo, p)

	_, ok = ProviderFor(PaymentMethodCOD)
	assert.False(t, ok)
}
