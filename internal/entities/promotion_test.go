package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPromotion_Check(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limit := 5
	base := Promotion{
		Code:      "SUMMER",
		Type:      PromotionPercentage,
		Amount:    d("10"),
		IsActive:  true,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
	}

	testCases := []struct {
		name     string
		mutate   func(p *Promotion)
		subtotal string
		want     RejectReason
	}{
		{name: "usable", subtotal: "100"},
		{name: "disabled", mutate: func(p *Promotion) { p.IsActive = false }, subtotal: "100", want: RejectInactive},
		{name: "not started", mutate: func(p *Promotion) { p.StartDate = now.Add(time.Minute) }, subtotal: "100", want: RejectExpired},
		{name: "ended", mutate: func(p *Promotion) { p.EndDate = now.Add(-time.Minute) }, subtotal: "100", want: RejectExpired},
		{
			name:     "limit reached",
			mutate:   func(p *Promotion) { p.UsageLimit = &limit; p.UsageCount = 5 },
			subtotal: "100",
			want:     RejectExhausted,
		},
		{
			name:     "limit not reached",
			mutate:   func(p *Promotion) { p.UsageLimit = &limit; p.UsageCount = 4 },
			subtotal: "100",
		},
		{
			name:     "below minimum",
			mutate:   func(p *Promotion) { p.MinimumPurchase = decimal.NewNullDecimal(d("200")) },
			subtotal: "199.99",
			want:     RejectMinimumPurchase,
		},
		{
			name:     "exactly minimum",
			mutate:   func(p *Promotion) { p.MinimumPurchase = decimal.NewNullDecimal(d("200")) },
			subtotal: "200",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			if tc.mutate != nil {
				tc.mutate(&p)
			}

			err := p.Check(now, d(tc.subtotal))

			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			var rejected *PromotionRejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, tc.want, rejected.Reason)
			assert.ErrorIs(t, err, ErrPromotionRejected)
		})
	}
}

func TestPromotion_Discount(t *testing.T) {
	testCases := []struct {
		name        string
		typ         PromotionType
		amount      string
		subtotal    string
		shippingFee string
		want        string
	}{
		{name: "percentage", typ: PromotionPercentage, amount: "15", subtotal: "200000", shippingFee: "30000", want: "30000"},
		{name: "percentage rounds to cents", typ: PromotionPercentage, amount: "33", subtotal: "10.01", shippingFee: "0", want: "3.3"},
		{name: "fixed", typ: PromotionFixedAmount, amount: "50000", subtotal: "200000", shippingFee: "30000", want: "50000"},
		{name: "fixed capped by total", typ: PromotionFixedAmount, amount: "500000", subtotal: "200000", shippingFee: "30000", want: "230000"},
		{name: "free shipping", typ: PromotionFreeShipping, amount: "0", subtotal: "200000", shippingFee: "30000", want: "30000"},
		{name: "free shipping without fee", typ: PromotionFreeShipping, amount: "0", subtotal: "200000", shippingFee: "0", want: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Promotion{Type: tc.typ, Amount: d(tc.amount)}
			got := p.Discount(d(tc.subtotal), d(tc.shippingFee))
			assert.True(t, got.Equal(d(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestProduct_UnitPrice(t *testing.T) {
	p := Product{Price: d("100")}
	assert.True(t, p.UnitPrice().Equal(d("100")))

	p.SalePrice = decimal.NewNullDecimal(d("80"))
	assert.True(t, p.UnitPrice().Equal(d("80")))

	p.SalePrice = decimal.NewNullDecimal(d("120"))
	assert.True(t, p.UnitPrice().Equal(d("100")), "sale price above list price is ignored")

	p.SalePrice = decimal.NewNullDecimal(decimal.Zero)
	assert.True(t, p.UnitPrice().Equal(d("100")))
}
