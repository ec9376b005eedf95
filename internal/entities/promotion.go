package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PromotionType string

const (
	PromotionPercentage   PromotionType = "percentage"
	PromotionFixedAmount  PromotionType = "fixed_amount"
	PromotionFreeShipping PromotionType = "free_shipping"
)

func (t PromotionType) Valid() bool {
	switch t {
	case PromotionPercentage, PromotionFixedAmount, PromotionFreeShipping:
		return true
	}
	return false
}

type Promotion struct {
	ID              string
	Name            string
	Code            string
	Description     string
	Type            PromotionType
	Amount          decimal.Decimal
	MinimumPurchase decimal.NullDecimal
	UsageLimit      *int
	UsageCount      int
	IsActive        bool
	StartDate       time.Time
	EndDate         time.Time
	CreatedAt       time.Time
}

// Check returns nil when the promotion may be applied to subtotal at now,
// otherwise a *PromotionRejectedError naming the reason.
func (p Promotion) Check(now time.Time, subtotal decimal.Decimal) error {
	switch {
	case !p.IsActive:
		return &PromotionRejectedError{Code: p.Code, Reason: RejectInactive}
	case now.Before(p.StartDate) || now.After(p.EndDate):
		return &PromotionRejectedError{Code: p.Code, Reason: RejectExpired}
	case p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit:
		return &PromotionRejectedError{Code: p.Code, Reason: RejectExhausted}
	case p.MinimumPurchase.Valid && subtotal.LessThan(p.MinimumPurchase.Decimal):
		return &PromotionRejectedError{Code: p.Code, Reason: RejectMinimumPurchase}
	}
	return nil
}

var hundred = decimal.NewFromInt(100)

// Discount computes the discount produced for the given subtotal and
// shipping fee, capped so that the order total never drops below zero.
func (p Promotion) Discount(subtotal, shippingFee decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch p.Type {
	case PromotionPercentage:
		amount = subtotal.Mul(p.Amount).Div(hundred)
	case PromotionFixedAmount:
		amount = p.Amount
	case PromotionFreeShipping:
		amount = shippingFee
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(amount, subtotal.Add(shippingFee)).Round(2)
}
