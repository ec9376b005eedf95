package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentProvider string

const (
	ProviderBankTransfer PaymentProvider = "bank_transfer"
	ProviderVNPay        PaymentProvider = "vnpay"
	ProviderMomo         PaymentProvider = "momo"
	ProviderCreditCard   PaymentProvider = "credit_card"
	ProviderPaypal       PaymentProvider = "paypal"
	ProviderZaloPay      PaymentProvider = "zalopay"
)

func (p PaymentProvider) Valid() bool {
	switch p {
	case ProviderBankTransfer, ProviderVNPay, ProviderMomo, ProviderCreditCard, ProviderPaypal, ProviderZaloPay:
		return true
	}
	return false
}

// ProviderFor maps an online payment method to the provider used by default.
func ProviderFor(m PaymentMethod) (PaymentProvider, bool) {
	switch m {
	case PaymentMethodBankTransfer:
		return ProviderBankTransfer, true
	case PaymentMethodCreditCard:
		return ProviderCreditCard, true
	case PaymentMethodEWallet:
		return ProviderMomo, true
	}
	return "", false
}

type Payment struct {
	ID               string
	OrderID          string
	TransactionID    string
	Provider         PaymentProvider
	Amount           decimal.Decimal
	Status           PaymentStatus
	PaymentURL       string
	Metadata         map[string]string
	ProviderResponse map[string]string
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PaymentCallback is a gateway notification about a transaction outcome.
type PaymentCallback struct {
	TransactionID string
	Status        string
	Raw           map[string]string
}

const (
	CallbackSuccess   = "success"
	CallbackCompleted = "completed"
	CallbackFailed    = "failed"
	CallbackCancel    = "cancel"
)

type CallbackResult struct {
	Success bool
	Message string
	Payment Payment
}
