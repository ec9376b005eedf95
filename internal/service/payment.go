package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/google/uuid"
)

const (
	vnpayGateway = "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"
	momoGateway  = "https://test-payment.momo.vn/gw_payment/payment/qr"
)

// BankAccount is shown to customers paying by bank transfer.
type BankAccount struct {
	BankName      string
	AccountNumber string
	AccountName   string
}

var DefaultBankAccount = BankAccount{
	BankName:      "Vietcombank",
	AccountNumber: "1234567890",
	AccountName:   "Herbal Pharmacy",
}

type paymentService struct {
	logger    *slog.Logger
	txManager TxManager
	repo      PaymentRepo
	orders    OrderRepo
	cache     Cache
	events    EventPublisher
	baseURL   string
	bank      BankAccount
	now       func() time.Time
}

func NewPaymentService(
	logger *slog.Logger,
	txManager TxManager,
	repo PaymentRepo,
	orders OrderRepo,
	cache Cache,
	events EventPublisher,
	baseURL string,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		txManager: txManager,
		repo:      repo,
		orders:    orders,
		cache:     cache,
		events:    events,
		baseURL:   strings.TrimRight(baseURL, "/"),
		bank:      DefaultBankAccount,
		now:       time.Now,
	}
}

// CreatePayment starts an online payment for the order. A pending payment
// that already exists is returned unchanged.
func (s *paymentService) CreatePayment(ctx context.Context, caller entities.Caller, orderID string, provider entities.PaymentProvider, returnURL string) (entities.Payment, error) {
	if !provider.Valid() {
		return entities.Payment{}, &entities.ValidationError{Field: "provider", Reason: "unknown payment provider"}
	}

	var payment entities.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := authorize(caller, order); err != nil {
			return err
		}
		if order.Status == entities.OrderStatusCancelled {
			return entities.ErrOrderNotPayable
		}
		if order.IsPaid {
			return entities.ErrAlreadyPaid
		}

		existing, err := s.repo.ListOrderPayments(ctx, orderID)
		if err != nil {
			return err
		}
		for _, p := range existing {
			if p.Status == entities.PaymentStatusCompleted {
				return entities.ErrAlreadyPaid
			}
		}
		for _, p := range existing {
			if p.Status == entities.PaymentStatusPending {
				payment = p
				return nil
			}
		}

		payment, err = s.create(ctx, order, provider, returnURL)
		return err
	})
	if err != nil {
		return entities.Payment{}, err
	}

	s.cache.Delete(ctx, orderKey(orderID))
	return payment, nil
}

// CreatePendingForOrder opens the payment that goes with an order placed
// with an online payment method. It runs inside the checkout transaction.
func (s *paymentService) CreatePendingForOrder(ctx context.Context, order entities.Order) (entities.Payment, error) {
	provider, ok := entities.ProviderFor(order.PaymentMethod)
	if !ok {
		return entities.Payment{}, fmt.Errorf("payment method %s: %w", order.PaymentMethod, entities.ErrOrderNotPayable)
	}
	return s.create(ctx, order, provider, "")
}

func (s *paymentService) CloseOrderPayments(ctx context.Context, orderID string) error {
	return s.repo.CloseOrderPayments(ctx, orderID)
}

func (s *paymentService) create(ctx context.Context, order entities.Order, provider entities.PaymentProvider, returnURL string) (entities.Payment, error) {
	now := s.now().UTC()
	payment := entities.Payment{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		TransactionID: "TXN-" + uuid.NewString(),
		Provider:      provider,
		Amount:        order.Total,
		Status:        entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.simulateGateway(order, &payment, returnURL)

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return entities.Payment{}, err
	}

	s.logger.Info("payment created",
		slog.String("order_id", order.ID),
		slog.String("transaction_id", payment.TransactionID),
		slog.String("provider", string(provider)),
	)
	return payment, nil
}

// simulateGateway fills the payment URL the customer is sent to. No gateway
// is contacted; the URLs carry what a real gateway would need to call back.
func (s *paymentService) simulateGateway(order entities.Order, p *entities.Payment, returnURL string) {
	callbackURL := s.baseURL + "/payments/callback?transactionId=" + url.QueryEscape(p.TransactionID)
	if returnURL == "" {
		returnURL = s.baseURL + "/payment-result"
	}

	gatewayQuery := url.Values{
		"amount":        {order.Total.String()},
		"orderId":       {order.Number},
		"returnUrl":     {callbackURL},
		"userReturnUrl": {returnURL},
		"txnRef":        {p.TransactionID},
	}

	switch p.Provider {
	case entities.ProviderVNPay:
		p.PaymentURL = vnpayGateway + "?" + gatewayQuery.Encode()
	case entities.ProviderMomo:
		p.PaymentURL = momoGateway + "?" + gatewayQuery.Encode()
	case entities.ProviderBankTransfer:
		p.Metadata = map[string]string{
			"bankName":        s.bank.BankName,
			"accountNumber":   s.bank.AccountNumber,
			"accountName":     s.bank.AccountName,
			"transferContent": "Payment for " + order.Number,
		}
		p.PaymentURL = returnURL + "?" + url.Values{"txnRef": {p.TransactionID}, "provider": {"bank"}}.Encode()
	case entities.ProviderCreditCard:
		p.PaymentURL = s.baseURL + "/checkout/credit-card?" + url.Values{
			"orderId":   {order.ID},
			"amount":    {order.Total.String()},
			"returnUrl": {callbackURL},
		}.Encode()
	default:
		p.PaymentURL = returnURL + "?" + url.Values{"txnRef": {p.TransactionID}, "provider": {string(p.Provider)}}.Encode()
	}
}

// HandleCallback applies a gateway notification. Only pending payments
// change; a repeated success for a completed payment is acknowledged
// without side effects. Rows are locked order first, then payment, the
// same order cancellation uses.
func (s *paymentService) HandleCallback(ctx context.Context, cb entities.PaymentCallback) (entities.CallbackResult, error) {
	if cb.TransactionID == "" {
		return entities.CallbackResult{}, &entities.ValidationError{Field: "transactionId", Reason: "is required"}
	}

	var (
		result entities.CallbackResult
		paid   *entities.Order
	)
	apply := func() error {
		paid = nil
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			found, err := s.repo.GetPaymentByTransaction(ctx, cb.TransactionID)
			if err != nil {
				return err
			}
			order, err := s.orders.GetOrderForUpdate(ctx, found.OrderID)
			if err != nil {
				return err
			}
			payment, err := s.repo.GetPaymentForUpdate(ctx, found.ID)
			if err != nil {
				return err
			}
			result = entities.CallbackResult{Payment: payment}

			switch strings.ToLower(cb.Status) {
			case entities.CallbackSuccess, entities.CallbackCompleted:
				if payment.Status == entities.PaymentStatusCompleted {
					result.Success = true
					result.Message = "Payment already completed"
					return nil
				}
				if payment.Status != entities.PaymentStatusPending {
					result.Message = "Payment is already closed"
					return nil
				}
				if err := s.complete(ctx, &payment, &order, cb.Raw); err != nil {
					return err
				}
				paid = &order
				result = entities.CallbackResult{Success: true, Message: "Payment completed successfully", Payment: payment}
			case entities.CallbackFailed, entities.CallbackCancel:
				if payment.Status == entities.PaymentStatusPending {
					payment.Status = entities.PaymentStatusFailed
					payment.ProviderResponse = cb.Raw
					if err := s.repo.UpdatePayment(ctx, payment); err != nil {
						return err
					}
				}
				result = entities.CallbackResult{Message: "Payment failed or cancelled", Payment: payment}
			default:
				result.Message = "Unknown payment status"
			}
			return nil
		})
	}

	if err := utils.Retry(ctx, utils.DefaultRetry, apply, entities.ErrPaymentNotFound, entities.ErrOrderNotFound); err != nil {
		return entities.CallbackResult{}, err
	}

	s.cache.Delete(ctx, orderKey(result.Payment.OrderID))
	if paid != nil {
		s.publish(ctx, entities.NewOrderEvent(entities.OrderPaid, *paid))
	}

	s.logger.Info("payment callback handled",
		slog.String("transaction_id", cb.TransactionID),
		slog.String("status", cb.Status),
		slog.Bool("success", result.Success),
	)
	return result, nil
}

func (s *paymentService) complete(ctx context.Context, payment *entities.Payment, order *entities.Order, raw map[string]string) error {
	now := s.now().UTC()

	payment.Status = entities.PaymentStatusCompleted
	payment.PaidAt = &now
	payment.ProviderResponse = raw
	if err := s.repo.UpdatePayment(ctx, *payment); err != nil {
		return err
	}

	order.IsPaid = true
	order.PaidAt = &now
	if order.Status == entities.OrderStatusPending {
		order.Status = entities.OrderStatusProcessing
	}
	return s.orders.UpdateOrder(ctx, *order)
}

func (s *paymentService) GetPayment(ctx context.Context, caller entities.Caller, id string) (entities.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}

	order, err := s.orders.GetOrderByID(ctx, payment.OrderID)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := authorize(caller, order); err != nil {
		return entities.Payment{}, err
	}
	return payment, nil
}

func (s *paymentService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("type", string(event.Type)),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
