package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type paymentRepo struct {
	postgresRepo
}

func NewPaymentRepo(db *sqlx.DB) *paymentRepo {
	return &paymentRepo{newPostgresRepo(db)}
}

func (r *paymentRepo) CreatePayment(ctx context.Context, p entities.Payment) error {
	query, args := r.qb.Insert("payments").
		Columns(paymentColumns...).
		Values(
			p.ID, p.OrderID, p.TransactionID, string(p.Provider), p.Amount, string(p.Status),
			nullString(p.PaymentURL), mapToJSON(p.Metadata), mapToJSON(p.ProviderResponse),
			nullTime(p.PaidAt), p.CreatedAt, p.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *paymentRepo) GetPaymentByID(ctx context.Context, id string) (entities.Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"id": id}).
		MustSql()
	return r.getPayment(ctx, query, args...)
}

func (r *paymentRepo) GetPaymentByTransaction(ctx context.Context, transactionID string) (entities.Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"transaction_id": transactionID}).
		MustSql()
	return r.getPayment(ctx, query, args...)
}

// GetPaymentForUpdate locks the payment row so that duplicate gateway
// callbacks are applied one at a time. Callers lock the owning order first.
func (r *paymentRepo) GetPaymentForUpdate(ctx context.Context, id string) (entities.Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()
	return r.getPayment(ctx, query, args...)
}

func (r *paymentRepo) getPayment(ctx context.Context, query string, args ...any) (entities.Payment, error) {
	var payment Payment
	err := r.getContext(ctx, &payment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Payment{}, entities.ErrPaymentNotFound
	}
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return PaymentToEntity(payment), nil
}

func (r *paymentRepo) ListOrderPayments(ctx context.Context, orderID string) ([]entities.Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at").
		MustSql()

	var rows []Payment
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}

	payments := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, PaymentToEntity(row))
	}
	return payments, nil
}

// UpdatePayment persists the outcome fields of p.
func (r *paymentRepo) UpdatePayment(ctx context.Context, p entities.Payment) error {
	query, args := r.qb.Update("payments").
		Set("status", string(p.Status)).
		Set("provider_response", mapToJSON(p.ProviderResponse)).
		Set("paid_at", nullTime(p.PaidAt)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	n, err := r.affected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if n == 0 {
		return entities.ErrPaymentNotFound
	}
	return nil
}

// CloseOrderPayments settles the payments of a cancelled order: pending
// attempts fail and completed ones are marked refunded.
func (r *paymentRepo) CloseOrderPayments(ctx context.Context, orderID string) error {
	now := time.Now().UTC()
	for from, to := range map[entities.PaymentStatus]entities.PaymentStatus{
		entities.PaymentStatusPending:   entities.PaymentStatusFailed,
		entities.PaymentStatusCompleted: entities.PaymentStatusRefunded,
	} {
		query, args := r.qb.Update("payments").
			Set("status", string(to)).
			Set("updated_at", now).
			Where(sq.Eq{"order_id": orderID, "status": string(from)}).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to close payments: %w", err)
		}
	}
	return nil
}
