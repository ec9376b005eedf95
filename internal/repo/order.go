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

type orderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{newPostgresRepo(db)}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	userID, guestPhone := ownerColumns(o.Owner)

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.Number, userID, guestPhone, o.Shipping.Name, nullString(o.Shipping.Email),
			o.Shipping.Phone, o.Shipping.Address, nullString(o.Shipping.City), nullString(o.Shipping.District), nullString(o.Shipping.Ward),
			nullString(o.Notes), string(o.Status), string(o.PaymentMethod), o.IsPaid, o.Subtotal, o.ShippingFee, o.Discount,
			o.Total, nullString(o.PromotionCode), nullString(o.TrackingNumber), nullString(o.StatusNote), nullString(o.CancelReason),
			nullTime(o.PaidAt), nullTime(o.ShippedAt), nullTime(o.DeliveredAt), nullTime(o.CancelledAt), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *orderRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "product_name", "sku", "unit_price", "quantity", "subtotal")

	for _, it := range items {
		q = q.Values(
			orderID,
			it.ProductID,
			it.ProductName,
			nullString(it.SKU),
			it.UnitPrice,
			it.Quantity,
			it.Subtotal,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// GetOrderByID returns the order with its items and payments.
func (r *orderRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, id, "")
}

// GetOrderForUpdate is GetOrderByID with the order row locked until the
// surrounding transaction ends.
func (r *orderRepo) GetOrderForUpdate(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, id, "FOR UPDATE")
}

func (r *orderRepo) getOrder(ctx context.Context, id, suffix string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	if suffix != "" {
		q = q.Suffix(suffix)
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, payments, err := r.loadDetails(ctx, []string{id})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[id], payments[id]), nil
}

func (r *orderRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) (entities.Page[entities.Order], error) {
	where := sq.And{}
	switch owner := filter.Owner.(type) {
	case entities.UserOwner:
		where = append(where, sq.Eq{"user_id": owner.UserID})
	case entities.GuestOwner:
		where = append(where, sq.Eq{"guest_phone": owner.Phone})
	}
	if filter.Status != "" {
		where = append(where, sq.Eq{"status": string(filter.Status)})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"order_number": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_phone": pattern},
		})
	}

	query, args := r.qb.Select("COUNT(*)").From("orders").Where(where).MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return entities.Page[entities.Order]{}, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(offset(filter.Page, filter.Limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return entities.Page[entities.Order]{}, fmt.Errorf("failed to select orders: %w", err)
	}

	page := entities.Page[entities.Order]{
		Items: make([]entities.Order, 0, len(orders)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	if len(orders) == 0 {
		return page, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	items, payments, err := r.loadDetails(ctx, ids)
	if err != nil {
		return entities.Page[entities.Order]{}, err
	}

	for _, o := range orders {
		page.Items = append(page.Items, OrderToEntity(o, items[o.ID], payments[o.ID]))
	}
	return page, nil
}

func (r *orderRepo) loadDetails(ctx context.Context, ids []string) (map[string][]OrderItem, map[string][]Payment, error) {
	query, args := r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	query, args = r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("created_at").
		MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, nil, fmt.Errorf("failed to select payments: %w", err)
	}
	paymentsMap := make(map[string][]Payment, len(ids))
	for _, p := range payments {
		paymentsMap[p.OrderID] = append(paymentsMap[p.OrderID], p)
	}

	return itemsMap, paymentsMap, nil
}

// UpdateOrder persists the lifecycle fields of o. Items, owner and money
// columns are fixed at checkout and are never rewritten.
func (r *orderRepo) UpdateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("is_paid", o.IsPaid).
		Set("tracking_number", nullString(o.TrackingNumber)).
		Set("status_note", nullString(o.StatusNote)).
		Set("cancel_reason", nullString(o.CancelReason)).
		Set("paid_at", nullTime(o.PaidAt)).
		Set("shipped_at", nullTime(o.ShippedAt)).
		Set("delivered_at", nullTime(o.DeliveredAt)).
		Set("cancelled_at", nullTime(o.CancelledAt)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	n, err := r.affected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// DeleteOrder removes the order; items and payments go with it.
func (r *orderRepo) DeleteOrder(ctx context.Context, id string) error {
	query, args := r.qb.Delete("orders").Where(sq.Eq{"id": id}).MustSql()

	n, err := r.affected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
