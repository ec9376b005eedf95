package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartRepo struct {
	postgresRepo
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{newPostgresRepo(db)}
}

func (r *cartRepo) GetCartItems(ctx context.Context, userID int64) ([]entities.CartItem, error) {
	query, args := r.qb.Select("user_id", "product_id", "quantity", "created_at").
		From("cart_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "product_id").
		MustSql()

	var rows []CartItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	items := make([]entities.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, CartItemToEntity(row))
	}
	return items, nil
}

func (r *cartRepo) GetCartItem(ctx context.Context, userID, productID int64) (entities.CartItem, error) {
	query, args := r.qb.Select("user_id", "product_id", "quantity", "created_at").
		From("cart_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID}).
		MustSql()

	var row CartItem
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get cart item: %w", err)
	}
	return CartItemToEntity(row), nil
}

// SetItemQuantity inserts the line or overwrites its quantity.
func (r *cartRepo) SetItemQuantity(ctx context.Context, userID, productID int64, qty int) error {
	query, args := r.qb.Insert("cart_items").
		Columns("user_id", "product_id", "quantity").
		Values(userID, productID, qty).
		Suffix("ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	return nil
}

func (r *cartRepo) RemoveItem(ctx context.Context, userID, productID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID, "product_id": productID}).
		MustSql()

	n, err := r.affected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if n == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepo) ClearCart(ctx context.Context, userID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
