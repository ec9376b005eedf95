package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type promotionRepo struct {
	postgresRepo
}

func NewPromotionRepo(db *sqlx.DB) *promotionRepo {
	return &promotionRepo{newPostgresRepo(db)}
}

// GetPromotionByCode looks the code up case-insensitively.
func (r *promotionRepo) GetPromotionByCode(ctx context.Context, code string) (entities.Promotion, error) {
	query, args := r.qb.Select(promotionColumns...).
		From("promotions").
		Where(sq.Eq{"code": strings.ToUpper(code)}).
		MustSql()

	var promo Promotion
	err := r.getContext(ctx, &promo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Promotion{}, entities.ErrPromotionNotFound
	}
	if err != nil {
		return entities.Promotion{}, fmt.Errorf("failed to get promotion: %w", err)
	}
	return PromotionToEntity(promo), nil
}

// IncrementUsage counts one more use of the promotion unless its limit is
// already reached, in which case ErrPromotionExhausted is returned.
func (r *promotionRepo) IncrementUsage(ctx context.Context, id string) error {
	query, args := r.qb.Update("promotions").
		Set("usage_count", sq.Expr("usage_count + 1")).
		Where(sq.Eq{"id": id}).
		Where(sq.Or{
			sq.Eq{"usage_limit": nil},
			sq.Expr("usage_count < usage_limit"),
		}).
		MustSql()

	n, err := r.affected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment promotion usage: %w", err)
	}
	if n == 0 {
		return entities.ErrPromotionExhausted
	}
	return nil
}

func (r *promotionRepo) CreatePromotion(ctx context.Context, p entities.Promotion) error {
	query, args := r.qb.Insert("promotions").
		Columns(
			"id", "name", "code", "description", "type", "amount", "minimum_purchase",
			"usage_limit", "usage_count", "is_active", "start_date", "end_date", "created_at",
		).
		Values(
			p.ID, p.Name, strings.ToUpper(p.Code), nullString(p.Description), string(p.Type), p.Amount,
			p.MinimumPurchase, nullInt32(p.UsageLimit), p.UsageCount, p.IsActive, p.StartDate, p.EndDate, p.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrPromotionExists
	}
	if err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// ListActivePromotions returns the enabled promotions whose window contains now.
func (r *promotionRepo) ListActivePromotions(ctx context.Context, now time.Time) ([]entities.Promotion, error) {
	query, args := r.qb.Select(promotionColumns...).
		From("promotions").
		Where(sq.Eq{"is_active": true}).
		Where(sq.LtOrEq{"start_date": now}).
		Where(sq.GtOrEq{"end_date": now}).
		OrderBy("end_date").
		MustSql()

	var rows []Promotion
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select promotions: %w", err)
	}

	promos := make([]entities.Promotion, 0, len(rows))
	for _, row := range rows {
		promos = append(promos, PromotionToEntity(row))
	}
	return promos, nil
}

func (r *promotionRepo) DeletePromotion(ctx context.Context, id string) error {
	query, args := r.qb.Delete("promotions").Where(sq.Eq{"id": id}).MustSql()

	n, err := r.affected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	if n == 0 {
		return entities.ErrPromotionNotFound
	}
	return nil
}
