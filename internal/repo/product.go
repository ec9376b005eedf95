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

type productRepo struct {
	postgresRepo
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{newPostgresRepo(db)}
}

func (r *productRepo) selectProducts() sq.SelectBuilder {
	return r.qb.Select(productColumns...).From("products p")
}

func (r *productRepo) GetProductByID(ctx context.Context, id int64) (entities.Product, error) {
	query, args := r.selectProducts().Where(sq.Eq{"p.id": id}).MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: id}
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *productRepo) GetProductBySlug(ctx context.Context, slug string) (entities.Product, error) {
	query, args := r.selectProducts().Where(sq.Eq{"p.slug": slug}).MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// GetProductsByIDs returns the products that exist among ids, keyed by id.
func (r *productRepo) GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]entities.Product, error) {
	if len(ids) == 0 {
		return map[int64]entities.Product{}, nil
	}

	query, args := r.selectProducts().Where(sq.Eq{"p.id": ids}).MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make(map[int64]entities.Product, len(products))
	for _, p := range products {
		result[p.ID] = ProductToEntity(p)
	}
	return result, nil
}

func (r *productRepo) ListProducts(ctx context.Context, filter entities.ProductFilter) (entities.Page[entities.Product], error) {
	where := sq.And{}
	if filter.OnlyActive {
		where = append(where, sq.Eq{"p.status": entities.ProductStatusActive})
	}
	if filter.Search != "" {
		where = append(where, sq.ILike{"p.name": "%" + filter.Search + "%"})
	}

	base := r.qb.Select().From("products p")
	if filter.CategorySlug != "" {
		base = base.Join("categories c ON c.id = p.category_id")
		where = append(where, sq.Eq{"c.slug": filter.CategorySlug})
	}
	base = base.Where(where)

	query, args := base.Column("COUNT(*)").MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return entities.Page[entities.Product]{}, fmt.Errorf("failed to count products: %w", err)
	}

	query, args = base.Columns(productColumns...).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(offset(filter.Page, filter.Limit)).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return entities.Page[entities.Product]{}, fmt.Errorf("failed to select products: %w", err)
	}

	items := make([]entities.Product, 0, len(products))
	for _, p := range products {
		items = append(items, ProductToEntity(p))
	}
	return entities.Page[entities.Product]{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (r *productRepo) UpdateProduct(ctx context.Context, id int64, patch entities.ProductPatch) (entities.Product, error) {
	set := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.SalePrice != nil {
		set["sale_price"] = *patch.SalePrice
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}

	query, args := r.qb.Update("products p").
		SetMap(set).
		Where(sq.Eq{"p.id": id}).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, &entities.ProductNotFoundError{ProductID: id}
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return ProductToEntity(product), nil
}

// DecrementStock takes qty units off the product only when at least qty
// units are available. The check and the write are one statement, so two
// concurrent checkouts can never both take the last unit.
func (r *productRepo) DecrementStock(ctx context.Context, productID int64, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	n, err := r.affected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if n == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *productRepo) RestoreStock(ctx context.Context, productID int64, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}
