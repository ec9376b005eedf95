package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
)

type catalogService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  Cache
}

func NewCatalogService(logger *slog.Logger, repo ProductRepo, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	return s.cached(ctx, productKey(id), func() (entities.Product, error) {
		return s.repo.GetProductByID(ctx, id)
	})
}

// GetProductBySlug caches the slug as a pointer to the product id so that
// stock changes only ever have to invalidate the id entry.
func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (entities.Product, error) {
	key := productSlugKey(slug)
	if data, ok := s.cache.Get(ctx, key); ok {
		if id, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			return s.GetProduct(ctx, id)
		}
		s.cache.Delete(ctx, key)
	}

	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return entities.Product{}, err
	}
	s.cache.Set(ctx, key, []byte(strconv.FormatInt(product.ID, 10)))
	return product, nil
}

func (s *catalogService) cached(ctx context.Context, key string, load func() (entities.Product, error)) (entities.Product, error) {
	if data, ok := s.cache.Get(ctx, key); ok {
		product, err := entities.Unmarshal[entities.Product](data)
		if err == nil {
			return product, nil
		}
		s.logger.Warn("dropping broken cache entry", slog.String("key", key), slog.Any("error", err))
		s.cache.Delete(ctx, key)
	}

	var product entities.Product
	err := utils.Retry(ctx, utils.DefaultRetry, func() error {
		var err error
		product, err = load()
		return err
	}, entities.ErrProductNotFound)
	if err != nil {
		return entities.Product{}, err
	}

	data, err := entities.Marshal(product)
	if err != nil {
		s.logger.Error("failed to marshal product", slog.Int64("product_id", product.ID), slog.Any("error", err))
		return product, nil
	}
	s.cache.Set(ctx, key, data)
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter entities.ProductFilter) (entities.Page[entities.Product], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return s.repo.ListProducts(ctx, filter)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id int64, patch entities.ProductPatch) (entities.Product, error) {
	if err := validatePatch(patch); err != nil {
		return entities.Product{}, err
	}

	product, err := s.repo.UpdateProduct(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, entities.ErrProductNotFound) {
			s.logger.Error("failed to update product", slog.Int64("product_id", id), slog.Any("error", err))
		}
		return entities.Product{}, err
	}

	s.cache.Delete(ctx, productKey(product.ID))
	s.logger.Info("product updated", slog.Int64("product_id", product.ID))
	return product, nil
}

func validatePatch(p entities.ProductPatch) error {
	switch {
	case p.Name != nil && *p.Name == "":
		return &entities.ValidationError{Field: "name", Reason: "must not be empty"}
	case p.Price != nil && p.Price.IsNegative():
		return &entities.ValidationError{Field: "price", Reason: "must not be negative"}
	case p.SalePrice != nil && p.SalePrice.Valid && p.SalePrice.Decimal.IsNegative():
		return &entities.ValidationError{Field: "sale_price", Reason: "must not be negative"}
	case p.Stock != nil && *p.Stock < 0:
		return &entities.ValidationError{Field: "stock", Reason: "must not be negative"}
	case p.Status != nil && !p.Status.Valid():
		return &entities.ValidationError{Field: "status", Reason: "unknown status"}
	}
	return nil
}
