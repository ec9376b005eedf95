package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/shopspring/decimal"
)

type cartService struct {
	logger   *slog.Logger
	repo     CartRepo
	products ProductRepo
}

func NewCartService(logger *slog.Logger, repo CartRepo, products ProductRepo) *cartService {
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		repo:     repo,
		products: products,
	}
}

// GetCart returns the cart lines priced with the current product prices.
func (s *cartService) GetCart(ctx context.Context, userID int64) (entities.Cart, error) {
	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return entities.Cart{}, err
	}

	cart := entities.Cart{
		Lines:    make([]entities.CartLine, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for _, it := range items {
		product, ok := products[it.ProductID]
		if !ok {
			continue
		}
		cart.Lines = append(cart.Lines, entities.CartLine{Item: it, Product: product})
		cart.Subtotal = cart.Subtotal.Add(product.UnitPrice().Mul(decimal.NewFromInt(int64(it.Quantity))))
		cart.TotalItems += it.Quantity
	}
	return cart, nil
}

// AddItem adds qty units to the line of the product, creating it if needed.
func (s *cartService) AddItem(ctx context.Context, userID, productID int64, qty int) (entities.Cart, error) {
	if qty <= 0 {
		return entities.Cart{}, &entities.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	current := 0
	item, err := s.repo.GetCartItem(ctx, userID, productID)
	switch {
	case err == nil:
		current = item.Quantity
	case !errors.Is(err, entities.ErrCartItemNotFound):
		return entities.Cart{}, err
	}

	if err := s.setQuantity(ctx, userID, productID, current+qty); err != nil {
		return entities.Cart{}, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, productID int64, qty int) (entities.Cart, error) {
	if qty <= 0 {
		return entities.Cart{}, &entities.ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if _, err := s.repo.GetCartItem(ctx, userID, productID); err != nil {
		return entities.Cart{}, err
	}

	if err := s.setQuantity(ctx, userID, productID, qty); err != nil {
		return entities.Cart{}, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) setQuantity(ctx context.Context, userID, productID int64, qty int) error {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.IsActive() {
		return &entities.ProductUnavailableError{ProductID: product.ID, Name: product.Name}
	}
	if qty > product.Stock {
		return &entities.InsufficientStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: qty,
			Available: product.Stock,
		}
	}
	return s.repo.SetItemQuantity(ctx, userID, productID, qty)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID int64) (entities.Cart, error) {
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return entities.Cart{}, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) ClearCart(ctx context.Context, userID int64) error {
	if err := s.repo.ClearCart(ctx, userID); err != nil {
		s.logger.Error("failed to clear cart", slog.Int64("user_id", userID), slog.Any("error", err))
		return err
	}
	return nil
}
