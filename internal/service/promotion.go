package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type promotionService struct {
	logger *slog.Logger
	repo   PromotionRepo
	now    func() time.Time
}

func NewPromotionService(logger *slog.Logger, repo PromotionRepo) *promotionService {
	return &promotionService{
		logger: logger.With(slog.String("service", "promotion")),
		repo:   repo,
		now:    time.Now,
	}
}

// Validate looks the code up and checks it against subtotal. An unknown
// code yields ErrPromotionNotFound; a known but unusable one is returned
// together with a *PromotionRejectedError.
func (s *promotionService) Validate(ctx context.Context, code string, subtotal decimal.Decimal) (entities.Promotion, error) {
	code = normalizeCode(code)
	if code == "" {
		return entities.Promotion{}, &entities.ValidationError{Field: "code", Reason: "must not be empty"}
	}

	promo, err := s.repo.GetPromotionByCode(ctx, code)
	if err != nil {
		return entities.Promotion{}, err
	}
	return promo, promo.Check(s.now(), subtotal)
}

func (s *promotionService) IncrementUsage(ctx context.Context, id string) error {
	return s.repo.IncrementUsage(ctx, id)
}

func (s *promotionService) CreatePromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error) {
	p.Code = normalizeCode(p.Code)
	if err := validatePromotion(p); err != nil {
		return entities.Promotion{}, err
	}

	p.ID = uuid.NewString()
	p.UsageCount = 0
	p.CreatedAt = s.now().UTC()

	if err := s.repo.CreatePromotion(ctx, p); err != nil {
		if !errors.Is(err, entities.ErrPromotionExists) {
			s.logger.Error("failed to create promotion", slog.String("code", p.Code), slog.Any("error", err))
		}
		return entities.Promotion{}, err
	}

	s.logger.Info("promotion created", slog.String("id", p.ID), slog.String("code", p.Code))
	return p, nil
}

func (s *promotionService) ListActive(ctx context.Context) ([]entities.Promotion, error) {
	return s.repo.ListActivePromotions(ctx, s.now())
}

func (s *promotionService) DeletePromotion(ctx context.Context, id string) error {
	if err := s.repo.DeletePromotion(ctx, id); err != nil {
		return err
	}
	s.logger.Info("promotion deleted", slog.String("id", id))
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validatePromotion(p entities.Promotion) error {
	switch {
	case p.Code == "":
		return &entities.ValidationError{Field: "code", Reason: "must not be empty"}
	case p.Name == "":
		return &entities.ValidationError{Field: "name", Reason: "must not be empty"}
	case !p.Type.Valid():
		return &entities.ValidationError{Field: "type", Reason: "unknown promotion type"}
	case p.Amount.IsNegative():
		return &entities.ValidationError{Field: "amount", Reason: "must not be negative"}
	case p.Type == entities.PromotionPercentage && p.Amount.GreaterThan(decimal.NewFromInt(100)):
		return &entities.ValidationError{Field: "amount", Reason: "percentage must not exceed 100"}
	case p.MinimumPurchase.Valid && p.MinimumPurchase.Decimal.IsNegative():
		return &entities.ValidationError{Field: "minimum_purchase", Reason: "must not be negative"}
	case p.UsageLimit != nil && *p.UsageLimit <= 0:
		return &entities.ValidationError{Field: "usage_limit", Reason: "must be positive"}
	case !p.EndDate.After(p.StartDate):
		return &entities.ValidationError{Field: "end_date", Reason: "must be after start_date"}
	}
	return nil
}
