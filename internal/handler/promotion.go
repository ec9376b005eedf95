package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/middleware"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type PromotionService interface {
	Validate(ctx context.Context, code string, subtotal decimal.Decimal) (entities.Promotion, error)
	ListActive(ctx context.Context) ([]entities.Promotion, error)
	CreatePromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error)
	DeletePromotion(ctx context.Context, id string) error
}

type PromotionHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      PromotionService
}

func NewPromotionHandler(logger *slog.Logger, svc PromotionService) *PromotionHandler {
	return &PromotionHandler{
		logger:   logger.With(slog.String("handler", "promotion")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *PromotionHandler) Init(r chi.Router) {
	r.Get("/promotions/active", h.ListActive)
	r.Get("/promotions/{code}/validate", h.ValidateCode)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleAdmin))
		r.Post("/admin/promotions", h.CreatePromotion)
		r.Delete("/admin/promotions/{id}", h.DeletePromotion)
	})
}

// ListActive
// @Summary      List promotions usable now
// @Tags         promotions
// @Success      200  {array}  Promotion
// @Router       /promotions/active [get]
func (h *PromotionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	promos, err := h.svc.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, "list promotions", err)
		return
	}
	res := make([]Promotion, 0, len(promos))
	for _, p := range promos {
		res = append(res, PromotionEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ValidateCode
// @Summary      Check a promotion code
// @Description  Unknown codes are 404; known but unusable codes return valid=false with a reason.
// @Tags         promotions
// @Param        code          path   string  true   "Promotion code"
// @Param        subtotal      query  string  false  "Cart subtotal"
// @Param        shipping_fee  query  string  false  "Shipping fee"
// @Success      200  {object}  PromotionCheck
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /promotions/{code}/validate [get]
func (h *PromotionHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	subtotal, ok := queryDecimal(w, r, "subtotal")
	if !ok {
		return
	}
	shippingFee, ok := queryDecimal(w, r, "shipping_fee")
	if !ok {
		return
	}

	promo, err := h.svc.Validate(r.Context(), chi.URLParam(r, "code"), subtotal)

	var rejected *entities.PromotionRejectedError
	switch {
	case errors.As(err, &rejected):
		utils.WriteJSON(w, PromotionCheck{
			Reason:    string(rejected.Reason),
			Discount:  decimal.Zero,
			Promotion: PromotionEntityToJSON(promo),
		}, http.StatusOK)
	case err != nil:
		writeServiceError(w, r, h.logger, "validate promotion", err)
	default:
		utils.WriteJSON(w, PromotionCheck{
			Valid:     true,
			Discount:  promo.Discount(subtotal, shippingFee),
			Promotion: PromotionEntityToJSON(promo),
		}, http.StatusOK)
	}
}

// CreatePromotion
// @Summary      Create promotion (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        body  body  CreatePromotion  true  "Promotion"
// @Success      201  {object}  Promotion
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Code already exists"
// @Router       /admin/promotions [post]
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var body CreatePromotion
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	promo, err := h.svc.CreatePromotion(r.Context(), CreatePromotionJSONToEntity(body))
	if err != nil {
		writeServiceError(w, r, h.logger, "create promotion", err)
		return
	}
	utils.WriteJSON(w, PromotionEntityToJSON(promo), http.StatusCreated)
}

// DeletePromotion
// @Summary      Delete promotion (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Promotion id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePromotion(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.logger, "delete promotion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryDecimal(w http.ResponseWriter, r *http.Request, key string) (decimal.Decimal, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		utils.WriteFieldError(w, key, "must be a non-negative number")
		return decimal.Zero, false
	}
	return d, true
}
