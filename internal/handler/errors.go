package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
)

// Machine readable codes sent alongside business errors.
const (
	codeInsufficientStock  = "insufficient_stock"
	codeProductUnavailable = "product_unavailable"
	codeInvalidTransition  = "invalid_transition"
	codeAlreadyPaid        = "already_paid"
	codeNotPayable         = "not_payable"
	codeEmptyOrder         = "empty_order"
	codePromotionExists    = "promotion_exists"
)

// writeServiceError maps service errors to HTTP responses. Anything it does
// not recognise is logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, err error) {
	var (
		validationErr  *entities.ValidationError
		stockErr       *entities.InsufficientStockError
		unavailableErr *entities.ProductUnavailableError
		transitionErr  *entities.InvalidTransitionError
		productErr     *entities.ProductNotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.WriteFieldError(w, validationErr.Field, validationErr.Reason)
	case errors.Is(err, entities.ErrUnauthenticated):
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)

	case errors.As(err, &productErr):
		utils.WriteError(w, productErr.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrPaymentNotFound):
		utils.WriteError(w, "payment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrPromotionNotFound):
		utils.WriteError(w, "promotion not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrAddressNotFound):
		utils.WriteError(w, "address not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCartItemNotFound):
		utils.WriteError(w, "cart item not found", http.StatusNotFound)

	case errors.As(err, &stockErr):
		utils.WriteCodedError(w, stockErr.Error(), codeInsufficientStock, http.StatusConflict)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteCodedError(w, "insufficient stock", codeInsufficientStock, http.StatusConflict)
	case errors.As(err, &unavailableErr):
		utils.WriteCodedError(w, unavailableErr.Error(), codeProductUnavailable, http.StatusUnprocessableEntity)
	case errors.As(err, &transitionErr):
		utils.WriteCodedError(w, transitionErr.Error(), codeInvalidTransition, http.StatusConflict)
	case errors.Is(err, entities.ErrAlreadyPaid):
		utils.WriteCodedError(w, "order is already paid", codeAlreadyPaid, http.StatusConflict)
	case errors.Is(err, entities.ErrOrderNotPayable):
		utils.WriteCodedError(w, "order cannot be paid", codeNotPayable, http.StatusConflict)
	case errors.Is(err, entities.ErrEmptyOrder):
		utils.WriteCodedError(w, "order has no items", codeEmptyOrder, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrPromotionExists):
		utils.WriteCodedError(w, "promotion with this code already exists", codePromotionExists, http.StatusConflict)

	default:
		logger.ErrorContext(r.Context(), "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
