package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/middleware"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetCart(ctx context.Context, userID int64) (entities.Cart, error)
	AddItem(ctx context.Context, userID, productID int64, qty int) (entities.Cart, error)
	UpdateItem(ctx context.Context, userID, productID int64, qty int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, productID int64) (entities.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(middleware.RequireRole())
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Patch("/items/{product_id}", h.UpdateItem)
		r.Delete("/items/{product_id}", h.RemoveItem)
	})
}

// GetCart
// @Summary      Get own cart
// @Tags         cart
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.GetCart(r.Context(), callerFrom(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, "get cart", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// AddItem
// @Summary      Add product to cart
// @Tags         cart
// @Security     BearerAuth
// @Param        body  body  AddCartItem  true  "Product and quantity"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Not enough stock"
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body AddCartItem
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	cart, err := h.svc.AddItem(r.Context(), callerFrom(r).UserID, body.ProductID, body.Quantity)
	if err != nil {
		writeServiceError(w, r, h.logger, "add cart item", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// UpdateItem
// @Summary      Set cart item quantity
// @Tags         cart
// @Security     BearerAuth
// @Param        product_id  path  int             true  "Product id"
// @Param        body        body  UpdateCartItem  true  "New quantity"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Not enough stock"
// @Router       /cart/items/{product_id} [patch]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "product_id")
	if !ok {
		return
	}
	var body UpdateCartItem
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	cart, err := h.svc.UpdateItem(r.Context(), callerFrom(r).UserID, productID, body.Quantity)
	if err != nil {
		writeServiceError(w, r, h.logger, "update cart item", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// RemoveItem
// @Summary      Remove product from cart
// @Tags         cart
// @Security     BearerAuth
// @Param        product_id  path  int  true  "Product id"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "product_id")
	if !ok {
		return
	}
	cart, err := h.svc.RemoveItem(r.Context(), callerFrom(r).UserID, productID)
	if err != nil {
		writeServiceError(w, r, h.logger, "remove cart item", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// ClearCart
// @Summary      Empty own cart
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearCart(r.Context(), callerFrom(r).UserID); err != nil {
		writeServiceError(w, r, h.logger, "clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
