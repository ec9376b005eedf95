package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/middleware"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error)
	GetOrder(ctx context.Context, caller entities.Caller, id string) (entities.Order, error)
	ListOrders(ctx context.Context, caller entities.Caller, filter entities.OrderFilter) (entities.Page[entities.Order], error)
	CancelOrder(ctx context.Context, caller entities.Caller, id, reason string) (entities.Order, error)
	UpdateStatus(ctx context.Context, caller entities.Caller, id string, upd entities.StatusUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, caller entities.Caller, id string) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/orders/guest", h.CreateGuestOrder)
	r.Get("/orders/guest", h.ListGuestOrders)
	r.Get("/orders/guest/{id}", h.GetGuestOrder)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole())
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrder)
		r.Put("/orders/{id}/cancel", h.CancelOrder)
	})

	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(middleware.RequireRole(entities.RoleAdmin))
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.Put("/{id}/status", h.UpdateStatus)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

// CreateOrder
// @Summary      Place an order
// @Description  Items come either from the cart (use_cart) or from the request; shipping either from a saved address or from the request.
// @Tags         orders
// @Security     BearerAuth
// @Param        body  body  Checkout  true  "Checkout"
// @Success      201  {object}  CheckoutResult
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Unknown product, address or promotion"
// @Failure      409  {object}  utils.ErrorResponse "Not enough stock"
// @Failure      422  {object}  utils.ErrorResponse "Empty order or unavailable product"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body Checkout
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	h.checkout(w, r, CheckoutJSONToEntity(body, callerFrom(r)))
}

// CreateGuestOrder
// @Summary      Place an order without an account
// @Tags         orders
// @Param        body  body  GuestCheckout  true  "Checkout"
// @Success      201  {object}  CheckoutResult
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/guest [post]
func (h *OrderHandler) CreateGuestOrder(w http.ResponseWriter, r *http.Request) {
	var body GuestCheckout
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}
	h.checkout(w, r, GuestCheckoutJSONToEntity(body))
}

func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request, req entities.CheckoutRequest) {
	checkoutsInProgress.Inc()
	defer checkoutsInProgress.Dec()
	start := time.Now()

	res, err := h.svc.CreateOrder(r.Context(), req)
	checkoutDuration.Observe(time.Since(start).Seconds())
	checkoutsTotal.WithLabelValues(checkoutOutcome(err)).Inc()

	if err != nil {
		writeServiceError(w, r, h.logger, "create order", err)
		return
	}
	utils.WriteJSON(w, CheckoutResultToJSON(res), http.StatusCreated)
}

func checkoutOutcome(err error) string {
	var ve *entities.ValidationError
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, entities.ErrInsufficientStock):
		return "out_of_stock"
	case errors.As(err, &ve), errors.Is(err, entities.ErrEmptyOrder):
		return "invalid"
	default:
		return "failed"
	}
}

// ListOrders
// @Summary      List orders
// @Description  Customers see their own orders; on /admin/orders all orders are listed and search matches number, name or phone.
// @Tags         orders
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size (max 100)"
// @Param        status  query  string  false  "Order status"
// @Param        search  query  string  false  "Admin only search"
// @Success      200  {object}  Page[Order]
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /orders [get]
// @Router       /admin/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, callerFrom(r))
}

// ListGuestOrders
// @Summary      Track guest orders by phone
// @Tags         orders
// @Param        phone   query  string  true   "Phone used at checkout"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size (max 100)"
// @Success      200  {object}  Page[Order]
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /orders/guest [get]
func (h *OrderHandler) ListGuestOrders(w http.ResponseWriter, r *http.Request) {
	phone, ok := h.guestPhone(w, r)
	if !ok {
		return
	}
	h.list(w, r, entities.Guest(phone))
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request, caller entities.Caller) {
	q := r.URL.Query()
	page, err := h.svc.ListOrders(r.Context(), caller, entities.OrderFilter{
		Status: entities.OrderStatus(q.Get("status")),
		Search: q.Get("search"),
		Page:   utils.QueryInt(r, "page", 1),
		Limit:  utils.QueryInt(r, "limit", 0),
	})
	if err != nil {
		writeServiceError(w, r, h.logger, "list orders", err)
		return
	}
	utils.WriteJSON(w, PageToJSON(page, OrderEntityToJSON), http.StatusOK)
}

// GetOrder
// @Summary      Get order by id
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{id} [get]
// @Router       /admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, callerFrom(r))
}

// GetGuestOrder
// @Summary      Get guest order
// @Tags         orders
// @Param        id     path   string  true  "Order id"
// @Param        phone  query  string  true  "Phone used at checkout"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/guest/{id} [get]
func (h *OrderHandler) GetGuestOrder(w http.ResponseWriter, r *http.Request) {
	phone, ok := h.guestPhone(w, r)
	if !ok {
		return
	}
	h.get(w, r, entities.Guest(phone))
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request, caller entities.Caller) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), caller, id)
	if err != nil {
		writeServiceError(w, r, h.logger, "get order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder
// @Summary      Cancel own order
// @Description  Allowed while the order is pending or processing. Stock is restored.
// @Tags         orders
// @Security     BearerAuth
// @Param        id    path  string       true   "Order id"
// @Param        body  body  CancelOrder  false  "Reason"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Order can no longer be cancelled"
// @Router       /orders/{id}/cancel [put]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var body CancelOrder
	if r.ContentLength != 0 && !decodeAndValidate(w, r, h.validate, &body) {
		return
	}

	order, err := h.svc.CancelOrder(r.Context(), callerFrom(r), id, body.Reason)
	if err != nil {
		writeServiceError(w, r, h.logger, "cancel order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateStatus
// @Summary      Move order to another status (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id    path  string             true  "Order id"
// @Param        body  body  UpdateOrderStatus  true  "New status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Transition not allowed"
// @Router       /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}
	var body UpdateOrderStatus
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}

	order, err := h.svc.UpdateStatus(r.Context(), callerFrom(r), id, StatusUpdateJSONToEntity(body))
	if err != nil {
		writeServiceError(w, r, h.logger, "update order status", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder
// @Summary      Delete order (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /admin/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(r.Context(), callerFrom(r), id); err != nil {
		writeServiceError(w, r, h.logger, "delete order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteFieldError(w, "id", "must be a uuid")
		return "", false
	}
	return id, true
}

func (h *OrderHandler) guestPhone(w http.ResponseWriter, r *http.Request) (string, bool) {
	phone := r.URL.Query().Get("phone")
	if err := h.validate.Var(phone, "required,min=8,max=20"); err != nil {
		utils.WriteFieldError(w, "phone", "required")
		return "", false
	}
	return phone, true
}
