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

type PaymentService interface {
	CreatePayment(ctx context.Context, caller entities.Caller, orderID string, provider entities.PaymentProvider, returnURL string) (entities.Payment, error)
	GetPayment(ctx context.Context, caller entities.Caller, id string) (entities.Payment, error)
	HandleCallback(ctx context.Context, cb entities.PaymentCallback) (entities.CallbackResult, error)
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      PaymentService
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payment")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Get("/payments/callback", h.Callback)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole())
		r.Post("/payments", h.CreatePayment)
		r.Get("/payments/{id}", h.GetPayment)
	})
}

// CreatePayment
// @Summary      Start a payment for an order
// @Description  Returns the pending payment of the order if one exists.
// @Tags         payments
// @Security     BearerAuth
// @Param        body  body  CreatePayment  true  "Order and provider"
// @Success      201  {object}  Payment
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Order already paid or cancelled"
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var body CreatePayment
	if !decodeAndValidate(w, r, h.validate, &body) {
		return
	}

	payment, err := h.svc.CreatePayment(r.Context(), callerFrom(r), body.OrderID, entities.PaymentProvider(body.Provider), body.ReturnURL)
	if err != nil {
		writeServiceError(w, r, h.logger, "create payment", err)
		return
	}
	utils.WriteJSON(w, PaymentEntityToJSON(payment), http.StatusCreated)
}

// GetPayment
// @Summary      Get payment by id
// @Tags         payments
// @Security     BearerAuth
// @Param        id  path  string  true  "Payment id"
// @Success      200  {object}  Payment
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteFieldError(w, "id", "must be a uuid")
		return
	}

	payment, err := h.svc.GetPayment(r.Context(), callerFrom(r), id)
	if err != nil {
		writeServiceError(w, r, h.logger, "get payment", err)
		return
	}
	utils.WriteJSON(w, PaymentEntityToJSON(payment), http.StatusOK)
}

// Callback
// @Summary      Payment gateway callback
// @Description  Every query parameter is stored as the provider response.
// @Tags         payments
// @Param        transactionId  query  string  true  "Transaction id"
// @Param        status         query  string  true  "success, completed, failed or cancel"
// @Success      200  {object}  CallbackResult
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /payments/callback [get]
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := make(map[string]string, len(q))
	for k := range q {
		raw[k] = q.Get(k)
	}

	res, err := h.svc.HandleCallback(r.Context(), entities.PaymentCallback{
		TransactionID: q.Get("transactionId"),
		Status:        q.Get("status"),
		Raw:           raw,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, "handle payment callback", err)
		return
	}
	callbacksHandled.WithLabelValues("http", callbackOutcome(res)).Inc()
	utils.WriteJSON(w, CallbackResultToJSON(res), http.StatusOK)
}

func callbackOutcome(res entities.CallbackResult) string {
	if res.Success {
		return "paid"
	}
	return "not_paid"
}
