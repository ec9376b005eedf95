package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/handler"
	mocks "github.com/SergeyBogomolovv/herbal-pharmacy/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const paymentID = "9b2d7c1e-4f3a-4d6b-8c2e-7a1b0c9d8e7f"

func testPayment() entities.Payment {
	return entities.Payment{
		ID:            paymentID,
		OrderID:       orderID,
		TransactionID: "TXN-1",
		Provider:      entities.ProviderVNPay,
		Amount:        decimal.NewFromInt(230000),
		Status:        entities.PaymentStatusPending,
		PaymentURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?txnRef=TXN-1",
	}
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	testCases := []struct {
		name         string
		caller       *entities.Caller
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "created",
			caller: &customer,
			body:   `{"order_id":"` + orderID + `","provider":"vnpay"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePayment(mock.Anything, customer, orderID, entities.ProviderVNPay, "").
					Return(testPayment(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"payment_url":"https://sandbox.vnpayment.vn`,
		},
		{
			name:       "unknown provider",
			caller:     &customer,
			body:       `{"order_id":"` + orderID + `","provider":"cheque"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Provider":"oneof"`,
		},
		{
			name:       "anonymous",
			body:       `{"order_id":"` + orderID + `","provider":"vnpay"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "already paid",
			caller: &customer,
			body:   `{"order_id":"` + orderID + `","provider":"momo"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					CreatePayment(mock.Anything, customer, orderID, entities.ProviderMomo, "").
					Return(entities.Payment{}, entities.ErrAlreadyPaid).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"already_paid"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			status, body := serve(t, handler.NewPaymentHandler(discard(), svc), tc.caller, http.MethodPost, "/payments", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	svc.EXPECT().GetPayment(mock.Anything, customer, paymentID).Return(testPayment(), nil).Once()
	h := handler.NewPaymentHandler(discard(), svc)

	status, body := serve(t, h, &customer, http.MethodGet, "/payments/"+paymentID, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"transaction_id":"TXN-1"`)

	status, _ = serve(t, h, &customer, http.MethodGet, "/payments/42", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPaymentHandler_Callback(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			query: "?transactionId=TXN-1&status=success&vnp_ResponseCode=00",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				completed := testPayment()
				completed.Status = entities.PaymentStatusCompleted
				svc.EXPECT().
					HandleCallback(mock.Anything, entities.PaymentCallback{
						TransactionID: "TXN-1",
						Status:        "success",
						Raw: map[string]string{
							"transactionId":    "TXN-1",
							"status":           "success",
							"vnp_ResponseCode": "00",
						},
					}).
					Return(entities.CallbackResult{Success: true, Message: "Payment completed successfully", Payment: completed}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name:  "closed payment",
			query: "?transactionId=TXN-1&status=success",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleCallback(mock.Anything, mock.Anything).
					Return(entities.CallbackResult{Message: "Payment is already closed", Payment: testPayment()}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":false`,
		},
		{
			name:  "missing transaction",
			query: "?status=success",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleCallback(mock.Anything, mock.Anything).
					Return(entities.CallbackResult{}, &entities.ValidationError{Field: "transactionId", Reason: "is required"}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"transactionId":"is required"`,
		},
		{
			name:  "unknown transaction",
			query: "?transactionId=TXN-404&status=success",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleCallback(mock.Anything, mock.Anything).
					Return(entities.CallbackResult{}, entities.ErrPaymentNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, handler.NewPaymentHandler(discard(), svc), nil, http.MethodGet, "/payments/callback"+tc.query, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
