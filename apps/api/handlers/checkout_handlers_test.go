package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func checkoutRouter(h *CheckoutHandler) *gin.Engine {
	return newTestRouter(func(r *gin.Engine) {
		r.POST("/checkout", h.Checkout)
		r.POST("/orders/:id/confirm-payment", h.ConfirmPayment)
	})
}

func checkoutBody(method string) map[string]any {
	return map[string]any{
		"customer":       map[string]any{"name": "Ayesha Khan", "email": "ayesha@example.com", "phone": "+923001234567"},
		"shipping":       map[string]any{"line1": "12 Canal View", "city": "Lahore", "country": "Pakistan"},
		"payment_method": method,
	}
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	t.Run("bank transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checkout := mocks.NewMockCheckoutService(ctrl)

		ref := "RG-20261019-AB12"
		checkout.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p params.PlaceOrderParams) (*business.CheckoutResult, error) {
				assert.Equal(t, testSessionID, p.SessionID)
				assert.Equal(t, business.PaymentMethodBankTransfer, p.PaymentMethod)
				assert.Equal(t, "Lahore", p.Shipping.City)
				assert.Nil(t, p.FormRegimeID)
				return &business.CheckoutResult{
					Order:            business.Order{ID: testOrderID, OrderNumber: ref},
					BankDetails:      &business.BankDetails{BankName: "Meezan Bank"},
					PaymentReference: &ref,
				}, nil
			})

		w := perform(checkoutRouter(NewCheckoutHandler(checkout)), http.MethodPost, "/checkout", checkoutBody("bank_transfer"), sessionHeaders())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decodeBody[business.CheckoutResult](t, w)
		assert.Equal(t, ref, resp.Order.OrderNumber)
		require.NotNil(t, resp.BankDetails)
	})

	t.Run("attaches a questionnaire", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checkout := mocks.NewMockCheckoutService(ctrl)
		checkout.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p params.PlaceOrderParams) (*business.CheckoutResult, error) {
				require.NotNil(t, p.FormRegimeID)
				assert.Equal(t, testRegimeID, *p.FormRegimeID)
				return &business.CheckoutResult{Order: business.Order{ID: testOrderID}}, nil
			})

		body := checkoutBody("card")
		body["form_regime_id"] = testRegimeID.String()
		w := perform(checkoutRouter(NewCheckoutHandler(checkout)), http.MethodPost, "/checkout", body, sessionHeaders())
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	tests := []struct {
		name       string
		body       any
		headers    map[string]string
		err        error
		wantStatus int
	}{
		{name: "no session", body: checkoutBody("card"), wantStatus: http.StatusBadRequest},
		{name: "unknown payment method", body: checkoutBody("crypto"), headers: sessionHeaders(), wantStatus: http.StatusBadRequest},
		{name: "empty cart", body: checkoutBody("card"), headers: sessionHeaders(), err: services.ErrCartEmpty, wantStatus: http.StatusBadRequest},
		{name: "cards disabled", body: checkoutBody("card"), headers: sessionHeaders(), err: services.ErrCardPaymentsUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "processor error", body: checkoutBody("card"), headers: sessionHeaders(), err: services.ErrPaymentFailed, wantStatus: http.StatusBadGateway},
		{name: "questionnaire unfinished", body: checkoutBody("card"), headers: sessionHeaders(), err: services.ErrFormIncomplete, wantStatus: http.StatusUnprocessableEntity},
		{
			name:    "invalid details",
			body:    checkoutBody("card"),
			headers: sessionHeaders(),
			err: &services.InvalidDetailsError{Fields: []business.FieldError{
				{Field: "customer.phone", Message: "is too short"},
			}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checkout := mocks.NewMockCheckoutService(ctrl)
			if tt.err != nil {
				checkout.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}
			w := perform(checkoutRouter(NewCheckoutHandler(checkout)), http.MethodPost, "/checkout", tt.body, tt.headers)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestCheckoutHandler_ConfirmPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkout := mocks.NewMockCheckoutService(ctrl)
	router := checkoutRouter(NewCheckoutHandler(checkout))

	checkout.EXPECT().ConfirmCardPayment(gomock.Any(), testOrderID).
		Return(&business.Order{ID: testOrderID, PaymentStatus: business.PaymentStatusPaid}, nil)
	w := perform(router, http.MethodPost, "/orders/"+testOrderID.String()+"/confirm-payment", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, business.PaymentStatusPaid, decodeBody[business.Order](t, w).PaymentStatus)

	checkout.EXPECT().ConfirmCardPayment(gomock.Any(), testOrderID).Return(nil, services.ErrNotCardPayment)
	w = perform(router, http.MethodPost, "/orders/"+testOrderID.String()+"/confirm-payment", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
