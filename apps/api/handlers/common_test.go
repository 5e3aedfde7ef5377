package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", services.ErrRegimeNotFound, http.StatusNotFound, "regime not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", services.ErrOrderNotFound), http.StatusNotFound, "order not found"},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, "Not found"},
		{"conflict", services.ErrGiftAlreadyRedeemed, http.StatusConflict, "gift card has already been redeemed"},
		{"terminal order", services.ErrOrderCompleted, http.StatusConflict, "order is already completed"},
		{"unprocessable", services.ErrDiscountExhausted, http.StatusUnprocessableEntity, "discount code has already been used"},
		{"bad input", services.ErrCartEmpty, http.StatusBadRequest, "cart is empty"},
		{"cards off", services.ErrCardPaymentsUnavailable, http.StatusServiceUnavailable, "card payments are not available"},
		{"processor down", services.ErrPaymentFailed, http.StatusBadGateway, "payment could not be started"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Something broke"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			handleServiceError(c, tt.err, "Something broke")

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeBody[ErrorResponse](t, w)
			assert.Equal(t, tt.wantMessage, resp.Error)
		})
	}
}

func TestHandleServiceError_InvalidDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/checkout", nil)

	handleServiceError(c, &services.InvalidDetailsError{Fields: []business.FieldError{
		{Field: "customer.email", Message: "must be a valid email address"},
	}}, "Failed")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody[ValidationErrorResponse](t, w)
	assert.Equal(t, "must be a valid email address", resp.Details["customer.email"])
}

func TestValidatePaginationParams(t *testing.T) {
	tests := []struct {
		query     string
		wantLimit int32
		wantPage  int32
		wantErr   bool
	}{
		{query: "", wantLimit: 20, wantPage: 1},
		{query: "limit=5&page=3", wantLimit: 5, wantPage: 3},
		{query: "limit=500", wantLimit: 100, wantPage: 1},
		{query: "limit=0&page=-2", wantLimit: 20, wantPage: 1},
		{query: "limit=abc", wantErr: true},
		{query: "page=x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)

			limit, page, err := validatePaginationParams(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}

func TestSendPaginatedSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	sendPaginatedSuccess(c, []string{"a", "b"}, 2, 2, 5)

	resp := decodeBody[PaginatedResponse](t, w)
	assert.Equal(t, "list", resp.Object)
	assert.True(t, resp.HasMore)
	assert.Equal(t, Pagination{CurrentPage: 2, PerPage: 2, TotalItems: 5, TotalPages: 3}, resp.Pagination)
}

func TestGetSessionID(t *testing.T) {
	r := newTestRouter(func(r *gin.Engine) {
		r.GET("/cart", func(c *gin.Context) {
			if id, ok := GetSessionID(c); ok {
				c.String(http.StatusOK, id)
			}
		})
	})

	w := perform(r, http.MethodGet, "/cart", nil, sessionHeaders())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testSessionID, w.Body.String())

	w = perform(r, http.MethodGet, "/cart", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decodeBody[ErrorResponse](t, w).CorrelationID)
}
