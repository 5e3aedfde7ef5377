package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatedRouter(config ValidationConfig) *gin.Engine {
	router := gin.New()
	router.POST("/test", ValidateInput(config), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", body)
	})
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorFields(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

const validCheckout = `{
	"customer": {"name": "Ayesha Khan", "email": "ayesha@example.com", "phone": "+92 300 1234567"},
	"shipping": {"line1": "12 Canal Road", "city": "Lahore", "country": "Pakistan"},
	"payment_method": "bank_transfer"
}`

func TestValidateInput_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := validatedRouter(CheckoutValidation)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{name: "valid", body: validCheckout, wantStatus: http.StatusOK},
		{
			name:       "nested fields reported with path",
			body:       `{"customer": {"name": "A", "email": "nope", "phone": "+923001234567"}, "shipping": {"line1": "x", "country": "PK"}, "payment_method": "card"}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"customer.email", "shipping.city"},
		},
		{
			name:       "unknown payment method",
			body:       strings.Replace(validCheckout, "bank_transfer", "cash", 1),
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"payment_method"},
		},
		{
			name:       "unknown top level field",
			body:       `{"customer": {"name": "A", "email": "a@b.co", "phone": "+923001234567"}, "shipping": {"line1": "x", "city": "y", "country": "z"}, "payment_method": "card", "total": 0}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"total"},
		},
		{name: "malformed json", body: `{"customer":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if len(tt.wantFields) > 0 {
				assert.ElementsMatch(t, tt.wantFields, errorFields(t, w))
			}
		})
	}
}

func TestValidateInput_SanitizesStrings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := validatedRouter(CreateReviewValidation)

	w := postJSON(router, `{"customer_name": "  Sana\u0007 ", "rating": 5, "comment": "Skin feels <great>\n"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Sana", body["customer_name"])
	assert.Equal(t, "Skin feels <great>", body["comment"])
}

func TestValidateInput_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := validatedRouter(CreateReviewValidation)

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "rating too high", body: `{"customer_name": "Sana", "rating": 6, "comment": "ok"}`, wantFields: []string{"rating"}},
		{name: "fractional rating", body: `{"customer_name": "Sana", "rating": 4.5, "comment": "ok"}`, wantFields: []string{"rating"}},
		{name: "comment too long", body: `{"customer_name": "Sana", "rating": 4, "comment": "` + strings.Repeat("a", 1001) + `"}`, wantFields: []string{"comment"}},
		{name: "missing fields", body: `{}`, wantFields: []string{"customer_name", "rating", "comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.ElementsMatch(t, tt.wantFields, errorFields(t, w))
		})
	}
}

func TestValidateInput_BodyTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := validatedRouter(SubscribeValidation)

	w := postJSON(router, `{"email": "`+strings.Repeat("a", 2000)+`@example.com"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestValidateInput_Regime(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := validatedRouter(RegimeValidation)

	body := `{
		"name": "Glow Essentials", "slug": "Glow Essentials", "step_count": 4,
		"one_time": {"price": 299, "discount_percent": 25},
		"three_months": {"price": 799},
		"six_months": {"price": -1}
	}`
	w := postJSON(router, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.ElementsMatch(t, []string{"slug", "step_count", "six_months.price"}, errorFields(t, w))
}

func TestValidateQueryParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/orders", ValidateQueryParams(ListQueryValidation), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		query      string
		wantStatus int
	}{
		{query: "", wantStatus: http.StatusOK},
		{query: "?page=2&limit=50&status=shipped", wantStatus: http.StatusOK},
		{query: "?page=0", wantStatus: http.StatusBadRequest},
		{query: "?limit=500", wantStatus: http.StatusBadRequest},
		{query: "?limit=ten", wantStatus: http.StatusBadRequest},
		{query: "?status=lost", wantStatus: http.StatusBadRequest},
		{query: "?search=ayesha", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
