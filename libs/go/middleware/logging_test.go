package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRedactJSON(t *testing.T) {
	body := []byte(`{"customer":{"name":"Ayesha","email":"ayesha@example.com","phone":"0300"},"items":[{"iban":"PK36"}],"tier":"3-months"}`)

	got := redactJSON(body).(map[string]any)

	customer := got["customer"].(map[string]any)
	assert.Equal(t, "Ayesha", customer["name"])
	assert.Equal(t, redacted, customer["email"])
	assert.Equal(t, redacted, customer["phone"])
	assert.Equal(t, redacted, got["items"].([]any)[0].(map[string]any)["iban"])
	assert.Equal(t, "3-months", got["tier"])

	assert.Nil(t, redactJSON(nil))
	assert.Nil(t, redactJSON([]byte("not json")))
}

func TestRedactHeaders(t *testing.T) {
	header := http.Header{}
	header.Set("Authorization", "Bearer abc")
	header.Set("X-API-Key", "secret")
	header.Set("X-Session-ID", "sess-1")

	got := redactHeaders(header)
	assert.Equal(t, redacted, got["Authorization"])
	assert.Equal(t, redacted, got["X-Api-Key"])
	assert.Equal(t, "sess-1", got["X-Session-Id"])
}

func TestEnhancedLoggingMiddleware_PreservesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), EnhancedLoggingMiddleware(true), RequestLoggingMiddleware())
	router.POST("/echo", func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.JSON(http.StatusOK, payload)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"email":"ayesha@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"ayesha@example.com"}`, w.Body.String())
}
