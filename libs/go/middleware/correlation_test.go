package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:        "new ID generated when header not present",
			expectNewID: true,
		},
		{
			name:                 "existing ID preserved when header present",
			requestCorrelationID: "test-correlation-id-123",
		},
		{
			name:                 "oversized ID replaced",
			requestCorrelationID: strings.Repeat("x", 200),
			expectNewID:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"correlation_id": GetCorrelationID(c)})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			responseCorrelationID := w.Header().Get(CorrelationIDHeader)
			if tt.expectNewID {
				assert.Len(t, responseCorrelationID, 36)
			} else {
				assert.Equal(t, tt.requestCorrelationID, responseCorrelationID)
			}
			assert.Contains(t, w.Body.String(), responseCorrelationID)
		})
	}
}

func TestCorrelationIDMiddleware_RequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CorrelationIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, logger.CorrelationIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(CorrelationIDHeader, "test-correlation-id-456")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "test-correlation-id-456", w.Body.String())
}
