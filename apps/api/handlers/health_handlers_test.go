package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		db             Pinger
		expectedStatus int
		expectedBody   HealthResponse
	}{
		{
			name:           "no database configured",
			expectedStatus: http.StatusOK,
			expectedBody:   HealthResponse{Status: "ok", Stage: "local", Version: "1.2.0"},
		},
		{
			name:           "database reachable",
			db:             stubPinger{},
			expectedStatus: http.StatusOK,
			expectedBody: HealthResponse{Status: "ok", Stage: "local", Version: "1.2.0",
				Checks: map[string]string{"database": "ok"}},
		},
		{
			name:           "database down",
			db:             stubPinger{err: errors.New("connection refused")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody: HealthResponse{Status: "degraded", Stage: "local", Version: "1.2.0",
				Checks: map[string]string{"database": "unreachable"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.db, "local", "1.2.0")

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			handler.Health(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var response HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}
