package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func adminRouter(ac *AuthClient) *gin.Engine {
	r := gin.New()
	r.GET("/admin", ac.EnsureAdmin(), func(c *gin.Context) {
		admin, ok := GetAdminUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"method": admin.Method, "email": admin.Email})
	})
	return r
}

func TestAuthClient_EnsureAdmin(t *testing.T) {
	hash, err := helpers.HashAPIKey("secret-key")
	require.NoError(t, err)

	tests := []struct {
		name       string
		headers    map[string]string
		setup      func(v *mocks.MockAdminTokenValidator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid api key",
			headers:    map[string]string{"X-API-Key": "secret-key"},
			wantStatus: http.StatusOK,
			wantBody:   `"method":"api_key"`,
		},
		{
			name:       "wrong api key",
			headers:    map[string]string{"X-API-Key": "guess"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no credentials",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization",
			headers:    map[string]string{"Authorization": "Token abc"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "valid admin session",
			headers: map[string]string{"Authorization": "Bearer good-token"},
			setup: func(v *mocks.MockAdminTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "good-token").
					Return(&business.AdminUser{ID: "u1", Email: "owner@regime.example", Method: business.AuthMethodSupabase}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"email":"owner@regime.example"`,
		},
		{
			name:    "signed in but not an admin",
			headers: map[string]string{"Authorization": "Bearer customer-token"},
			setup: func(v *mocks.MockAdminTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "customer-token").Return(nil, ErrNotAdmin)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "expired session",
			headers: map[string]string{"Authorization": "Bearer old-token"},
			setup: func(v *mocks.MockAdminTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "old-token").Return(nil, ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := mocks.NewMockAdminTokenValidator(ctrl)
			if tt.setup != nil {
				tt.setup(validator)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			adminRouter(NewAuthClient(validator, hash)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSupabaseValidator_ValidateToken(t *testing.T) {
	ctx := context.Background()
	users := map[string]string{
		"owner-token":    "Owner@Regime.example",
		"customer-token": "shopper@example.com",
	}
	v := newSupabaseValidator(func(_ context.Context, token string) (string, string, error) {
		email, ok := users[token]
		if !ok {
			return "", "", errors.New("invalid JWT")
		}
		return "id-" + token, email, nil
	}, []string{" owner@regime.example "})

	admin, err := v.ValidateToken(ctx, "owner-token")
	require.NoError(t, err)
	assert.Equal(t, business.AuthMethodSupabase, admin.Method)
	assert.Equal(t, "id-owner-token", admin.ID)

	_, err = v.ValidateToken(ctx, "customer-token")
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = v.ValidateToken(ctx, "forged")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.ValidateToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
