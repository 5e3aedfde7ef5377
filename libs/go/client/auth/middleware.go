package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"go.uber.org/zap"
)

// Context keys set by the admin middleware
const (
	AdminUserKey = "adminUser"
	AuthTypeKey  = "authType"
)

const (
	apiKeyHeader   = "X-API-Key"
	apiKeyAdminID  = "api-key"
	bearerPrefix   = "Bearer "
	correlationHdr = "X-Correlation-ID"
)

// AuthClient guards the admin API. Callers authenticate with either an
// X-API-Key matching the configured bcrypt hash or a Supabase session token.
type AuthClient struct {
	tokens     interfaces.AdminTokenValidator
	apiKeyHash string
}

// NewAuthClient creates the admin guard. Either credential source may be disabled by
// passing a nil validator or an empty hash.
func NewAuthClient(tokens interfaces.AdminTokenValidator, apiKeyHash string) *AuthClient {
	return &AuthClient{tokens: tokens, apiKeyHash: apiKeyHash}
}

// EnsureAdmin is a middleware that rejects requests without valid admin credentials
func (ac *AuthClient) EnsureAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Log.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("correlation_id", c.GetHeader(correlationHdr)),
		)

		if apiKey := c.GetHeader(apiKeyHeader); apiKey != "" {
			if ac.apiKeyHash == "" || helpers.CompareAPIKeyHash(apiKey, ac.apiKeyHash) != nil {
				log.Debug("API key validation failed")
				abortUnauthorized(c, "Invalid API key")
				return
			}
			ac.setAdmin(c, &business.AdminUser{ID: apiKeyAdminID, Method: business.AuthMethodAPIKey})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("No authentication provided")
			abortUnauthorized(c, "No authentication provided")
			return
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) || ac.tokens == nil {
			abortUnauthorized(c, "Invalid authorization header")
			return
		}

		admin, err := ac.tokens.ValidateToken(c.Request.Context(), strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Info("admin token rejected", zap.Error(err))
			if errors.Is(err, ErrNotAdmin) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				return
			}
			abortUnauthorized(c, "Invalid or expired session")
			return
		}
		ac.setAdmin(c, admin)
	}
}

func (ac *AuthClient) setAdmin(c *gin.Context, admin *business.AdminUser) {
	c.Set(AdminUserKey, admin)
	c.Set(AuthTypeKey, admin.Method)
	c.Next()
}

// GetAdminUser returns the admin set by EnsureAdmin
func GetAdminUser(c *gin.Context) (*business.AdminUser, bool) {
	value, exists := c.Get(AdminUserKey)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*business.AdminUser)
	return admin, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
