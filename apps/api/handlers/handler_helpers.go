package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/middleware"
	"github.com/regime-co/regime-api/libs/go/services"
)

const maxSessionIDLength = 128

// GetSessionID reads the storefront session from the X-Session-ID header
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID := strings.TrimSpace(c.GetHeader(middleware.SessionIDHeader))
	if sessionID == "" || len(sessionID) > maxSessionIDLength {
		sendError(c, http.StatusBadRequest, "X-Session-ID header is required", services.ErrMissingSessionID)
		return "", false
	}
	return sessionID, true
}
