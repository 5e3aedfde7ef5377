package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/types/api/responses"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	db      Pinger
	stage   string
	version string
}

func NewHealthHandler(db Pinger, stage, version string) *HealthHandler {
	return &HealthHandler{db: db, stage: stage, version: version}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Check the health of the server
// @Description Returns "ok" when the API and its database are reachable
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:  "ok",
		Stage:   h.stage,
		Version: h.version,
	}
	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp.Checks = map[string]string{"database": "ok"}
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Checks["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
