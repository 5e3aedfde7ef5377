package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
)

// SubscriberHandler manages newsletter sign-ups
type SubscriberHandler struct {
	subscriberService interfaces.SubscriberService
}

// NewSubscriberHandler creates a handler with interface dependencies
func NewSubscriberHandler(subscriberService interfaces.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// Use types from the centralized packages
type SubscribeRequest = requests.SubscribeRequest

// Subscribe godoc
// @Summary Join the newsletter
// @Tags subscribers
// @Accept json
// @Produce json
// @Param body body SubscribeRequest true "Email address"
// @Success 201 {object} business.Subscriber
// @Failure 400 {object} ErrorResponse
// @Router /subscribers [post]
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	subscriber, err := h.subscriberService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		handleServiceError(c, err, "Failed to subscribe")
		return
	}
	sendSuccess(c, http.StatusCreated, subscriber)
}

// Unsubscribe godoc
// @Summary Leave the newsletter
// @Tags subscribers
// @Produce json
// @Param email path string true "Email address"
// @Param token query string true "Token from the unsubscribe link"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /subscribers/{email} [delete]
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	if err := h.subscriberService.Unsubscribe(c.Request.Context(), c.Param("email"), c.Query("token")); err != nil {
		handleServiceError(c, err, "Failed to unsubscribe")
		return
	}
	sendSuccessMessage(c, http.StatusOK, "Unsubscribed")
}

// ListSubscribers godoc
// @Summary List subscribers
// @Tags admin
// @Produce json
// @Param limit query int false "Number of items per page (default 20, max 100)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} PaginatedResponse
// @Security ApiKeyAuth
// @Router /admin/subscribers [get]
func (h *SubscriberHandler) ListSubscribers(c *gin.Context) {
	limit, page, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	subscribers, total, err := h.subscriberService.List(c.Request.Context(), params.ListParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to list subscribers")
		return
	}
	sendPaginatedSuccess(c, subscribers, page, limit, total)
}

// DeleteSubscriber godoc
// @Summary Delete a subscriber
// @Tags admin
// @Param subscriber_id path string true "Subscriber ID"
// @Success 204 "No Content"
// @Security ApiKeyAuth
// @Router /admin/subscribers/{subscriber_id} [delete]
func (h *SubscriberHandler) DeleteSubscriber(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "subscriber")
	if !ok {
		return
	}
	if err := h.subscriberService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete subscriber")
		return
	}
	c.Status(http.StatusNoContent)
}
