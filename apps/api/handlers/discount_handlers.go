package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
)

// DiscountHandler manages discount codes for the admin panel
type DiscountHandler struct {
	discountService interfaces.DiscountService
}

// NewDiscountHandler creates a handler with interface dependencies
func NewDiscountHandler(discountService interfaces.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// Use types from the centralized packages
type (
	CreateDiscountCodeRequest = requests.CreateDiscountCodeRequest
	UpdateDiscountCodeRequest = requests.UpdateDiscountCodeRequest
)

// ListDiscountCodes godoc
// @Summary List discount codes
// @Tags admin
// @Produce json
// @Success 200 {object} ListResponse
// @Security ApiKeyAuth
// @Router /admin/discount-codes [get]
func (h *DiscountHandler) ListDiscountCodes(c *gin.Context) {
	codes, err := h.discountService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to list discount codes")
		return
	}
	sendList(c, codes)
}

// GetDiscountCode godoc
// @Summary Get a discount code
// @Tags admin
// @Produce json
// @Param discount_id path string true "Discount code ID"
// @Success 200 {object} business.DiscountCode
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/discount-codes/{discount_id} [get]
func (h *DiscountHandler) GetDiscountCode(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "discount code")
	if !ok {
		return
	}
	code, err := h.discountService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve discount code")
		return
	}
	sendSuccess(c, http.StatusOK, code)
}

// CreateDiscountCode godoc
// @Summary Create a discount code
// @Description Codes are stored upper case. Single-use codes stop working after their first order.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body CreateDiscountCodeRequest true "Discount code"
// @Success 201 {object} business.DiscountCode
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/discount-codes [post]
func (h *DiscountHandler) CreateDiscountCode(c *gin.Context) {
	var req CreateDiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	code, err := h.discountService.Create(c.Request.Context(), params.DiscountCodeParams{
		Code:          req.Code,
		PercentageOff: req.PercentageOff,
		Description:   req.Description,
		IsRecurring:   req.IsRecurring,
		IsActive:      isActive,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to create discount code")
		return
	}
	sendSuccess(c, http.StatusCreated, code)
}

// UpdateDiscountCode godoc
// @Summary Update a discount code
// @Description Used single-use codes can no longer be edited
// @Tags admin
// @Accept json
// @Produce json
// @Param discount_id path string true "Discount code ID"
// @Param body body UpdateDiscountCodeRequest true "Discount code"
// @Success 200 {object} business.DiscountCode
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/discount-codes/{discount_id} [put]
func (h *DiscountHandler) UpdateDiscountCode(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "discount code")
	if !ok {
		return
	}
	var req UpdateDiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	code, err := h.discountService.Update(c.Request.Context(), id, params.DiscountCodeParams{
		Code:          req.Code,
		PercentageOff: req.PercentageOff,
		Description:   req.Description,
		IsRecurring:   req.IsRecurring,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to update discount code")
		return
	}
	sendSuccess(c, http.StatusOK, code)
}

// SetDiscountCodeActive godoc
// @Summary Activate or deactivate a discount code
// @Tags admin
// @Accept json
// @Produce json
// @Param discount_id path string true "Discount code ID"
// @Param body body SetActiveRequest true "Active flag"
// @Success 200 {object} business.DiscountCode
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/discount-codes/{discount_id}/active [patch]
func (h *DiscountHandler) SetDiscountCodeActive(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "discount code")
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	code, err := h.discountService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		handleServiceError(c, err, "Failed to update discount code")
		return
	}
	sendSuccess(c, http.StatusOK, code)
}

// DeleteDiscountCode godoc
// @Summary Delete a discount code
// @Description Only codes that were never used can be deleted
// @Tags admin
// @Param discount_id path string true "Discount code ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/discount-codes/{discount_id} [delete]
func (h *DiscountHandler) DeleteDiscountCode(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "discount code")
	if !ok {
		return
	}
	if err := h.discountService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete discount code")
		return
	}
	c.Status(http.StatusNoContent)
}
