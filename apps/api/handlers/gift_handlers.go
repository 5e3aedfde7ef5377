package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// GiftHandler sells and redeems gift cards
type GiftHandler struct {
	giftService interfaces.GiftService
}

// NewGiftHandler creates a handler with interface dependencies
func NewGiftHandler(giftService interfaces.GiftService) *GiftHandler {
	return &GiftHandler{giftService: giftService}
}

// Use types from the centralized packages
type (
	PurchaseGiftRequest = requests.PurchaseGiftRequest
	RedeemGiftRequest   = requests.RedeemGiftRequest
)

// PurchaseGift godoc
// @Summary Buy a gift card
// @Description Creates a gift card for one regime and tier and the order that pays for it
// @Tags gifts
// @Accept json
// @Produce json
// @Param gift body PurchaseGiftRequest true "Gift details"
// @Success 201 {object} business.GiftPurchaseResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /gifts [post]
func (h *GiftHandler) PurchaseGift(c *gin.Context) {
	var req PurchaseGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	regimeID, err := uuid.Parse(req.RegimeID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid regime ID format", err)
		return
	}

	result, err := h.giftService.PurchaseGift(c.Request.Context(), params.PurchaseGiftParams{
		RegimeID:       regimeID,
		Tier:           business.SubscriptionTier(req.Tier),
		Purchaser:      req.Purchaser,
		Billing:        req.Billing,
		RecipientName:  req.RecipientName,
		RecipientEmail: req.RecipientEmail,
		Message:        req.Message,
		PaymentMethod:  business.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		handleServiceError(c, err, "Failed to purchase gift")
		return
	}
	sendSuccess(c, http.StatusCreated, result)
}

// GetGift godoc
// @Summary Look up a gift card
// @Description Returns what the redemption page shows for a code
// @Tags gifts
// @Produce json
// @Param code path string true "Gift code"
// @Success 200 {object} business.GiftLookup
// @Failure 404 {object} ErrorResponse
// @Router /gifts/{code} [get]
func (h *GiftHandler) GetGift(c *gin.Context) {
	lookup, err := h.giftService.LookupGift(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve gift")
		return
	}
	sendSuccess(c, http.StatusOK, lookup)
}

// RedeemGift godoc
// @Summary Redeem a gift card
// @Description Creates the recipient's order at no charge. A code can be redeemed once.
// @Tags gifts
// @Accept json
// @Produce json
// @Param code path string true "Gift code"
// @Param body body RedeemGiftRequest true "Recipient details"
// @Success 201 {object} business.OrderView
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /gifts/{code}/redeem [post]
func (h *GiftHandler) RedeemGift(c *gin.Context) {
	var req RedeemGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	view, err := h.giftService.RedeemGift(c.Request.Context(), params.RedeemGiftParams{
		Code:     c.Param("code"),
		Customer: req.Customer,
		Shipping: req.Shipping,
		Answers:  req.Answers,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to redeem gift")
		return
	}
	sendSuccess(c, http.StatusCreated, view)
}
