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

// CheckoutHandler turns the session cart into an order
type CheckoutHandler struct {
	checkoutService interfaces.CheckoutService
}

// NewCheckoutHandler creates a handler with interface dependencies
func NewCheckoutHandler(checkoutService interfaces.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Use types from the centralized packages
type CheckoutRequest = requests.CheckoutRequest

// Checkout godoc
// @Summary Place an order
// @Description Creates an order from the session cart. Card orders return a client secret for
// @Description the payment form; bank transfer orders return the account to pay into.
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Storefront session"
// @Param checkout body CheckoutRequest true "Checkout details"
// @Success 201 {object} business.CheckoutResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p := params.PlaceOrderParams{
		SessionID:     sessionID,
		Customer:      req.Customer,
		Shipping:      req.Shipping,
		PaymentMethod: business.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}
	if req.FormRegimeID != nil {
		formRegimeID, err := uuid.Parse(*req.FormRegimeID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid regime ID format", err)
			return
		}
		p.FormRegimeID = &formRegimeID
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err, "Failed to place order")
		return
	}
	sendSuccess(c, http.StatusCreated, result)
}

// ConfirmPayment godoc
// @Summary Confirm a card payment
// @Description Checks the card payment with the processor after the customer returns from the payment form
// @Tags checkout
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} business.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /orders/{order_id}/confirm-payment [post]
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "id", "order")
	if !ok {
		return
	}
	order, err := h.checkoutService.ConfirmCardPayment(c.Request.Context(), orderID)
	if err != nil {
		handleServiceError(c, err, "Failed to confirm payment")
		return
	}
	sendSuccess(c, http.StatusOK, order)
}
