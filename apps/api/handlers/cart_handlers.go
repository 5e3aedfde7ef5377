package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// CartHandler manages the session cart
type CartHandler struct {
	cartService interfaces.CartService
}

// NewCartHandler creates a handler with interface dependencies
func NewCartHandler(cartService interfaces.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Use types from the centralized packages
type (
	CartItemRequest       = requests.CartItemRequest
	RemoveCartItemRequest = requests.RemoveCartItemRequest
	ApplyDiscountRequest  = requests.ApplyDiscountRequest
)

func (h *CartHandler) sendSummary(c *gin.Context, summary *business.CartSummary, err error, fallback string) {
	if err != nil {
		handleServiceError(c, err, fallback)
		return
	}
	sendSuccess(c, http.StatusOK, summary)
}

// GetCart godoc
// @Summary Get the cart
// @Description Returns the session cart priced against current regime data
// @Tags cart
// @Produce json
// @Param X-Session-ID header string true "Storefront session"
// @Success 200 {object} business.CartSummary
// @Failure 400 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	summary, err := h.cartService.Summary(c.Request.Context(), sessionID)
	h.sendSummary(c, summary, err, "Failed to load cart")
}

// AddItem godoc
// @Summary Add a regime to the cart
// @Description Adds a line, or increases the quantity of an existing line for the same regime and tier
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Storefront session"
// @Param item body CartItemRequest true "Cart item"
// @Success 200 {object} business.CartSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	item, ok := bindCartItem(c)
	if !ok {
		return
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	summary, err := h.cartService.AddItem(c.Request.Context(), sessionID, item)
	h.sendSummary(c, summary, err, "Failed to add item")
}

// UpdateItem godoc
// @Summary Change a cart line quantity
// @Description Sets the quantity of a line. A quantity of zero removes it.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Storefront session"
// @Param item body CartItemRequest true "Cart item"
// @Success 200 {object} business.CartSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	item, ok := bindCartItem(c)
	if !ok {
		return
	}
	summary, err := h.cartService.UpdateItem(c.Request.Context(), sessionID, item)
	h.sendSummary(c, summary, err, "Failed to update item")
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Storefront session"
// @Param item body RemoveCartItemRequest true "Line to remove"
// @Success 200 {object} business.CartSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	var req RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	regimeID, err := uuid.Parse(req.RegimeID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid regime ID format", err)
		return
	}
	summary, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, regimeID, business.SubscriptionTier(req.Tier))
	h.sendSummary(c, summary, err, "Failed to remove item")
}

// ApplyDiscount godoc
// @Summary Apply a discount code
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Storefront session"
// @Param body body ApplyDiscountRequest true "Discount code"
// @Success 200 {object} business.CartSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /cart/discount [post]
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	summary, err := h.cartService.ApplyDiscount(c.Request.Context(), sessionID, req.Code)
	h.sendSummary(c, summary, err, "Failed to apply discount code")
}

// RemoveDiscount godoc
// @Summary Remove the discount code
// @Tags cart
// @Produce json
// @Param X-Session-ID header string true "Storefront session"
// @Success 200 {object} business.CartSummary
// @Router /cart/discount [delete]
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	summary, err := h.cartService.RemoveDiscount(c.Request.Context(), sessionID)
	h.sendSummary(c, summary, err, "Failed to remove discount code")
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags cart
// @Param X-Session-ID header string true "Storefront session"
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		return
	}
	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		handleServiceError(c, err, "Failed to clear cart")
		return
	}
	c.Status(http.StatusNoContent)
}

func bindCartItem(c *gin.Context) (business.CartItem, bool) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return business.CartItem{}, false
	}
	regimeID, err := uuid.Parse(req.RegimeID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid regime ID format", err)
		return business.CartItem{}, false
	}
	return business.CartItem{
		RegimeID: regimeID,
		Tier:     business.SubscriptionTier(req.Tier),
		Quantity: req.Quantity,
	}, true
}
