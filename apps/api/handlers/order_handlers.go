package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
	"github.com/regime-co/regime-api/libs/go/types/api/responses"
)

// OrderHandler serves order confirmation pages and the admin order desk
type OrderHandler struct {
	orderService interfaces.OrderService
	lifecycle    interfaces.OrderLifecycle
}

// NewOrderHandler creates a handler with interface dependencies
func NewOrderHandler(orderService interfaces.OrderService, lifecycle interfaces.OrderLifecycle) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		lifecycle:    lifecycle,
	}
}

// Use types from the centralized packages
type (
	OrderStatusResponse      = responses.OrderStatusResponse
	UpdateOrderStatusRequest = requests.UpdateOrderStatusRequest
)

// GetOrderByNumber godoc
// @Summary Get an order confirmation
// @Description Gets an order by its customer facing number together with its status presentation
// @Tags orders
// @Produce json
// @Param order_number path string true "Order number"
// @Success 200 {object} business.OrderView
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_number} [get]
func (h *OrderHandler) GetOrderByNumber(c *gin.Context) {
	// shares the :id segment with /orders/:id/confirm-payment
	view, err := h.orderService.GetByNumber(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve order")
		return
	}
	sendSuccess(c, http.StatusOK, view)
}

// GetOrderStatus godoc
// @Summary Describe an order status
// @Description Returns the label, icon and timeline for a raw status value. Unknown values get a neutral bundle.
// @Tags orders
// @Produce json
// @Param status path string true "Order status"
// @Success 200 {object} OrderStatusResponse
// @Router /order-status/{status} [get]
func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	status := strings.ToLower(strings.TrimSpace(c.Param("status")))
	sendSuccess(c, http.StatusOK, OrderStatusResponse{
		Lifecycle: h.lifecycle.DescribeStatus(status),
		Timeline:  h.lifecycle.BuildTimeline(status),
	})
}

// ListOrders godoc
// @Summary List orders
// @Description Lists orders newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Order status"
// @Param limit query int false "Number of items per page (default 20, max 100)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit, page, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	p := params.ListOrdersParams{Limit: limit, Offset: (page - 1) * limit}
	if status := c.Query("status"); status != "" {
		p.Status = &status
	}

	orders, total, err := h.orderService.List(c.Request.Context(), p)
	if err != nil {
		handleServiceError(c, err, "Failed to list orders")
		return
	}
	sendPaginatedSuccess(c, orders, page, limit, total)
}

// GetOrder godoc
// @Summary Get an order
// @Tags admin
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} business.OrderView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "order")
	if !ok {
		return
	}
	view, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve order")
		return
	}
	sendSuccess(c, http.StatusOK, view)
}

// UpdateOrderStatus godoc
// @Summary Move an order to a new status
// @Description Changes the fulfilment status and emails the customer. Completed and cancelled orders cannot change.
// @Tags admin
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param body body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} business.OrderView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "order")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	view, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err, "Failed to update order status")
		return
	}
	sendSuccess(c, http.StatusOK, view)
}

// MarkOrderPaid godoc
// @Summary Record a bank transfer
// @Description Marks a bank transfer order as paid once the money has arrived
// @Tags admin
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} business.OrderView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/orders/{order_id}/paid [patch]
func (h *OrderHandler) MarkOrderPaid(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "order")
	if !ok {
		return
	}
	view, err := h.orderService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to mark order paid")
		return
	}
	sendSuccess(c, http.StatusOK, view)
}
