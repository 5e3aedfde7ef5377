package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/regime-co/regime-api/libs/go/client/payment"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/middleware"
	"go.uber.org/zap"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBodyBytes   = 64 << 10
)

// WebhookHandler receives payment processor events
type WebhookHandler struct {
	gateway         interfaces.PaymentGateway
	checkoutService interfaces.CheckoutService
	logger          *zap.Logger
}

// NewWebhookHandler creates a webhook handler. gateway may be nil when card payments are off.
func NewWebhookHandler(gateway interfaces.PaymentGateway, checkoutService interfaces.CheckoutService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		gateway:         gateway,
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// HandleStripeWebhook godoc
// @Summary Receive Stripe events
// @Description Verifies the signature and reconciles the order of a payment intent event
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	if h.gateway == nil {
		sendError(c, http.StatusServiceUnavailable, "Card payments are not available", payment.ErrWebhookNotConfigured)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", errors.Wrap(err, "read webhook body"))
		return
	}

	event, err := h.gateway.ParseWebhook(payload, c.GetHeader(stripeSignatureHeader))
	switch {
	case errors.Is(err, payment.ErrUnhandledEvent):
		sendSuccessMessage(c, http.StatusOK, "ignored")
		return
	case errors.Is(err, payment.ErrWebhookNotConfigured):
		sendError(c, http.StatusServiceUnavailable, "Webhooks are not configured", err)
		return
	case err != nil:
		sendError(c, http.StatusBadRequest, "Invalid webhook", errors.Wrap(err, "parse webhook"))
		return
	}

	log := h.logger.With(
		zap.String("event_id", event.ID),
		zap.String("event_type", event.Type),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
	)
	if err := h.checkoutService.HandlePaymentEvent(c.Request.Context(), *event); err != nil {
		// A 5xx makes Stripe retry the delivery
		sendError(c, http.StatusInternalServerError, "Failed to process webhook", errors.Wrapf(err, "handle event %s", event.ID))
		return
	}
	log.Info("payment webhook processed")
	sendSuccessMessage(c, http.StatusOK, "processed")
}
