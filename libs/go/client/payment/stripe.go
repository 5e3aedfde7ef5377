package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

var (
	// ErrWebhookNotConfigured is returned when no signing secret was provided
	ErrWebhookNotConfigured = errors.New("stripe webhook secret not configured")
	// ErrUnhandledEvent is returned for webhook events that are not about payment intents
	ErrUnhandledEvent = errors.New("unhandled stripe event type")
)

// intentsAPI is the part of the Stripe payment intents service we use
type intentsAPI interface {
	Create(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
	Retrieve(ctx context.Context, id string, params *stripe.PaymentIntentRetrieveParams) (*stripe.PaymentIntent, error)
}

// StripeGateway takes card payments through Stripe payment intents
type StripeGateway struct {
	intents       intentsAPI
	webhookSecret string
	logger        *zap.Logger
}

// NewStripeGateway creates a gateway for the given secret key. webhookSecret may be
// empty when the deployment does not receive Stripe webhooks.
func NewStripeGateway(apiKey, webhookSecret string) *StripeGateway {
	client := stripe.NewClient(apiKey, nil)
	return &StripeGateway{
		intents:       client.V1PaymentIntents,
		webhookSecret: webhookSecret,
		logger:        logger.Named(logger.ComponentPayment),
	}
}

// CreatePaymentIntent starts a card payment for the given amount in minor units
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, p params.CreatePaymentIntentParams) (*business.PaymentIntent, error) {
	createParams := &stripe.PaymentIntentCreateParams{
		Amount:                  stripe.Int64(p.AmountMinor),
		Currency:                stripe.String(strings.ToLower(p.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{Enabled: stripe.Bool(true)},
	}
	if p.Description != "" {
		createParams.Description = stripe.String(p.Description)
	}
	if p.ReceiptEmail != "" {
		createParams.ReceiptEmail = stripe.String(p.ReceiptEmail)
	}
	if len(p.Metadata) > 0 {
		createParams.Metadata = p.Metadata
	}

	pi, err := g.intents.Create(ctx, createParams)
	if err != nil {
		g.logger.Error("failed to create payment intent", zap.Error(err), zap.Int64("amount", p.AmountMinor))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	g.logger.Info("created payment intent", zap.String("payment_intent_id", pi.ID), zap.String("status", string(pi.Status)))
	return toPaymentIntent(pi), nil
}

// GetPaymentIntent fetches the current state of a payment intent
func (g *StripeGateway) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*business.PaymentIntent, error) {
	pi, err := g.intents.Retrieve(ctx, paymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent %s: %w", paymentIntentID, err)
	}
	return toPaymentIntent(pi), nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes a payment intent event.
// Events about anything other than payment intents return ErrUnhandledEvent.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*business.PaymentEvent, error) {
	if g.webhookSecret == "" {
		return nil, ErrWebhookNotConfigured
	}

	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		g.logger.Warn("webhook signature verification failed", zap.Error(err))
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	g.logger.Info("received stripe webhook event", zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded,
		stripe.EventTypePaymentIntentPaymentFailed,
		stripe.EventTypePaymentIntentCanceled,
		stripe.EventTypePaymentIntentProcessing:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		return &business.PaymentEvent{
			ID:      event.ID,
			Type:    string(event.Type),
			Intent:  *toPaymentIntent(&pi),
			OrderID: pi.Metadata["order_id"],
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnhandledEvent, event.Type)
	}
}

func toPaymentIntent(pi *stripe.PaymentIntent) *business.PaymentIntent {
	return &business.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountMinor:  pi.Amount,
		Currency:     strings.ToUpper(string(pi.Currency)),
	}
}
