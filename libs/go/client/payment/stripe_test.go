package payment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

func init() {
	logger.InitLogger("test")
}

type fakeIntents struct {
	created *stripe.PaymentIntentCreateParams
	intent  *stripe.PaymentIntent
	err     error
}

func (f *fakeIntents) Create(_ context.Context, p *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error) {
	f.created = p
	return f.intent, f.err
}

func (f *fakeIntents) Retrieve(_ context.Context, id string, _ *stripe.PaymentIntentRetrieveParams) (*stripe.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	pi := *f.intent
	pi.ID = id
	return &pi, nil
}

func newTestGateway(intents intentsAPI, secret string) *StripeGateway {
	return &StripeGateway{intents: intents, webhookSecret: secret, logger: logger.Log}
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	intents := &fakeIntents{intent: &stripe.PaymentIntent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret_abc",
		Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
		Amount:       134900,
		Currency:     stripe.CurrencyPKR,
	}}
	gateway := newTestGateway(intents, "")

	intent, err := gateway.CreatePaymentIntent(context.Background(), params.CreatePaymentIntentParams{
		AmountMinor:  134900,
		Currency:     "PKR",
		ReceiptEmail: "ayesha@example.com",
		Description:  "Order RG-20261019-AB12",
		Metadata:     map[string]string{"order_id": "o-1"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(134900), stripe.Int64Value(intents.created.Amount))
	assert.Equal(t, "pkr", stripe.StringValue(intents.created.Currency))
	assert.Equal(t, "ayesha@example.com", stripe.StringValue(intents.created.ReceiptEmail))
	assert.Equal(t, "o-1", intents.created.Metadata["order_id"])
	assert.True(t, stripe.BoolValue(intents.created.AutomaticPaymentMethods.Enabled))

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, "requires_payment_method", intent.Status)
	assert.Equal(t, "PKR", intent.Currency)
	assert.False(t, intent.Succeeded())
}

func TestStripeGateway_CreatePaymentIntent_Error(t *testing.T) {
	gateway := newTestGateway(&fakeIntents{err: errors.New("card_declined")}, "")

	_, err := gateway.CreatePaymentIntent(context.Background(), params.CreatePaymentIntentParams{AmountMinor: 100, Currency: "PKR"})
	assert.ErrorContains(t, err, "card_declined")
}

func TestStripeGateway_GetPaymentIntent(t *testing.T) {
	gateway := newTestGateway(&fakeIntents{intent: &stripe.PaymentIntent{Status: stripe.PaymentIntentStatusSucceeded, Amount: 29900, Currency: stripe.CurrencyPKR}}, "")

	intent, err := gateway.GetPaymentIntent(context.Background(), "pi_777")
	require.NoError(t, err)
	assert.Equal(t, "pi_777", intent.ID)
	assert.True(t, intent.Succeeded())
}

func signedEvent(t *testing.T, secret, eventType string, object map[string]any) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_1",
		"object":      "event",
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	const secret = "whsec_test"
	gateway := newTestGateway(&fakeIntents{}, secret)

	t.Run("payment succeeded", func(t *testing.T) {
		payload, header := signedEvent(t, secret, "payment_intent.succeeded", map[string]any{
			"id":       "pi_123",
			"object":   "payment_intent",
			"status":   "succeeded",
			"amount":   134900,
			"currency": "pkr",
			"metadata": map[string]string{"order_id": "0b0c6a0e-1c1f-4bb8-9f4e-0d1f0e2a3b4c"},
		})

		event, err := gateway.ParseWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, "payment_intent.succeeded", event.Type)
		assert.Equal(t, "pi_123", event.Intent.ID)
		assert.True(t, event.Intent.Succeeded())
		assert.Equal(t, "0b0c6a0e-1c1f-4bb8-9f4e-0d1f0e2a3b4c", event.OrderID)
	})

	t.Run("bad signature", func(t *testing.T) {
		payload, _ := signedEvent(t, secret, "payment_intent.succeeded", map[string]any{"id": "pi_1"})
		_, err := gateway.ParseWebhook(payload, "t=1,v1=deadbeef")
		assert.Error(t, err)
	})

	t.Run("other event types", func(t *testing.T) {
		payload, header := signedEvent(t, secret, "customer.created", map[string]any{"id": "cus_1", "object": "customer"})
		_, err := gateway.ParseWebhook(payload, header)
		assert.ErrorIs(t, err, ErrUnhandledEvent)
	})

	t.Run("no secret configured", func(t *testing.T) {
		_, err := newTestGateway(&fakeIntents{}, "").ParseWebhook([]byte(`{}`), "")
		assert.ErrorIs(t, err, ErrWebhookNotConfigured)
	})
}
