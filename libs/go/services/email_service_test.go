package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testBranding = services.EmailBranding{ShopName: "Regime Co", SupportEmail: "care@regime.example"}

func orderEmailData() map[string]any {
	return map[string]any{
		"customer_name":  "Ayesha",
		"order_number":   "RG-20261019-AB12",
		"order_url":      "https://regime.example/orders/RG-20261019-AB12",
		"payment_method": "Bank transfer",
		"items": []map[string]string{
			{"name": "Glow Essentials", "tier": "One-time purchase", "quantity": "2", "line_total": "PKR 448"},
		},
		"subtotal": "PKR 448",
		"total":    "PKR 448",
	}
}

func TestEmailService_Render(t *testing.T) {
	svc := services.NewEmailService(nil, testBranding)

	tests := []struct {
		name        string
		template    business.EmailTemplate
		data        map[string]any
		wantSubject string
		wantHTML    []string
		wantText    []string
	}{
		{
			name:        "order confirmation",
			template:    business.TemplateOrderConfirmation,
			data:        orderEmailData(),
			wantSubject: "Your Regime Co order RG-20261019-AB12",
			wantHTML:    []string{"Hi Ayesha", "Glow Essentials (One-time purchase) x 2", "PKR 448", "care@regime.example"},
			wantText:    []string{"Total: PKR 448", "Track your order: https://regime.example/orders/RG-20261019-AB12"},
		},
		{
			name:     "bank transfer instructions",
			template: business.TemplateBankTransferInstructions,
			data: map[string]any{
				"customer_name":  "Ayesha",
				"order_number":   "RG-20261019-AB12",
				"total":          "PKR 448",
				"bank_name":      "Meezan Bank",
				"account_title":  "Regime Co",
				"account_number": "0101-0102030405",
				"iban":           "PK36MEZN0001010102030405",
				"reference":      "RG-20261019-AB12",
			},
			wantSubject: "Payment details for order RG-20261019-AB12",
			wantHTML:    []string{"Meezan Bank", "PK36MEZN0001010102030405"},
			wantText:    []string{"Reference: RG-20261019-AB12"},
		},
		{
			name:     "status update",
			template: business.TemplateOrderShipped,
			data: map[string]any{
				"customer_name":      "Ayesha",
				"order_number":       "RG-20261019-AB12",
				"status_label":       "Order Shipped",
				"status_description": "Your order is on its way.",
			},
			wantSubject: "Order RG-20261019-AB12 is on its way",
			wantHTML:    []string{"Order Shipped"},
			wantText:    []string{"Your order is on its way."},
		},
		{
			name:     "gift card escapes the personal message",
			template: business.TemplateGiftCard,
			data: map[string]any{
				"recipient_name": "Hina",
				"purchaser_name": "Sara",
				"regime_name":    "Glow Essentials",
				"tier":           "3-month subscription",
				"code":           "GIFT-ABCD-EFGH",
				"message":        "<b>enjoy</b>",
			},
			wantSubject: "Sara sent you a Glow Essentials gift",
			wantHTML:    []string{"GIFT-ABCD-EFGH", "&lt;b&gt;enjoy&lt;/b&gt;"},
			wantText:    []string{"\"<b>enjoy</b>\""},
		},
		{
			name:     "newsletter welcome carries the unsubscribe link",
			template: business.TemplateSubscriberWelcome,
			data: map[string]any{
				"unsubscribe_url": "https://regime.example/unsubscribe?email=glow%40example.com&token=abc",
			},
			wantSubject: "Welcome to the Regime Co newsletter",
			wantHTML:    []string{`href="https://regime.example/unsubscribe?email=glow%40example.com&amp;token=abc"`},
			wantText:    []string{"Unsubscribe here: https://regime.example/unsubscribe?email=glow%40example.com&token=abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := svc.Render(tt.template, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, rendered.Subject)
			for _, s := range tt.wantHTML {
				assert.Contains(t, rendered.HTML, s)
			}
			for _, s := range tt.wantText {
				assert.Contains(t, rendered.Text, s)
			}
		})
	}

	_, err := svc.Render("welcome", nil)
	assert.ErrorIs(t, err, services.ErrUnknownTemplate)
}

func TestEmailService_SendTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("gift card gets a QR code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mocks.NewMockEmailSender(ctrl)
		svc := services.NewEmailService(sender, testBranding, services.WithEmailRetry(0, time.Millisecond))

		sender.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p params.SendEmailParams) (string, error) {
				assert.Equal(t, []string{"hina@example.com"}, p.To)
				assert.Equal(t, "care@regime.example", p.ReplyTo)
				assert.Equal(t, "gift_card", p.Tags["template"])
				assert.Equal(t, "notif-1", p.Headers["X-Entity-Ref-ID"])
				require.Len(t, p.Attachments, 1)
				assert.Equal(t, "image/png", p.Attachments[0].ContentType)
				assert.NotEmpty(t, p.Attachments[0].Content)
				return "email-123", nil
			})

		id, err := svc.SendTemplate(ctx, business.NotificationMessage{
			ID:             "notif-1",
			Template:       business.TemplateGiftCard,
			RecipientEmail: "hina@example.com",
			RecipientName:  "Hina",
			Data: map[string]any{
				"purchaser_name": "Sara",
				"regime_name":    "Glow Essentials",
				"code":           "GIFT-ABCD-EFGH",
				"redeem_url":     "https://regime.example/gifts/GIFT-ABCD-EFGH",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "email-123", id)
	})

	t.Run("retries provider failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mocks.NewMockEmailSender(ctrl)
		svc := services.NewEmailService(sender, testBranding, services.WithEmailRetry(2, time.Millisecond))

		gomock.InOrder(
			sender.EXPECT().Send(ctx, gomock.Any()).Return("", errors.New("503 from provider")),
			sender.EXPECT().Send(ctx, gomock.Any()).Return("email-456", nil),
		)

		id, err := svc.SendTemplate(ctx, business.NotificationMessage{
			Template:       business.TemplateOrderConfirmation,
			RecipientEmail: "ayesha@example.com",
			Data:           orderEmailData(),
		})
		require.NoError(t, err)
		assert.Equal(t, "email-456", id)
	})

	t.Run("gives up after the retry budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mocks.NewMockEmailSender(ctrl)
		svc := services.NewEmailService(sender, testBranding, services.WithEmailRetry(1, time.Millisecond))

		sender.EXPECT().Send(ctx, gomock.Any()).Return("", errors.New("timeout")).Times(2)

		_, err := svc.SendTemplate(ctx, business.NotificationMessage{
			Template:       business.TemplateOrderConfirmation,
			RecipientEmail: "ayesha@example.com",
			Data:           orderEmailData(),
		})
		assert.ErrorContains(t, err, "timeout")
	})

	t.Run("requires a recipient", func(t *testing.T) {
		svc := services.NewEmailService(nil, testBranding)
		_, err := svc.SendTemplate(ctx, business.NotificationMessage{Template: business.TemplateOrderConfirmation})
		assert.ErrorIs(t, err, services.ErrMissingRecipient)
	})
}
