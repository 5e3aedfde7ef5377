package business

import (
	"time"

	"github.com/google/uuid"
)

// NotificationMessage is what the API puts on the notification queue and the
// processor turns into an email
type NotificationMessage struct {
	ID             string         `json:"id"`
	Template       EmailTemplate  `json:"template"`
	RecipientEmail string         `json:"recipient_email"`
	RecipientName  string         `json:"recipient_name"`
	OrderID        *uuid.UUID     `json:"order_id,omitempty"`
	Data           map[string]any `json:"data"`
	CorrelationID  string         `json:"correlation_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// EmailAttachment is a file sent along with an email
type EmailAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

// RenderedEmail is a template rendered for one recipient
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// BankDetails is shown to customers paying by bank transfer
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountTitle  string `json:"account_title"`
	AccountNumber string `json:"account_number"`
	IBAN          string `json:"iban"`
}

// PaymentIntent is the gateway's view of a card payment
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	AmountMinor  int64  `json:"amount_minor"`
	Currency     string `json:"currency"`
}

// Succeeded reports whether the card charge went through
func (p PaymentIntent) Succeeded() bool {
	return p.Status == "succeeded"
}

// PaymentEvent is a verified card payment webhook
type PaymentEvent struct {
	ID      string        `json:"id"`
	Type    string        `json:"type"`
	Intent  PaymentIntent `json:"intent"`
	OrderID string        `json:"order_id"`
}

// PaymentEventFailed is the event type sent when a charge attempt is declined
const PaymentEventFailed = "payment_intent.payment_failed"

// AttemptFailed reports whether the event reports a declined charge attempt
func (e PaymentEvent) AttemptFailed() bool {
	return e.Type == PaymentEventFailed
}
