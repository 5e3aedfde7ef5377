package params

import (
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// PlaceOrderParams contains everything checkout needs besides the cart itself
type PlaceOrderParams struct {
	SessionID     string
	Customer      business.CustomerDetails
	Shipping      business.ShippingAddress
	PaymentMethod business.PaymentMethod
	Notes         *string
	// FormRegimeID points at a completed questionnaire to attach to the order
	FormRegimeID *uuid.UUID
}

// CreatePaymentIntentParams contains the parameters for a card payment
type CreatePaymentIntentParams struct {
	AmountMinor  int64
	Currency     string
	ReceiptEmail string
	Description  string
	Metadata     map[string]string
}

// PurchaseGiftParams contains the parameters for buying a gift card
type PurchaseGiftParams struct {
	RegimeID       uuid.UUID
	Tier           business.SubscriptionTier
	Purchaser      business.CustomerDetails
	Billing        business.ShippingAddress
	RecipientName  string
	RecipientEmail string
	Message        *string
	PaymentMethod  business.PaymentMethod
}

// RedeemGiftParams contains the recipient details for a gift redemption
type RedeemGiftParams struct {
	Code     string
	Customer business.CustomerDetails
	Shipping business.ShippingAddress
	Answers  *business.RegimeFormAnswers
}

// SubmitReviewParams contains a customer review
type SubmitReviewParams struct {
	RegimeID     uuid.UUID
	CustomerName string
	Rating       int32
	Comment      string
}
