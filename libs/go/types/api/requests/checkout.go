package requests

import "github.com/regime-co/regime-api/libs/go/types/business"

// CheckoutRequest represents the request body for placing an order
type CheckoutRequest struct {
	Customer      business.CustomerDetails `json:"customer" binding:"required"`
	Shipping      business.ShippingAddress `json:"shipping" binding:"required"`
	PaymentMethod string                   `json:"payment_method" binding:"required,oneof=card bank_transfer"`
	Notes         *string                  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	FormRegimeID  *string                  `json:"form_regime_id,omitempty" binding:"omitempty,uuid"`
}

// PurchaseGiftRequest represents the request body for buying a gift card
type PurchaseGiftRequest struct {
	RegimeID       string                   `json:"regime_id" binding:"required,uuid"`
	Tier           string                   `json:"tier" binding:"required,oneof=one-time 3-months 6-months"`
	Purchaser      business.CustomerDetails `json:"purchaser" binding:"required"`
	Billing        business.ShippingAddress `json:"billing" binding:"required"`
	RecipientName  string                   `json:"recipient_name" binding:"required,max=120"`
	RecipientEmail string                   `json:"recipient_email" binding:"required,email"`
	Message        *string                  `json:"message,omitempty" binding:"omitempty,max=500"`
	PaymentMethod  string                   `json:"payment_method" binding:"required,oneof=card bank_transfer"`
}

// RedeemGiftRequest represents the request body for redeeming a gift card
type RedeemGiftRequest struct {
	Customer business.CustomerDetails    `json:"customer" binding:"required"`
	Shipping business.ShippingAddress    `json:"shipping" binding:"required"`
	Answers  *business.RegimeFormAnswers `json:"answers,omitempty"`
}
