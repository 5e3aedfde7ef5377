package business

// CheckoutResult is what the customer needs to finish paying for an order
type CheckoutResult struct {
	Order            Order        `json:"order"`
	ClientSecret     *string      `json:"client_secret,omitempty"`
	BankDetails      *BankDetails `json:"bank_details,omitempty"`
	PaymentReference *string      `json:"payment_reference,omitempty"`
}

// GiftPurchaseResult is the outcome of buying a gift card
type GiftPurchaseResult struct {
	Gift     GiftCard       `json:"gift"`
	Checkout CheckoutResult `json:"checkout"`
}

// GiftLookup is the public view of a gift card on the redemption page
type GiftLookup struct {
	Code          string           `json:"code"`
	Status        GiftStatus       `json:"status"`
	RegimeID      string           `json:"regime_id"`
	RegimeName    string           `json:"regime_name"`
	Tier          SubscriptionTier `json:"tier"`
	RecipientName string           `json:"recipient_name"`
	PurchaserName string           `json:"purchaser_name"`
	Message       *string          `json:"message,omitempty"`
	Redeemable    bool             `json:"redeemable"`
}

// OrderView is an order together with how its status should be presented
type OrderView struct {
	Order     Order           `json:"order"`
	Lifecycle LifecycleBundle `json:"lifecycle"`
	Timeline  Timeline        `json:"timeline"`
}
