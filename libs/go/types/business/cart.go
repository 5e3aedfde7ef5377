package business

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is what the session stores per line
type CartItem struct {
	RegimeID uuid.UUID        `json:"regime_id"`
	Tier     SubscriptionTier `json:"tier"`
	Quantity int32            `json:"quantity"`
}

// Cart is the session-scoped basket
type Cart struct {
	Items        []CartItem `json:"items"`
	DiscountCode *string    `json:"discount_code,omitempty"`
}

// CartLine is a cart item priced against the current regime data
type CartLine struct {
	RegimeID   uuid.UUID        `json:"regime_id"`
	RegimeName string           `json:"regime_name"`
	ImageURL   string           `json:"image_url"`
	Tier       SubscriptionTier `json:"tier"`
	Quantity   int32            `json:"quantity"`
	Quote      PriceQuote       `json:"quote"`
	LineTotal  decimal.Decimal  `json:"line_total"`
}

// CartSummary is a fully priced cart
type CartSummary struct {
	Lines          []CartLine      `json:"lines"`
	ItemCount      int32           `json:"item_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountCode   *string         `json:"discount_code,omitempty"`
	DiscountCodeID *uuid.UUID      `json:"-"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency"`
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
