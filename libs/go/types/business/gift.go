package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/constants"
)

// GiftStatus is whether a gift card can still be redeemed
type GiftStatus string

const (
	GiftStatusActive   GiftStatus = constants.GiftStatusActive
	GiftStatusRedeemed GiftStatus = constants.GiftStatusRedeemed
)

// GiftCard is a prepaid regime that a recipient redeems with their own shipping details
type GiftCard struct {
	ID              uuid.UUID        `json:"id"`
	Code            string           `json:"code"`
	RegimeID        uuid.UUID        `json:"regime_id"`
	Tier            SubscriptionTier `json:"tier"`
	PurchaserName   string           `json:"purchaser_name"`
	PurchaserEmail  string           `json:"purchaser_email"`
	RecipientName   string           `json:"recipient_name"`
	RecipientEmail  string           `json:"recipient_email"`
	Message         *string          `json:"message,omitempty"`
	Status          GiftStatus       `json:"status"`
	OrderID         uuid.UUID        `json:"order_id"`
	RedeemedOrderID *uuid.UUID       `json:"redeemed_order_id,omitempty"`
	RedeemedAt      *time.Time       `json:"redeemed_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// IsRedeemable reports whether the gift is still unused
func (g GiftCard) IsRedeemable() bool {
	return g.Status == GiftStatusActive
}
