package business

import (
	"github.com/regime-co/regime-api/libs/go/constants"
	"github.com/shopspring/decimal"
)

// SubscriptionTier is one of the three purchase options a regime is sold under.
// Tiers are totally ordered: one-time < 3-months < 6-months.
type SubscriptionTier string

const (
	TierOneTime     SubscriptionTier = constants.TierOneTime
	TierThreeMonths SubscriptionTier = constants.TierThreeMonths
	TierSixMonths   SubscriptionTier = constants.TierSixMonths
)

// AllTiers lists the tiers in rank order
var AllTiers = []SubscriptionTier{TierOneTime, TierThreeMonths, TierSixMonths}

// ParseSubscriptionTier maps a raw tier string to a tier. Unknown input falls back to one-time.
func ParseSubscriptionTier(s string) SubscriptionTier {
	switch SubscriptionTier(s) {
	case TierThreeMonths:
		return TierThreeMonths
	case TierSixMonths:
		return TierSixMonths
	default:
		return TierOneTime
	}
}

// IsValid reports whether t is one of the known tiers
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierOneTime, TierThreeMonths, TierSixMonths:
		return true
	}
	return false
}

// Rank returns the tier's position in the total order
func (t SubscriptionTier) Rank() int {
	switch t {
	case TierThreeMonths:
		return 1
	case TierSixMonths:
		return 2
	default:
		return 0
	}
}

// Next returns the upsell target. 6-months is the end of the chain.
func (t SubscriptionTier) Next() (SubscriptionTier, bool) {
	switch ParseSubscriptionTier(string(t)) {
	case TierOneTime:
		return TierThreeMonths, true
	case TierThreeMonths:
		return TierSixMonths, true
	default:
		return "", false
	}
}

// Months is the number of monthly boxes a tier covers
func (t SubscriptionTier) Months() int {
	switch t {
	case TierThreeMonths:
		return 3
	case TierSixMonths:
		return 6
	default:
		return 1
	}
}

// Label is the customer facing tier name
func (t SubscriptionTier) Label() string {
	switch t {
	case TierThreeMonths:
		return "3-month subscription"
	case TierSixMonths:
		return "6-month subscription"
	default:
		return "One-time purchase"
	}
}

// TierPricing is the price schedule of one tier. A nil discount means no discount.
type TierPricing struct {
	Price           decimal.Decimal `json:"price"`
	DiscountPercent *int32          `json:"discount_percent,omitempty"`
	DiscountReason  *string         `json:"discount_reason,omitempty"`
}

// Percent returns the discount percentage, 0 when unset
func (p TierPricing) Percent() int32 {
	if p.DiscountPercent == nil {
		return 0
	}
	return *p.DiscountPercent
}

// PriceQuote is the computed price of a regime for one tier
type PriceQuote struct {
	Tier            SubscriptionTier `json:"tier"`
	OriginalPrice   decimal.Decimal  `json:"original_price"`
	DiscountedPrice decimal.Decimal  `json:"discounted_price"`
	SavingsAmount   decimal.Decimal  `json:"savings_amount"`
	DiscountPercent int32            `json:"discount_percent"`
	DiscountReason  *string          `json:"discount_reason,omitempty"`
	HasDiscount     bool             `json:"has_discount"`
}

// UpsellComparison describes whether moving to the next tier is cheaper
type UpsellComparison struct {
	CurrentTier    SubscriptionTier `json:"current_tier"`
	NextTier       SubscriptionTier `json:"next_tier,omitempty"`
	CurrentPrice   decimal.Decimal  `json:"current_price"`
	NextPrice      decimal.Decimal  `json:"next_price"`
	SavingsAmount  decimal.Decimal  `json:"savings_amount"`
	SavingsPercent int32            `json:"savings_percent"`
	Available      bool             `json:"available"`
}
