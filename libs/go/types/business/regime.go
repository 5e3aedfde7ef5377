package business

import (
	"time"

	"github.com/google/uuid"
)

// Regime is a themed skincare bundle sold under three tiers
type Regime struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url"`
	StepCount   int32       `json:"step_count"`
	Items       []string    `json:"items"`
	Active      bool        `json:"active"`
	OneTime     TierPricing `json:"one_time"`
	ThreeMonths TierPricing `json:"three_months"`
	SixMonths   TierPricing `json:"six_months"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PricingFor returns the price schedule for a tier. Unknown tiers get one-time pricing.
func (r Regime) PricingFor(tier SubscriptionTier) TierPricing {
	switch ParseSubscriptionTier(string(tier)) {
	case TierThreeMonths:
		return r.ThreeMonths
	case TierSixMonths:
		return r.SixMonths
	default:
		return r.OneTime
	}
}

// ValidStepCount reports whether n is an allowed regime size
func ValidStepCount(n int32) bool {
	return n == 3 || n == 5 || n == 7
}
