package services

import (
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PricingService computes tier prices and upsell comparisons. It holds no state and
// is safe for concurrent use.
type PricingService struct{}

// NewPricingService creates a new pricing service
func NewPricingService() *PricingService {
	return &PricingService{}
}

// CalculatePrice quotes a regime for a tier. Unknown tiers are priced as one-time,
// a missing discount counts as zero and a zero discount drops the reason.
func (s *PricingService) CalculatePrice(regime business.Regime, tier business.SubscriptionTier) business.PriceQuote {
	tier = business.ParseSubscriptionTier(string(tier))
	pricing := regime.PricingFor(tier)

	quote := s.ApplyPercent(pricing.Price, pricing.Percent(), pricing.DiscountReason)
	quote.Tier = tier
	return quote
}

// ApplyPercent discounts a bare price. The result is rounded to whole currency units,
// half away from zero. Percentages outside [0,100] are clamped.
func (s *PricingService) ApplyPercent(price decimal.Decimal, percent int32, reason *string) business.PriceQuote {
	percent = clampPercent(percent)

	quote := business.PriceQuote{
		Tier:            business.TierOneTime,
		OriginalPrice:   price,
		DiscountedPrice: price,
		SavingsAmount:   decimal.Zero,
		DiscountPercent: percent,
		HasDiscount:     percent > 0,
	}
	if !quote.HasDiscount {
		return quote
	}

	factor := hundred.Sub(decimal.NewFromInt32(percent)).Div(hundred)
	quote.DiscountedPrice = price.Mul(factor).Round(0)
	quote.SavingsAmount = price.Sub(quote.DiscountedPrice)
	if reason != nil && *reason != "" {
		r := *reason
		quote.DiscountReason = &r
	}
	return quote
}

// CompareUpsell reports whether the next tier up is strictly cheaper than the current one.
// 6-months has no next tier.
func (s *PricingService) CompareUpsell(regime business.Regime, current business.SubscriptionTier) business.UpsellComparison {
	current = business.ParseSubscriptionTier(string(current))
	currentQuote := s.CalculatePrice(regime, current)

	comparison := business.UpsellComparison{
		CurrentTier:   current,
		CurrentPrice:  currentQuote.DiscountedPrice,
		NextPrice:     decimal.Zero,
		SavingsAmount: decimal.Zero,
	}

	next, ok := current.Next()
	if !ok {
		return comparison
	}

	nextQuote := s.CalculatePrice(regime, next)
	comparison.NextTier = next
	comparison.NextPrice = nextQuote.DiscountedPrice

	if !nextQuote.DiscountedPrice.LessThan(currentQuote.DiscountedPrice) {
		return comparison
	}

	comparison.Available = true
	comparison.SavingsAmount = currentQuote.DiscountedPrice.Sub(nextQuote.DiscountedPrice)
	if currentQuote.DiscountedPrice.IsPositive() {
		comparison.SavingsPercent = int32(comparison.SavingsAmount.
			Mul(hundred).
			Div(currentQuote.DiscountedPrice).
			Round(0).
			IntPart())
	}
	return comparison
}

func clampPercent(percent int32) int32 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
