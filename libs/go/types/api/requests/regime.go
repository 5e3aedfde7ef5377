package requests

import "github.com/shopspring/decimal"

// TierPricingRequest is the price schedule of one tier
type TierPricingRequest struct {
	Price           decimal.Decimal `json:"price" swaggertype:"number"`
	DiscountPercent *int32          `json:"discount_percent,omitempty"`
	DiscountReason  *string         `json:"discount_reason,omitempty"`
}

// CreateRegimeRequest represents the request body for creating a regime
type CreateRegimeRequest struct {
	Name        string             `json:"name" binding:"required,max=120"`
	Slug        string             `json:"slug" binding:"required,max=120"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url"`
	StepCount   int32              `json:"step_count" binding:"required,oneof=3 5 7"`
	Items       []string           `json:"items"`
	Active      bool               `json:"active"`
	OneTime     TierPricingRequest `json:"one_time"`
	ThreeMonths TierPricingRequest `json:"three_months"`
	SixMonths   TierPricingRequest `json:"six_months"`
}

// UpdateRegimeRequest replaces the editable fields of a regime
type UpdateRegimeRequest = CreateRegimeRequest

// SetActiveRequest toggles visibility of a regime or discount code
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
