package responses

import "github.com/regime-co/regime-api/libs/go/types/business"

// RegimeResponse is a regime with its price quote for every tier
type RegimeResponse struct {
	business.Regime
	Quotes []business.PriceQuote `json:"quotes"`
}

// RegimeFormResponse is the wizard state plus the step the customer is on
type RegimeFormResponse struct {
	State  business.RegimeFormState `json:"state"`
	Step   business.FormStep        `json:"step"`
	Steps  []business.FormStep      `json:"steps"`
	Errors []business.FieldError    `json:"errors,omitempty"`
}

// OrderStatusResponse presents a raw status value
type OrderStatusResponse struct {
	Lifecycle business.LifecycleBundle `json:"lifecycle"`
	Timeline  business.Timeline        `json:"timeline"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string            `json:"status"`
	Stage   string            `json:"stage"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}
