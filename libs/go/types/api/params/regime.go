package params

import "github.com/regime-co/regime-api/libs/go/types/business"

// RegimeParams contains the editable fields of a regime
type RegimeParams struct {
	Name        string
	Slug        string
	Description string
	ImageURL    string
	StepCount   int32
	Items       []string
	Active      bool
	OneTime     business.TierPricing
	ThreeMonths business.TierPricing
	SixMonths   business.TierPricing
}

// ListParams is plain limit/offset paging
type ListParams struct {
	Limit  int32
	Offset int32
}

// ListOrdersParams filters the admin order list
type ListOrdersParams struct {
	Status *string
	Limit  int32
	Offset int32
}
