package params

// DiscountCodeParams contains the editable fields of a discount code
type DiscountCodeParams struct {
	Code          string
	PercentageOff int32
	Description   *string
	IsRecurring   bool
	IsActive      bool
}
