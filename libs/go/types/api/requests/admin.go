package requests

// CreateDiscountCodeRequest represents the request body for creating a discount code
type CreateDiscountCodeRequest struct {
	Code          string  `json:"code" binding:"required,min=3,max=50"`
	PercentageOff int32   `json:"percentage_off" binding:"required,min=1,max=100"`
	Description   *string `json:"description,omitempty"`
	IsRecurring   bool    `json:"is_recurring"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// UpdateDiscountCodeRequest replaces the editable fields of a discount code
type UpdateDiscountCodeRequest struct {
	Code          string  `json:"code" binding:"required,min=3,max=50"`
	PercentageOff int32   `json:"percentage_off" binding:"required,min=1,max=100"`
	Description   *string `json:"description,omitempty"`
	IsRecurring   bool    `json:"is_recurring"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped completed cancelled"`
}
