package requests

// CartItemRequest adds a regime to the cart or changes its quantity
type CartItemRequest struct {
	RegimeID string `json:"regime_id" binding:"required,uuid"`
	Tier     string `json:"tier" binding:"required,oneof=one-time 3-months 6-months"`
	Quantity int32  `json:"quantity" binding:"min=0,max=20"`
}

// RemoveCartItemRequest removes one line from the cart
type RemoveCartItemRequest struct {
	RegimeID string `json:"regime_id" binding:"required,uuid"`
	Tier     string `json:"tier" binding:"required,oneof=one-time 3-months 6-months"`
}

// ApplyDiscountRequest applies a discount code to the cart
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required,max=50"`
}
