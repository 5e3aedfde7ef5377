package business

import (
	"time"

	"github.com/google/uuid"
)

// DiscountCode is an admin-managed checkout code
type DiscountCode struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	PercentageOff int32     `json:"percentage_off"`
	Description   *string   `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	IsRecurring   bool      `json:"is_recurring"`
	UsageCount    int32     `json:"usage_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d DiscountCode) used() bool {
	return d.UsageCount > 0
}

// CanEdit is false once a single-use code has been redeemed
func (d DiscountCode) CanEdit() bool {
	return d.IsRecurring || !d.used()
}

// CanDelete is false for any code that has been used, recurring or not
func (d DiscountCode) CanDelete() bool {
	return !d.used()
}

// CanReactivate is false for an inactive single-use code that has been redeemed
func (d DiscountCode) CanReactivate() bool {
	return d.IsRecurring || !d.used()
}

// CanDeactivate is always allowed for active codes
func (d DiscountCode) CanDeactivate() bool {
	return d.IsActive
}

// IsRedeemable reports whether the code may be applied to a new order
func (d DiscountCode) IsRedeemable() bool {
	if !d.IsActive {
		return false
	}
	return d.IsRecurring || !d.used()
}
