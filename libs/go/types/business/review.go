package business

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer rating of a regime. New reviews wait for admin approval.
type Review struct {
	ID           uuid.UUID `json:"id"`
	RegimeID     uuid.UUID `json:"regime_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewSummary is the public view of a regime's approved reviews
type ReviewSummary struct {
	RegimeID      uuid.UUID `json:"regime_id"`
	Reviews       []Review  `json:"reviews"`
	Count         int       `json:"count"`
	AverageRating float64   `json:"average_rating"`
}

// Subscriber is a newsletter sign-up
type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
