package requests

// CreateReviewRequest represents the request body for submitting a review
type CreateReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required,max=120"`
	Rating       int32  `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"required,max=1000"`
}

// SubscribeRequest represents the request body for a newsletter sign-up
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
