package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/api/requests"
)

// ReviewHandler collects and moderates regime reviews
type ReviewHandler struct {
	reviewService interfaces.ReviewService
}

// NewReviewHandler creates a handler with interface dependencies
func NewReviewHandler(reviewService interfaces.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Use types from the centralized packages
type CreateReviewRequest = requests.CreateReviewRequest

// ListRegimeReviews godoc
// @Summary List reviews of a regime
// @Description Returns approved reviews and their average rating
// @Tags reviews
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Success 200 {object} business.ReviewSummary
// @Failure 400 {object} ErrorResponse
// @Router /regimes/{regime_id}/reviews [get]
func (h *ReviewHandler) ListRegimeReviews(c *gin.Context) {
	regimeID, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	summary, err := h.reviewService.ListApproved(c.Request.Context(), regimeID)
	if err != nil {
		handleServiceError(c, err, "Failed to list reviews")
		return
	}
	sendSuccess(c, http.StatusOK, summary)
}

// CreateReview godoc
// @Summary Review a regime
// @Description Submits a review. It is shown once an admin approves it.
// @Tags reviews
// @Accept json
// @Produce json
// @Param regime_id path string true "Regime ID"
// @Param review body CreateReviewRequest true "Review"
// @Success 201 {object} business.Review
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /regimes/{regime_id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	regimeID, ok := parseUUIDParam(c, "id", "regime")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	review, err := h.reviewService.Submit(c.Request.Context(), params.SubmitReviewParams{
		RegimeID:     regimeID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to submit review")
		return
	}
	sendSuccess(c, http.StatusCreated, review)
}

// ListReviews godoc
// @Summary List all reviews
// @Description Lists approved and pending reviews for moderation
// @Tags admin
// @Produce json
// @Param limit query int false "Number of items per page (default 20, max 100)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} PaginatedResponse
// @Security ApiKeyAuth
// @Router /admin/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	limit, page, err := validatePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	reviews, total, err := h.reviewService.List(c.Request.Context(), params.ListParams{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		handleServiceError(c, err, "Failed to list reviews")
		return
	}
	sendPaginatedSuccess(c, reviews, page, limit, total)
}

// ApproveReview godoc
// @Summary Approve a review
// @Tags admin
// @Produce json
// @Param review_id path string true "Review ID"
// @Success 200 {object} business.Review
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reviews/{review_id}/approve [patch]
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "review")
	if !ok {
		return
	}
	review, err := h.reviewService.Approve(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Failed to approve review")
		return
	}
	sendSuccess(c, http.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags admin
// @Param review_id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reviews/{review_id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "review")
	if !ok {
		return
	}
	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Failed to delete review")
		return
	}
	c.Status(http.StatusNoContent)
}
