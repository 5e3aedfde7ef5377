package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reviewRouter(h *ReviewHandler) *gin.Engine {
	return newTestRouter(func(r *gin.Engine) {
		r.GET("/regimes/:id/reviews", h.ListRegimeReviews)
		r.POST("/regimes/:id/reviews", h.CreateReview)
		r.GET("/admin/reviews", h.ListReviews)
		r.PATCH("/admin/reviews/:id/approve", h.ApproveReview)
		r.DELETE("/admin/reviews/:id", h.DeleteReview)
	})
}

func TestReviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	reviews := mocks.NewMockReviewService(ctrl)
	router := reviewRouter(NewReviewHandler(reviews))
	regimePath := "/regimes/" + testRegimeID.String() + "/reviews"

	t.Run("public summary", func(t *testing.T) {
		reviews.EXPECT().ListApproved(gomock.Any(), testRegimeID).Return(&business.ReviewSummary{
			RegimeID: testRegimeID, Count: 2, AverageRating: 4.5,
		}, nil)
		w := perform(router, http.MethodGet, regimePath, nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 4.5, decodeBody[business.ReviewSummary](t, w).AverageRating)
	})

	t.Run("submit", func(t *testing.T) {
		reviews.EXPECT().Submit(gomock.Any(), params.SubmitReviewParams{
			RegimeID: testRegimeID, CustomerName: "Zara", Rating: 5, Comment: "My skin has never been calmer",
		}).Return(&business.Review{ID: testReviewID, Rating: 5}, nil)

		w := perform(router, http.MethodPost, regimePath, map[string]any{
			"customer_name": "Zara", "rating": 5, "comment": "My skin has never been calmer",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.False(t, decodeBody[business.Review](t, w).IsApproved)
	})

	t.Run("rating out of range", func(t *testing.T) {
		w := perform(router, http.MethodPost, regimePath, map[string]any{"customer_name": "Zara", "rating": 6, "comment": "x"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("review for a missing regime", func(t *testing.T) {
		reviews.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, services.ErrRegimeNotFound)
		w := perform(router, http.MethodPost, regimePath, map[string]any{"customer_name": "Zara", "rating": 4, "comment": "Nice"}, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("moderation", func(t *testing.T) {
		reviews.EXPECT().List(gomock.Any(), params.ListParams{Limit: 20, Offset: 0}).Return([]business.Review{{ID: testReviewID}}, int64(1), nil)
		w := perform(router, http.MethodGet, "/admin/reviews", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		reviews.EXPECT().Approve(gomock.Any(), testReviewID).Return(&business.Review{ID: testReviewID, IsApproved: true}, nil)
		w = perform(router, http.MethodPatch, "/admin/reviews/"+testReviewID.String()+"/approve", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		reviews.EXPECT().Delete(gomock.Any(), testReviewID).Return(services.ErrReviewNotFound)
		w = perform(router, http.MethodDelete, "/admin/reviews/"+testReviewID.String(), nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
