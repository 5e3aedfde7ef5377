package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var ErrReviewNotFound = errors.New("review not found")

type reviewInput struct {
	CustomerName string `json:"customer_name" validate:"required,max=120"`
	Rating       int32  `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment" validate:"required,max=1000"`
}

// ReviewService handles customer reviews of regimes
type ReviewService struct {
	queries  db.Querier
	regimes  interfaces.RegimeService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(queries db.Querier, regimes interfaces.RegimeService) *ReviewService {
	return &ReviewService{
		queries:  queries,
		regimes:  regimes,
		validate: helpers.NewValidator(),
		logger:   logger.Log,
	}
}

// Submit stores a review awaiting approval
func (s *ReviewService) Submit(ctx context.Context, p params.SubmitReviewParams) (*business.Review, error) {
	input := reviewInput{
		CustomerName: strings.TrimSpace(p.CustomerName),
		Rating:       p.Rating,
		Comment:      strings.TrimSpace(p.Comment),
	}
	if err := s.validate.Struct(input); err != nil {
		if fields := helpers.FieldErrors(err); fields != nil {
			return nil, &InvalidDetailsError{Fields: fields}
		}
		return nil, fmt.Errorf("failed to validate review: %w", err)
	}
	if _, err := s.regimes.Get(ctx, p.RegimeID); err != nil {
		return nil, err
	}

	row, err := s.queries.CreateReview(ctx, db.CreateReviewParams{
		RegimeID:     p.RegimeID,
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	s.logger.Info("review submitted",
		zap.String("review_id", row.ID.String()),
		zap.String("regime_id", p.RegimeID.String()),
		zap.Int32("rating", row.Rating))

	review := helpers.ReviewFromRow(row)
	return &review, nil
}

// ListApproved returns the approved reviews of a regime with their average rating,
// rounded to one decimal place
func (s *ReviewService) ListApproved(ctx context.Context, regimeID uuid.UUID) (*business.ReviewSummary, error) {
	rows, err := s.queries.ListApprovedReviewsByRegime(ctx, regimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	reviews := lo.Map(rows, func(row db.Review, _ int) business.Review {
		return helpers.ReviewFromRow(row)
	})

	summary := &business.ReviewSummary{RegimeID: regimeID, Reviews: reviews, Count: len(reviews)}
	if len(reviews) > 0 {
		sum := lo.SumBy(reviews, func(r business.Review) int32 { return r.Rating })
		summary.AverageRating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}
	return summary, nil
}

// List returns every review, newest first
func (s *ReviewService) List(ctx context.Context, p params.ListParams) ([]business.Review, int64, error) {
	rows, err := s.queries.ListReviews(ctx, db.ListReviewsParams{Limit: p.Limit, Offset: p.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	total, err := s.queries.CountReviews(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return lo.Map(rows, func(row db.Review, _ int) business.Review {
		return helpers.ReviewFromRow(row)
	}), total, nil
}

// Approve publishes a review
func (s *ReviewService) Approve(ctx context.Context, id uuid.UUID) (*business.Review, error) {
	row, err := s.queries.ApproveReview(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to approve review: %w", err)
	}
	review := helpers.ReviewFromRow(row)
	return &review, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.queries.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
