package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"go.uber.org/zap"
)

var (
	ErrDiscountNotFound      = errors.New("discount code not found")
	ErrDiscountInactive      = errors.New("discount code is not active")
	ErrDiscountExhausted     = errors.New("discount code has already been used")
	ErrDiscountLocked        = errors.New("discount code has been used and can no longer be changed")
	ErrDiscountInUse         = errors.New("discount code has been used and can only be deactivated")
	ErrDiscountCodeExists    = errors.New("discount code already exists")
	ErrInvalidDiscountCode   = errors.New("discount code must be 3 to 50 characters")
	ErrInvalidDiscountAmount = errors.New("percentage off must be between 1 and 100")
)

// DiscountService manages discount codes and validates them at checkout
type DiscountService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewDiscountService creates a new discount service
func NewDiscountService(queries db.Querier) *DiscountService {
	return &DiscountService{
		queries: queries,
		logger:  logger.Log,
	}
}

// List returns every discount code, newest first
func (s *DiscountService) List(ctx context.Context) ([]business.DiscountCode, error) {
	rows, err := s.queries.ListDiscountCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list discount codes: %w", err)
	}
	codes := make([]business.DiscountCode, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, helpers.DiscountCodeFromRow(row))
	}
	return codes, nil
}

// Get returns a discount code by id
func (s *DiscountService) Get(ctx context.Context, id uuid.UUID) (*business.DiscountCode, error) {
	row, err := s.queries.GetDiscountCode(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to get discount code: %w", err)
	}
	code := helpers.DiscountCodeFromRow(row)
	return &code, nil
}

// Create adds a new discount code. Codes are stored upper-cased.
func (s *DiscountService) Create(ctx context.Context, p params.DiscountCodeParams) (*business.DiscountCode, error) {
	code, err := validateDiscountParams(p)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.CreateDiscountCode(ctx, db.CreateDiscountCodeParams{
		Code:          code,
		PercentageOff: p.PercentageOff,
		Description:   helpers.StringPtrToText(p.Description),
		IsActive:      p.IsActive,
		IsRecurring:   p.IsRecurring,
	})
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, ErrDiscountCodeExists
		}
		return nil, fmt.Errorf("failed to create discount code: %w", err)
	}

	s.logger.Info("discount code created",
		zap.String("discount_id", row.ID.String()),
		zap.String("code", row.Code),
		zap.Int32("percentage_off", row.PercentageOff))

	created := helpers.DiscountCodeFromRow(row)
	return &created, nil
}

// Update edits a discount code. A single-use code that has been redeemed is locked.
func (s *DiscountService) Update(ctx context.Context, id uuid.UUID, p params.DiscountCodeParams) (*business.DiscountCode, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.CanEdit() {
		return nil, ErrDiscountLocked
	}

	code, err := validateDiscountParams(p)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.UpdateDiscountCode(ctx, db.UpdateDiscountCodeParams{
		ID:            id,
		Code:          code,
		PercentageOff: p.PercentageOff,
		Description:   helpers.StringPtrToText(p.Description),
		IsRecurring:   p.IsRecurring,
	})
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, ErrDiscountCodeExists
		}
		return nil, fmt.Errorf("failed to update discount code: %w", err)
	}

	updated := helpers.DiscountCodeFromRow(row)
	return &updated, nil
}

// Delete removes a discount code that has never been used
func (s *DiscountService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !existing.CanDelete() {
		return ErrDiscountInUse
	}

	if err := s.queries.DeleteDiscountCode(ctx, id); err != nil {
		return fmt.Errorf("failed to delete discount code: %w", err)
	}

	s.logger.Info("discount code deleted", zap.String("discount_id", id.String()), zap.String("code", existing.Code))
	return nil
}

// SetActive activates or deactivates a code. A redeemed single-use code cannot come back.
func (s *DiscountService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*business.DiscountCode, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if active && !existing.IsActive && !existing.CanReactivate() {
		return nil, ErrDiscountLocked
	}
	if existing.IsActive == active {
		return existing, nil
	}

	row, err := s.queries.SetDiscountCodeActive(ctx, db.SetDiscountCodeActiveParams{ID: id, IsActive: active})
	if err != nil {
		return nil, fmt.Errorf("failed to update discount code: %w", err)
	}

	updated := helpers.DiscountCodeFromRow(row)
	return &updated, nil
}

// ValidateCode looks up a customer-entered code and checks it can be applied
func (s *DiscountService) ValidateCode(ctx context.Context, code string) (*business.DiscountCode, error) {
	normalized := helpers.NormalizeCode(code)
	if normalized == "" {
		return nil, ErrDiscountNotFound
	}

	row, err := s.queries.GetDiscountCodeByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to look up discount code: %w", err)
	}

	discount := helpers.DiscountCodeFromRow(row)
	if err := checkRedeemable(discount); err != nil {
		return nil, err
	}
	return &discount, nil
}

// RecordUsage counts one redemption of a code inside the caller's transaction.
// A single-use code whose count goes past one was taken by a concurrent order.
func (s *DiscountService) RecordUsage(ctx context.Context, q db.Querier, id uuid.UUID) (*business.DiscountCode, error) {
	if q == nil {
		q = s.queries
	}
	row, err := q.IncrementDiscountCodeUsage(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to record discount usage: %w", err)
	}

	discount := helpers.DiscountCodeFromRow(row)
	if !discount.IsActive {
		return nil, ErrDiscountInactive
	}
	if !discount.IsRecurring && discount.UsageCount > 1 {
		return nil, ErrDiscountExhausted
	}
	return &discount, nil
}

func checkRedeemable(discount business.DiscountCode) error {
	if !discount.IsActive {
		return ErrDiscountInactive
	}
	if !discount.IsRedeemable() {
		return ErrDiscountExhausted
	}
	return nil
}

func validateDiscountParams(p params.DiscountCodeParams) (string, error) {
	code := helpers.NormalizeCode(p.Code)
	if len(code) < 3 || len(code) > 50 {
		return "", ErrInvalidDiscountCode
	}
	if p.PercentageOff < 1 || p.PercentageOff > 100 {
		return "", ErrInvalidDiscountAmount
	}
	return code, nil
}
