package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

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

var (
	ErrRegimeNotFound     = errors.New("regime not found")
	ErrRegimeInactive     = errors.New("regime is not available")
	ErrRegimeSlugExists   = errors.New("a regime with this slug already exists")
	ErrInvalidRegimeInput = errors.New("invalid regime")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// RegimeService serves the regime catalogue to the storefront and the admin
type RegimeService struct {
	queries db.Querier
	pricing interfaces.PricingService
	logger  *zap.Logger
}

// NewRegimeService creates a new regime service
func NewRegimeService(queries db.Querier, pricing interfaces.PricingService) *RegimeService {
	return &RegimeService{
		queries: queries,
		pricing: pricing,
		logger:  logger.Log,
	}
}

// ListActive returns the regimes shown in the storefront
func (s *RegimeService) ListActive(ctx context.Context) ([]business.Regime, error) {
	rows, err := s.queries.ListActiveRegimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regimes: %w", err)
	}
	return helpers.RegimesFromRows(rows)
}

// Get returns a regime by id
func (s *RegimeService) Get(ctx context.Context, id uuid.UUID) (*business.Regime, error) {
	row, err := s.queries.GetRegime(ctx, id)
	if err != nil {
		return nil, regimeLookupError(err)
	}
	regime, err := helpers.RegimeFromRow(row)
	if err != nil {
		return nil, err
	}
	return &regime, nil
}

// GetBySlug returns a regime by its URL slug
func (s *RegimeService) GetBySlug(ctx context.Context, slug string) (*business.Regime, error) {
	row, err := s.queries.GetRegimeBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, regimeLookupError(err)
	}
	regime, err := helpers.RegimeFromRow(row)
	if err != nil {
		return nil, err
	}
	return &regime, nil
}

// Quote prices one tier of a regime
func (s *RegimeService) Quote(ctx context.Context, id uuid.UUID, tier business.SubscriptionTier) (*business.PriceQuote, error) {
	regime, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	quote := s.pricing.CalculatePrice(*regime, tier)
	return &quote, nil
}

// Upsell compares a tier of a regime against the next one up
func (s *RegimeService) Upsell(ctx context.Context, id uuid.UUID, tier business.SubscriptionTier) (*business.UpsellComparison, error) {
	regime, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	comparison := s.pricing.CompareUpsell(*regime, tier)
	return &comparison, nil
}

// List returns all regimes for the admin, paginated
func (s *RegimeService) List(ctx context.Context, p params.ListParams) ([]business.Regime, int64, error) {
	rows, err := s.queries.ListRegimes(ctx, db.ListRegimesParams{Limit: p.Limit, Offset: p.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list regimes: %w", err)
	}
	total, err := s.queries.CountRegimes(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count regimes: %w", err)
	}
	regimes, err := helpers.RegimesFromRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return regimes, total, nil
}

// Create adds a regime
func (s *RegimeService) Create(ctx context.Context, p params.RegimeParams) (*business.Regime, error) {
	if err := validateRegimeParams(p); err != nil {
		return nil, err
	}
	items, err := json.Marshal(normalizeItems(p.Items))
	if err != nil {
		return nil, fmt.Errorf("failed to encode regime items: %w", err)
	}

	row, err := s.queries.CreateRegime(ctx, db.CreateRegimeParams{
		Name:                      strings.TrimSpace(p.Name),
		Slug:                      p.Slug,
		Description:               helpers.StringToNullableText(p.Description),
		ImageUrl:                  helpers.StringToNullableText(p.ImageURL),
		StepCount:                 p.StepCount,
		Items:                     items,
		Active:                    p.Active,
		PriceOneTime:              helpers.DecimalToNumeric(p.OneTime.Price),
		DiscountOneTime:           helpers.Int32PtrToInt4(p.OneTime.DiscountPercent),
		DiscountReasonOneTime:     helpers.StringPtrToText(p.OneTime.DiscountReason),
		PriceThreeMonths:          helpers.DecimalToNumeric(p.ThreeMonths.Price),
		DiscountThreeMonths:       helpers.Int32PtrToInt4(p.ThreeMonths.DiscountPercent),
		DiscountReasonThreeMonths: helpers.StringPtrToText(p.ThreeMonths.DiscountReason),
		PriceSixMonths:            helpers.DecimalToNumeric(p.SixMonths.Price),
		DiscountSixMonths:         helpers.Int32PtrToInt4(p.SixMonths.DiscountPercent),
		DiscountReasonSixMonths:   helpers.StringPtrToText(p.SixMonths.DiscountReason),
	})
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, ErrRegimeSlugExists
		}
		return nil, fmt.Errorf("failed to create regime: %w", err)
	}

	s.logger.Info("regime created", zap.String("regime_id", row.ID.String()), zap.String("slug", row.Slug))
	regime, err := helpers.RegimeFromRow(row)
	if err != nil {
		return nil, err
	}
	return &regime, nil
}

// Update replaces the editable fields of a regime
func (s *RegimeService) Update(ctx context.Context, id uuid.UUID, p params.RegimeParams) (*business.Regime, error) {
	if err := validateRegimeParams(p); err != nil {
		return nil, err
	}
	items, err := json.Marshal(normalizeItems(p.Items))
	if err != nil {
		return nil, fmt.Errorf("failed to encode regime items: %w", err)
	}

	row, err := s.queries.UpdateRegime(ctx, db.UpdateRegimeParams{
		ID:                        id,
		Name:                      strings.TrimSpace(p.Name),
		Slug:                      p.Slug,
		Description:               helpers.StringToNullableText(p.Description),
		ImageUrl:                  helpers.StringToNullableText(p.ImageURL),
		StepCount:                 p.StepCount,
		Items:                     items,
		Active:                    p.Active,
		PriceOneTime:              helpers.DecimalToNumeric(p.OneTime.Price),
		DiscountOneTime:           helpers.Int32PtrToInt4(p.OneTime.DiscountPercent),
		DiscountReasonOneTime:     helpers.StringPtrToText(p.OneTime.DiscountReason),
		PriceThreeMonths:          helpers.DecimalToNumeric(p.ThreeMonths.Price),
		DiscountThreeMonths:       helpers.Int32PtrToInt4(p.ThreeMonths.DiscountPercent),
		DiscountReasonThreeMonths: helpers.StringPtrToText(p.ThreeMonths.DiscountReason),
		PriceSixMonths:            helpers.DecimalToNumeric(p.SixMonths.Price),
		DiscountSixMonths:         helpers.Int32PtrToInt4(p.SixMonths.DiscountPercent),
		DiscountReasonSixMonths:   helpers.StringPtrToText(p.SixMonths.DiscountReason),
	})
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, ErrRegimeSlugExists
		}
		return nil, regimeLookupError(err)
	}

	regime, err := helpers.RegimeFromRow(row)
	if err != nil {
		return nil, err
	}
	return &regime, nil
}

// SetActive shows or hides a regime in the storefront
func (s *RegimeService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*business.Regime, error) {
	row, err := s.queries.SetRegimeActive(ctx, db.SetRegimeActiveParams{ID: id, Active: active})
	if err != nil {
		return nil, regimeLookupError(err)
	}
	regime, err := helpers.RegimeFromRow(row)
	if err != nil {
		return nil, err
	}
	return &regime, nil
}

// Delete removes a regime
func (s *RegimeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.queries.DeleteRegime(ctx, id); err != nil {
		return fmt.Errorf("failed to delete regime: %w", err)
	}
	s.logger.Info("regime deleted", zap.String("regime_id", id.String()))
	return nil
}

func regimeLookupError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrRegimeNotFound
	}
	return fmt.Errorf("failed to get regime: %w", err)
}

func validateRegimeParams(p params.RegimeParams) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRegimeInput)
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("%w: slug must be lowercase words joined by hyphens", ErrInvalidRegimeInput)
	}
	if !business.ValidStepCount(p.StepCount) {
		return fmt.Errorf("%w: step count must be 3, 5 or 7", ErrInvalidRegimeInput)
	}

	tiers := map[business.SubscriptionTier]business.TierPricing{
		business.TierOneTime:     p.OneTime,
		business.TierThreeMonths: p.ThreeMonths,
		business.TierSixMonths:   p.SixMonths,
	}
	for tier, pricing := range tiers {
		if pricing.Price.IsNegative() {
			return fmt.Errorf("%w: %s price must not be negative", ErrInvalidRegimeInput, tier)
		}
		if d := pricing.DiscountPercent; d != nil && (*d < 0 || *d > 100) {
			return fmt.Errorf("%w: %s discount must be between 0 and 100", ErrInvalidRegimeInput, tier)
		}
	}
	return nil
}

func normalizeItems(items []string) []string {
	trimmed := lo.Map(items, func(item string, _ int) string { return strings.TrimSpace(item) })
	return lo.Uniq(lo.Compact(trimmed))
}
