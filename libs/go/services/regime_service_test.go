package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func regimeRow(id uuid.UUID, active bool) db.Regime {
	return db.Regime{
		ID:                    id,
		Name:                  "Glow Essentials",
		Slug:                  "glow-essentials",
		StepCount:             5,
		Items:                 []byte(`["Cleanser","Serum"]`),
		Active:                active,
		PriceOneTime:          helpers.DecimalToNumeric(dec(299)),
		DiscountOneTime:       pgtype.Int4{Int32: 25, Valid: true},
		DiscountReasonOneTime: pgtype.Text{String: "Eid Sale", Valid: true},
		PriceThreeMonths:      helpers.DecimalToNumeric(dec(799)),
		PriceSixMonths:        helpers.DecimalToNumeric(dec(1499)),
		DiscountSixMonths:     pgtype.Int4{Int32: 10, Valid: true},
	}
}

func regimeParams() params.RegimeParams {
	r := sampleRegime()
	return params.RegimeParams{
		Name:        "Glow Essentials",
		Slug:        "glow-essentials",
		StepCount:   5,
		Items:       []string{" Cleanser ", "Serum", "", "Serum"},
		Active:      true,
		OneTime:     r.OneTime,
		ThreeMonths: r.ThreeMonths,
		SixMonths:   r.SixMonths,
	}
}

func TestRegimeService_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("maps row", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().GetRegime(ctx, id).Return(regimeRow(id, true), nil)

		got, err := services.NewRegimeService(q, services.NewPricingService()).Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cleanser", "Serum"}, got.Items)
		assert.True(t, got.OneTime.Price.Equal(dec(299)))
		require.NotNil(t, got.OneTime.DiscountPercent)
		assert.Equal(t, int32(25), *got.OneTime.DiscountPercent)
		assert.Nil(t, got.ThreeMonths.DiscountPercent)
	})

	t.Run("not found", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().GetRegime(ctx, id).Return(db.Regime{}, pgx.ErrNoRows)

		_, err := services.NewRegimeService(q, services.NewPricingService()).Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrRegimeNotFound)
	})

	t.Run("slug lookup is case insensitive", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().GetRegimeBySlug(ctx, "glow-essentials").Return(regimeRow(id, true), nil)

		got, err := services.NewRegimeService(q, services.NewPricingService()).GetBySlug(ctx, "Glow-Essentials")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})
}

func TestRegimeService_QuoteAndUpsell(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	q := mocks.NewMockQuerierForTest(t)
	q.EXPECT().GetRegime(ctx, id).Return(regimeRow(id, true), nil).Times(2)
	svc := services.NewRegimeService(q, services.NewPricingService())

	quote, err := svc.Quote(ctx, id, business.TierOneTime)
	require.NoError(t, err)
	assert.True(t, quote.DiscountedPrice.Equal(dec(224)), quote.DiscountedPrice.String())
	assert.True(t, quote.HasDiscount)

	upsell, err := svc.Upsell(ctx, id, business.TierThreeMonths)
	require.NoError(t, err)
	assert.Equal(t, business.TierSixMonths, upsell.NextTier)
}

func TestRegimeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("items are trimmed and deduplicated", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().CreateRegime(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateRegimeParams) (db.Regime, error) {
				var items []string
				require.NoError(t, json.Unmarshal(arg.Items, &items))
				assert.Equal(t, []string{"Cleanser", "Serum"}, items)
				assert.Equal(t, int32(5), arg.StepCount)
				row := regimeRow(uuid.New(), true)
				row.Items = arg.Items
				return row, nil
			})

		got, err := services.NewRegimeService(q, services.NewPricingService()).Create(ctx, regimeParams())
		require.NoError(t, err)
		assert.Equal(t, "glow-essentials", got.Slug)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().CreateRegime(ctx, gomock.Any()).Return(db.Regime{}, &pgconn.PgError{Code: "23505"})

		_, err := services.NewRegimeService(q, services.NewPricingService()).Create(ctx, regimeParams())
		assert.ErrorIs(t, err, services.ErrRegimeSlugExists)
	})

	invalid := []struct {
		name   string
		mutate func(p *params.RegimeParams)
	}{
		{"blank name", func(p *params.RegimeParams) { p.Name = "  " }},
		{"bad slug", func(p *params.RegimeParams) { p.Slug = "Glow Essentials" }},
		{"step count", func(p *params.RegimeParams) { p.StepCount = 4 }},
		{"negative price", func(p *params.RegimeParams) { p.ThreeMonths.Price = dec(-1) }},
		{"discount over 100", func(p *params.RegimeParams) { p.SixMonths.DiscountPercent = int32Ptr(120) }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			q := mocks.NewMockQuerierForTest(t)
			p := regimeParams()
			tt.mutate(&p)

			_, err := services.NewRegimeService(q, services.NewPricingService()).Create(ctx, p)
			assert.ErrorIs(t, err, services.ErrInvalidRegimeInput)
		})
	}
}

func TestRegimeService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("list paginates", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().ListRegimes(ctx, db.ListRegimesParams{Limit: 10, Offset: 20}).Return([]db.Regime{regimeRow(id, false)}, nil)
		q.EXPECT().CountRegimes(ctx).Return(int64(21), nil)

		got, total, err := services.NewRegimeService(q, services.NewPricingService()).List(ctx, params.ListParams{Limit: 10, Offset: 20})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, int64(21), total)
	})

	t.Run("delete of missing regime", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().GetRegime(ctx, id).Return(db.Regime{}, pgx.ErrNoRows)

		err := services.NewRegimeService(q, services.NewPricingService()).Delete(ctx, id)
		assert.ErrorIs(t, err, services.ErrRegimeNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		q := mocks.NewMockQuerierForTest(t)
		q.EXPECT().GetRegime(ctx, id).Return(regimeRow(id, true), nil)
		q.EXPECT().DeleteRegime(ctx, id).Return(nil)

		require.NoError(t, services.NewRegimeService(q, services.NewPricingService()).Delete(ctx, id))
	})
}
