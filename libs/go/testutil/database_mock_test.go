package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/regime-co/regime-api/libs/go/config"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDatabase_RegimeQuotes(t *testing.T) {
	ctx := context.Background()
	mockDB := NewMockDatabase(t)
	regime := CreateTestRegime("Clear Skin", "clear-skin")
	svc := services.NewRegimeService(mockDB.Querier, services.NewPricingService())

	tests := []struct {
		tier       business.SubscriptionTier
		want       int64
		wantReason string
	}{
		{tier: business.TierOneTime, want: 2999},
		{tier: business.TierThreeMonths, want: 7199, wantReason: "Quarterly saver"},
		{tier: business.TierSixMonths, want: 11999},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			mockDB.ExpectRegime(&regime)

			quote, err := svc.Quote(ctx, regime.ID, tt.tier)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(quote.DiscountedPrice), quote.DiscountedPrice.String())
			if tt.wantReason == "" {
				assert.Nil(t, quote.DiscountReason)
				return
			}
			require.NotNil(t, quote.DiscountReason)
			assert.Equal(t, tt.wantReason, *quote.DiscountReason)
		})
	}

	t.Run("missing regime", func(t *testing.T) {
		mockDB.ExpectRegime(nil)

		_, err := svc.Quote(ctx, regime.ID, business.TierOneTime)
		assert.ErrorIs(t, err, services.ErrRegimeNotFound)
	})
}

func TestMockDatabase_Storefront(t *testing.T) {
	ctx := context.Background()
	mockDB := NewMockDatabase(t)
	first := CreateTestRegime("Clear Skin", "clear-skin")
	second := CreateTestRegime("Glow Essentials", "glow-essentials")
	svc := services.NewRegimeService(mockDB.Querier, services.NewPricingService())

	mockDB.ExpectActiveRegimes(first, second)
	regimes, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, regimes, 2)
	assert.Equal(t, []string{"Cleanser", "Toner", "Serum", "Moisturiser"}, regimes[0].Items)

	mockDB.ExpectRegimeBySlug(second)
	got, err := svc.GetBySlug(ctx, "Glow-Essentials")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestMockDatabase_OrderConfirmation(t *testing.T) {
	ctx := context.Background()
	mockDB := NewMockDatabase(t)
	order := CreateTestOrder("RG-20261019-7KQ2MX", "processing", "card", "paid")
	svc := services.NewOrderService(mockDB.Querier, services.NewOrderLifecycleService(),
		mocks.NewMockNotificationDispatcher(mockDB.Controller()))

	mockDB.ExpectOrderByNumber(order.OrderNumber, &order)
	view, err := svc.GetByNumber(ctx, "rg-20261019-7kq2mx")
	require.NoError(t, err)
	assert.Equal(t, "Lahore", view.Order.Shipping.City)
	assert.True(t, decimal.NewFromInt(2999).Equal(view.Order.Total))

	mockDB.ExpectOrderByNumber("RG-20261019-NOPE22", nil)
	_, err = svc.GetByNumber(ctx, "RG-20261019-NOPE22")
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestMockDatabase_DiscountCodes(t *testing.T) {
	ctx := context.Background()
	mockDB := NewMockDatabase(t)
	svc := services.NewDiscountService(mockDB.Querier)

	welcome := CreateTestDiscountCode("WELCOME10", 10, false)
	mockDB.ExpectDiscountCode("WELCOME10", &welcome)
	got, err := svc.ValidateCode(ctx, " welcome10 ")
	require.NoError(t, err)
	assert.Equal(t, int32(10), got.PercentageOff)

	used := CreateTestDiscountCode("ONCEONLY", 15, false)
	used.UsageCount = 1
	mockDB.ExpectDiscountCode("ONCEONLY", &used)
	_, err = svc.ValidateCode(ctx, "onceonly")
	assert.ErrorIs(t, err, services.ErrDiscountExhausted)

	mockDB.ExpectDiscountCode("MISSING", nil)
	_, err = svc.ValidateCode(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrDiscountNotFound)
}

func TestSetupTestEnvironment(t *testing.T) {
	SetupTestEnvironment(t)

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, config.SessionBackendMemory, cfg.SessionBackend)
}

func TestAssertStatusCode(t *testing.T) {
	c, recorder := TestContext(t)
	c.JSON(http.StatusAccepted, map[string]string{"status": "queued"})

	AssertStatusCode(t, recorder, http.StatusAccepted)
}
