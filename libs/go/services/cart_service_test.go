package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cartFixture struct {
	svc       *services.CartService
	regimes   *mocks.MockRegimeService
	discounts *mocks.MockDiscountService
	regime    business.Regime
}

func newCartFixture(t *testing.T) cartFixture {
	ctrl := gomock.NewController(t)
	regime := sampleRegime()
	regime.ID = uuid.New()
	regime.Active = true

	regimes := mocks.NewMockRegimeService(ctrl)
	regimes.EXPECT().Get(gomock.Any(), regime.ID).Return(&regime, nil).AnyTimes()
	discounts := mocks.NewMockDiscountService(ctrl)

	store := services.NewMemorySessionStore(time.Hour, time.Hour)
	return cartFixture{
		svc:       services.NewCartService(store, regimes, services.NewPricingService(), discounts),
		regimes:   regimes,
		discounts: discounts,
		regime:    regime,
	}
}

func TestCartService_AddMergesLines(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 1})
	require.NoError(t, err)
	summary, err := f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, int32(3), summary.Lines[0].Quantity)
	assert.Equal(t, int32(3), summary.ItemCount)
	// 299 at 25% off is 224, three of them
	assert.True(t, summary.Subtotal.Equal(dec(672)), summary.Subtotal.String())
	assert.True(t, summary.Total.Equal(dec(672)))
	assert.Equal(t, "PKR", summary.Currency)

	summary, err = f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierSixMonths, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, summary.Lines, 2)
	// 1499 at 10% off is 1349.1, rounded to 1349
	assert.True(t, summary.Subtotal.Equal(dec(672+1349)), summary.Subtotal.String())
}

func TestCartService_ItemRules(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)

	_, err := f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: "yearly", Quantity: 1})
	assert.ErrorIs(t, err, services.ErrInvalidTier)

	_, err = f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 0})
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 8})
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 3})
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = f.svc.UpdateItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierSixMonths, Quantity: 2})
	assert.ErrorIs(t, err, services.ErrCartItemNotFound)

	summary, err := f.svc.UpdateItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(2), summary.ItemCount)

	summary, err = f.svc.UpdateItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.True(t, summary.Total.IsZero())

	_, err = f.svc.RemoveItem(ctx, "s1", f.regime.ID, business.TierOneTime)
	assert.ErrorIs(t, err, services.ErrCartItemNotFound)

	_, err = f.svc.Summary(ctx, "")
	assert.ErrorIs(t, err, services.ErrMissingSessionID)
}

func TestCartService_InactiveRegime(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	id := uuid.New()
	regimes := mocks.NewMockRegimeService(ctrl)
	regimes.EXPECT().Get(ctx, id).Return(&business.Regime{ID: id}, nil)

	svc := services.NewCartService(services.NewMemorySessionStore(time.Hour, time.Hour), regimes, services.NewPricingService(), nil)
	_, err := svc.AddItem(ctx, "s1", business.CartItem{RegimeID: id, Tier: business.TierOneTime, Quantity: 1})
	assert.ErrorIs(t, err, services.ErrRegimeInactive)
}

func TestCartService_Discounts(t *testing.T) {
	ctx := context.Background()
	f := newCartFixture(t)
	discountID := uuid.New()

	_, err := f.svc.ApplyDiscount(ctx, "s1", "EID10")
	assert.ErrorIs(t, err, services.ErrCartEmpty)

	_, err = f.svc.AddItem(ctx, "s1", business.CartItem{RegimeID: f.regime.ID, Tier: business.TierOneTime, Quantity: 1})
	require.NoError(t, err)

	f.discounts.EXPECT().ValidateCode(ctx, "eid10").Return(nil, services.ErrDiscountNotFound)
	_, err = f.svc.ApplyDiscount(ctx, "s1", "eid10")
	assert.ErrorIs(t, err, services.ErrDiscountNotFound)

	code := &business.DiscountCode{ID: discountID, Code: "EID10", PercentageOff: 10, IsActive: true}
	f.discounts.EXPECT().ValidateCode(ctx, "eid10 ").Return(code, nil)
	f.discounts.EXPECT().ValidateCode(ctx, "EID10").Return(code, nil)

	summary, err := f.svc.ApplyDiscount(ctx, "s1", "eid10 ")
	require.NoError(t, err)
	require.NotNil(t, summary.DiscountCode)
	assert.Equal(t, "EID10", *summary.DiscountCode)
	assert.Equal(t, discountID, *summary.DiscountCodeID)
	// 10% of 224 is 22.4, the total rounds to 202
	assert.True(t, summary.Total.Equal(dec(202)), summary.Total.String())
	assert.True(t, summary.DiscountAmount.Equal(dec(22)), summary.DiscountAmount.String())

	// a code deactivated after it was applied silently drops off
	f.discounts.EXPECT().ValidateCode(ctx, "EID10").Return(nil, services.ErrDiscountInactive)
	summary, err = f.svc.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, summary.DiscountCode)
	assert.True(t, summary.Total.Equal(dec(224)))

	summary, err = f.svc.RemoveDiscount(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, summary.DiscountCode)

	require.NoError(t, f.svc.Clear(ctx, "s1"))
	cart, err := f.svc.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_DropsMissingRegimes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gone := uuid.New()
	regimes := mocks.NewMockRegimeService(ctrl)
	regimes.EXPECT().Get(ctx, gone).Return(nil, services.ErrRegimeNotFound)

	svc := services.NewCartService(nil, regimes, services.NewPricingService(), nil)
	summary, err := svc.Summarize(ctx, business.Cart{Items: []business.CartItem{{RegimeID: gone, Tier: business.TierOneTime, Quantity: 1}}})
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.True(t, summary.Subtotal.IsZero())
}
