package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

type giftFixture struct {
	q        *mocks.MockQuerier
	tx       *mocks.MockTxRunner
	regimes  *mocks.MockRegimeService
	notifier *mocks.MockNotificationDispatcher
	regime   business.Regime
	svc      *services.GiftService
}

func newGiftFixture(t *testing.T) giftFixture {
	ctrl := gomock.NewController(t)
	regime := sampleRegime()
	regime.ID = uuid.New()
	regime.Active = true

	f := giftFixture{
		q:        mocks.NewMockQuerier(ctrl),
		tx:       mocks.NewMockTxRunner(ctrl),
		regimes:  mocks.NewMockRegimeService(ctrl),
		notifier: mocks.NewMockNotificationDispatcher(ctrl),
		regime:   regime,
	}
	f.svc = services.NewGiftService(f.q, f.tx, f.regimes, services.NewPricingService(),
		services.NewOrderLifecycleService(), nil, f.notifier, testBank)
	return f
}

func giftRow(regimeID, orderID uuid.UUID, status string) db.GiftCard {
	return db.GiftCard{
		ID:             uuid.New(),
		Code:           "GIFT-ABCD-EFGH",
		RegimeID:       regimeID,
		Tier:           "3-months",
		PurchaserName:  "Sara",
		PurchaserEmail: "sara@example.com",
		RecipientName:  "Hina",
		RecipientEmail: "hina@example.com",
		Status:         status,
		OrderID:        orderID,
	}
}

func TestGiftService_PurchaseGift(t *testing.T) {
	ctx := context.Background()
	f := newGiftFixture(t)
	orderID := uuid.New()
	message := "  Happy birthday!  "

	f.regimes.EXPECT().Get(ctx, f.regime.ID).Return(&f.regime, nil)
	mocks.ExpectInlineTx(f.tx, f.q, 1)
	f.q.EXPECT().CreateOrder(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateOrderParams) (db.Order, error) {
			assert.True(t, arg.IsGift)
			assert.Equal(t, "awaiting_transfer", arg.PaymentStatus)
			// 6-months at 10% off
			assert.True(t, helpers.NumericToDecimal(arg.Total).Equal(dec(1349)))
			return orderRowFromParams(orderID, arg), nil
		})
	f.q.EXPECT().CreateGiftCard(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateGiftCardParams) (db.GiftCard, error) {
			assert.True(t, helpers.IsGiftCode(arg.Code), arg.Code)
			assert.Equal(t, orderID, arg.OrderID)
			assert.Equal(t, "hina@example.com", arg.RecipientEmail)
			assert.Equal(t, "Happy birthday!", arg.Message.String)
			assert.Equal(t, "active", arg.Status)
			row := giftRow(arg.RegimeID, arg.OrderID, arg.Status)
			row.Code = arg.Code
			row.Tier = arg.Tier
			return row, nil
		})
	f.notifier.EXPECT().OrderPlaced(ctx, gomock.Any(), gomock.Not(gomock.Nil())).Return(nil)
	f.notifier.EXPECT().GiftIssued(ctx, gomock.Any(), f.regime).Return(nil)

	result, err := f.svc.PurchaseGift(ctx, params.PurchaseGiftParams{
		RegimeID:       f.regime.ID,
		Tier:           business.TierSixMonths,
		Purchaser:      business.CustomerDetails{Name: "Sara", Email: "sara@example.com", Phone: "+923001112233"},
		Billing:        business.ShippingAddress{Line1: "1 Mall Road", City: "Lahore", Country: "Pakistan"},
		RecipientName:  "Hina",
		RecipientEmail: " Hina@Example.com ",
		Message:        &message,
		PaymentMethod:  business.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)
	assert.Equal(t, business.TierSixMonths, result.Gift.Tier)
	assert.Equal(t, orderID, result.Gift.OrderID)
	require.NotNil(t, result.Checkout.BankDetails)
}

func TestGiftService_PurchaseGift_Validation(t *testing.T) {
	ctx := context.Background()
	f := newGiftFixture(t)

	_, err := f.svc.PurchaseGift(ctx, params.PurchaseGiftParams{
		RegimeID:       f.regime.ID,
		Tier:           business.TierOneTime,
		Purchaser:      business.CustomerDetails{Name: "Sara", Email: "sara@example.com", Phone: "+923001112233"},
		Billing:        business.ShippingAddress{Line1: "1 Mall Road", City: "Lahore", Country: "Pakistan"},
		RecipientEmail: "nope",
		PaymentMethod:  business.PaymentMethodBankTransfer,
	})
	var detailsErr *services.InvalidDetailsError
	require.ErrorAs(t, err, &detailsErr)
	assert.Len(t, detailsErr.Fields, 2)

	_, err = f.svc.PurchaseGift(ctx, params.PurchaseGiftParams{
		RegimeID:       f.regime.ID,
		Tier:           business.TierOneTime,
		Purchaser:      business.CustomerDetails{Name: "Sara", Email: "sara@example.com", Phone: "+923001112233"},
		Billing:        business.ShippingAddress{Line1: "1 Mall Road", City: "Lahore", Country: "Pakistan"},
		RecipientName:  "Hina",
		RecipientEmail: "hina@example.com",
		PaymentMethod:  business.PaymentMethodCard,
	})
	assert.ErrorIs(t, err, services.ErrCardPaymentsUnavailable)
}

func TestGiftService_LookupGift(t *testing.T) {
	ctx := context.Background()
	f := newGiftFixture(t)
	orderID := uuid.New()

	_, err := f.svc.LookupGift(ctx, "not-a-code")
	assert.ErrorIs(t, err, services.ErrGiftNotFound)

	f.q.EXPECT().GetGiftCardByCode(ctx, "GIFT-ABCD-EFGH").Return(giftRow(f.regime.ID, orderID, "active"), nil)
	f.q.EXPECT().GetOrder(ctx, orderID).Return(db.Order{ID: orderID, PaymentStatus: "awaiting_transfer"}, nil)
	f.regimes.EXPECT().Get(ctx, f.regime.ID).Return(&f.regime, nil)

	lookup, err := f.svc.LookupGift(ctx, " gift-abcd-efgh ")
	require.NoError(t, err)
	assert.Equal(t, "Glow Essentials", lookup.RegimeName)
	assert.Equal(t, business.TierThreeMonths, lookup.Tier)
	assert.False(t, lookup.Redeemable)
}

func TestGiftService_RedeemGift(t *testing.T) {
	ctx := context.Background()
	purchaseID := uuid.New()
	redeemParams := params.RedeemGiftParams{
		Code:     "GIFT-ABCD-EFGH",
		Customer: business.CustomerDetails{Name: "Hina", Email: "hina@example.com", Phone: "+923004445566"},
		Shipping: business.ShippingAddress{Line1: "5 Gulberg", City: "Lahore", Country: "Pakistan"},
	}

	t.Run("creates a zero total order", func(t *testing.T) {
		f := newGiftFixture(t)
		gift := giftRow(f.regime.ID, purchaseID, "active")
		newOrderID := uuid.New()

		f.q.EXPECT().GetGiftCardByCode(ctx, "GIFT-ABCD-EFGH").Return(gift, nil)
		f.q.EXPECT().GetOrder(ctx, purchaseID).Return(db.Order{ID: purchaseID, PaymentMethod: "card", PaymentStatus: "paid"}, nil)
		f.regimes.EXPECT().Get(ctx, f.regime.ID).Return(&f.regime, nil)
		mocks.ExpectInlineTx(f.tx, f.q, 1)
		f.q.EXPECT().CreateOrder(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateOrderParams) (db.Order, error) {
				assert.True(t, helpers.NumericToDecimal(arg.Total).IsZero())
				assert.True(t, helpers.NumericToDecimal(arg.Subtotal).Equal(dec(799)))
				assert.Equal(t, "paid", arg.PaymentStatus)
				assert.Equal(t, "card", arg.PaymentMethod)
				return orderRowFromParams(newOrderID, arg), nil
			})
		f.q.EXPECT().RedeemGiftCard(ctx, db.RedeemGiftCardParams{
			ID:              gift.ID,
			RedeemedOrderID: helpers.UUIDToPgtype(newOrderID),
		}).Return(gift, nil)
		f.notifier.EXPECT().OrderPlaced(ctx, gomock.Any(), (*business.BankDetails)(nil)).Return(nil)

		view, err := f.svc.RedeemGift(ctx, redeemParams)
		require.NoError(t, err)
		assert.Equal(t, newOrderID, view.Order.ID)
		assert.Equal(t, "Order Confirmation", view.Lifecycle.Label)
		assert.Len(t, view.Timeline.Stages, 4)
	})

	t.Run("already redeemed", func(t *testing.T) {
		f := newGiftFixture(t)
		f.q.EXPECT().GetGiftCardByCode(ctx, "GIFT-ABCD-EFGH").Return(giftRow(f.regime.ID, purchaseID, "redeemed"), nil)

		_, err := f.svc.RedeemGift(ctx, redeemParams)
		assert.ErrorIs(t, err, services.ErrGiftAlreadyRedeemed)
	})

	t.Run("unpaid purchase", func(t *testing.T) {
		f := newGiftFixture(t)
		f.q.EXPECT().GetGiftCardByCode(ctx, "GIFT-ABCD-EFGH").Return(giftRow(f.regime.ID, purchaseID, "active"), nil)
		f.q.EXPECT().GetOrder(ctx, purchaseID).Return(db.Order{ID: purchaseID, PaymentStatus: "awaiting_transfer"}, nil)

		_, err := f.svc.RedeemGift(ctx, redeemParams)
		assert.ErrorIs(t, err, services.ErrGiftNotPaid)
	})

	t.Run("concurrent redemption loses", func(t *testing.T) {
		f := newGiftFixture(t)
		f.q.EXPECT().GetGiftCardByCode(ctx, "GIFT-ABCD-EFGH").Return(giftRow(f.regime.ID, purchaseID, "active"), nil)
		f.q.EXPECT().GetOrder(ctx, purchaseID).Return(db.Order{ID: purchaseID, PaymentMethod: "card", PaymentStatus: "paid"}, nil)
		f.regimes.EXPECT().Get(ctx, f.regime.ID).Return(&f.regime, nil)
		mocks.ExpectInlineTx(f.tx, f.q, 1)
		f.q.EXPECT().CreateOrder(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateOrderParams) (db.Order, error) {
				return orderRowFromParams(uuid.New(), arg), nil
			})
		f.q.EXPECT().RedeemGiftCard(ctx, gomock.Any()).Return(db.GiftCard{}, pgx.ErrNoRows)

		_, err := f.svc.RedeemGift(ctx, redeemParams)
		assert.ErrorIs(t, err, services.ErrGiftAlreadyRedeemed)
	})

	t.Run("unknown code", func(t *testing.T) {
		f := newGiftFixture(t)
		f.q.EXPECT().GetGiftCardByCode(ctx, "GIFT-ABCD-EFGH").Return(db.GiftCard{}, pgx.ErrNoRows)

		_, err := f.svc.RedeemGift(ctx, redeemParams)
		assert.ErrorIs(t, err, services.ErrGiftNotFound)
	})
}
