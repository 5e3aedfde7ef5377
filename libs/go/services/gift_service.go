package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/constants"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

var (
	ErrGiftNotFound        = errors.New("gift card not found")
	ErrGiftAlreadyRedeemed = errors.New("gift card has already been redeemed")
	ErrGiftNotPaid         = errors.New("gift card has not been paid for yet")
)

// giftRecipient is validated with the same rules as checkout details
type giftRecipient struct {
	Name    string `json:"recipient_name" validate:"required,max=120"`
	Email   string `json:"recipient_email" validate:"required,email"`
	Message string `json:"message" validate:"max=500"`
}

// GiftService sells gift cards and turns them into orders for the recipient
type GiftService struct {
	queries   db.Querier
	tx        interfaces.TxRunner
	regimes   interfaces.RegimeService
	pricing   interfaces.PricingService
	lifecycle interfaces.OrderLifecycle
	notifier  interfaces.NotificationDispatcher
	payments  *orderPayments
	validate  *validator.Validate
	logger    *logger.StructuredLogger
}

// NewGiftService creates a new gift service. gateway may be nil when card payments are not configured.
func NewGiftService(
	queries db.Querier,
	tx interfaces.TxRunner,
	regimes interfaces.RegimeService,
	pricing interfaces.PricingService,
	lifecycle interfaces.OrderLifecycle,
	gateway interfaces.PaymentGateway,
	notifier interfaces.NotificationDispatcher,
	bank business.BankDetails,
) *GiftService {
	log := logger.NewStructuredLogger(logger.ComponentGifts)
	return &GiftService{
		queries:   queries,
		tx:        tx,
		regimes:   regimes,
		pricing:   pricing,
		lifecycle: lifecycle,
		notifier:  notifier,
		payments:  newOrderPayments(queries, gateway, bank, log),
		validate:  helpers.NewValidator(),
		logger:    log,
	}
}

// PurchaseGift charges the purchaser for a regime and issues a gift card for the recipient
func (s *GiftService) PurchaseGift(ctx context.Context, p params.PurchaseGiftParams) (*business.GiftPurchaseResult, error) {
	if err := s.validatePurchase(p); err != nil {
		return nil, err
	}
	if !p.Tier.IsValid() {
		return nil, ErrInvalidTier
	}
	if !p.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if p.PaymentMethod == business.PaymentMethodCard && !s.payments.cardEnabled() {
		return nil, ErrCardPaymentsUnavailable
	}

	regime, err := s.regimes.Get(ctx, p.RegimeID)
	if err != nil {
		return nil, err
	}
	if !regime.Active {
		return nil, ErrRegimeInactive
	}

	quote := s.pricing.CalculatePrice(*regime, p.Tier)
	recipientName := strings.TrimSpace(p.RecipientName)
	recipientEmail := strings.ToLower(strings.TrimSpace(p.RecipientEmail))
	note := fmt.Sprintf("Gift card purchase for %s", recipientName)
	order := business.Order{
		Customer:       p.Purchaser,
		Shipping:       p.Billing,
		Items:          []business.OrderItem{orderItemFromQuote(*regime, quote)},
		Subtotal:       quote.DiscountedPrice,
		DiscountAmount: decimal.Zero,
		Total:          quote.DiscountedPrice,
		Currency:       constants.DefaultCurrency,
		Status:         business.OrderStatusPending,
		PaymentMethod:  p.PaymentMethod,
		PaymentStatus:  initialPaymentStatus(p.PaymentMethod),
		IsGift:         true,
		Notes:          &note,
	}

	code, err := helpers.GenerateGiftCode()
	if err != nil {
		return nil, err
	}

	var gift business.GiftCard
	err = s.tx.RunInTx(ctx, func(q db.Querier) error {
		created, err := insertOrder(ctx, q, order)
		if err != nil {
			return err
		}
		row, err := q.CreateGiftCard(ctx, db.CreateGiftCardParams{
			Code:           code,
			RegimeID:       regime.ID,
			Tier:           string(quote.Tier),
			PurchaserName:  strings.TrimSpace(p.Purchaser.Name),
			PurchaserEmail: strings.ToLower(strings.TrimSpace(p.Purchaser.Email)),
			RecipientName:  recipientName,
			RecipientEmail: recipientEmail,
			Message:        helpers.StringPtrToText(trimmedPtr(p.Message)),
			Status:         string(business.GiftStatusActive),
			OrderID:        created.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create gift card: %w", err)
		}
		order = created
		gift = helpers.GiftCardFromRow(row)
		return nil
	})
	if err != nil {
		s.logger.Error("failed to purchase gift card", err)
		return nil, err
	}
	s.logger.WithOrderID(order.ID.String()).LogOrderEvent(order.OrderNumber, string(order.Status), "gift_purchased")

	checkout, err := s.payments.start(ctx, &order, fmt.Sprintf("Gift card %s", gift.Code))
	if err != nil {
		return nil, err
	}

	if err := s.notifier.OrderPlaced(ctx, order, checkout.BankDetails); err != nil {
		s.logger.Error("failed to send gift order notifications", err)
	}
	if err := s.notifier.GiftIssued(ctx, gift, *regime); err != nil {
		s.logger.Error("failed to send gift card email", err)
	}

	return &business.GiftPurchaseResult{Gift: gift, Checkout: *checkout}, nil
}

// LookupGift returns what the redemption page shows for a code
func (s *GiftService) LookupGift(ctx context.Context, code string) (*business.GiftLookup, error) {
	gift, err := s.getGift(ctx, s.queries, code)
	if err != nil {
		return nil, err
	}
	purchase, err := s.purchaseOrder(ctx, gift)
	if err != nil {
		return nil, err
	}
	paid := business.PaymentStatus(purchase.PaymentStatus) == business.PaymentStatusPaid

	lookup := &business.GiftLookup{
		Code:          gift.Code,
		Status:        gift.Status,
		RegimeID:      gift.RegimeID.String(),
		Tier:          gift.Tier,
		RecipientName: gift.RecipientName,
		PurchaserName: gift.PurchaserName,
		Message:       gift.Message,
		Redeemable:    gift.IsRedeemable() && paid,
	}
	regime, err := s.regimes.Get(ctx, gift.RegimeID)
	switch {
	case err == nil:
		lookup.RegimeName = regime.Name
	case !errors.Is(err, ErrRegimeNotFound):
		return nil, err
	}
	return lookup, nil
}

// RedeemGift creates the recipient's order at no charge and marks the card redeemed.
// Both happen in one transaction so a code can only ever produce one order.
func (s *GiftService) RedeemGift(ctx context.Context, p params.RedeemGiftParams) (*business.OrderView, error) {
	if err := validateContact(s.validate, p.Customer, p.Shipping); err != nil {
		return nil, err
	}
	if p.Answers != nil {
		if err := s.validate.Struct(*p.Answers); err != nil {
			if fields := helpers.FieldErrors(err); fields != nil {
				return nil, &InvalidDetailsError{Fields: fields}
			}
			return nil, fmt.Errorf("failed to validate form answers: %w", err)
		}
	}

	gift, err := s.getGift(ctx, s.queries, p.Code)
	if err != nil {
		return nil, err
	}
	if !gift.IsRedeemable() {
		return nil, ErrGiftAlreadyRedeemed
	}
	purchase, err := s.purchaseOrder(ctx, gift)
	if err != nil {
		return nil, err
	}
	if business.PaymentStatus(purchase.PaymentStatus) != business.PaymentStatusPaid {
		return nil, ErrGiftNotPaid
	}
	regime, err := s.regimes.Get(ctx, gift.RegimeID)
	if err != nil {
		return nil, err
	}

	quote := s.pricing.CalculatePrice(*regime, gift.Tier)
	note := fmt.Sprintf("Redeemed gift card %s from %s", gift.Code, gift.PurchaserName)
	order := business.Order{
		Customer:       p.Customer,
		Shipping:       p.Shipping,
		Items:          []business.OrderItem{orderItemFromQuote(*regime, quote)},
		Subtotal:       quote.DiscountedPrice,
		DiscountAmount: quote.DiscountedPrice,
		Total:          decimal.Zero,
		Currency:       constants.DefaultCurrency,
		Status:         business.OrderStatusPending,
		PaymentMethod:  business.PaymentMethod(purchase.PaymentMethod),
		PaymentStatus:  business.PaymentStatusPaid,
		IsGift:         true,
		FormAnswers:    p.Answers,
		Notes:          &note,
	}

	err = s.tx.RunInTx(ctx, func(q db.Querier) error {
		created, err := insertOrder(ctx, q, order)
		if err != nil {
			return err
		}
		if _, err := q.RedeemGiftCard(ctx, db.RedeemGiftCardParams{
			ID:              gift.ID,
			RedeemedOrderID: helpers.UUIDToPgtype(created.ID),
		}); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrGiftAlreadyRedeemed
			}
			return fmt.Errorf("failed to redeem gift card: %w", err)
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.WithOrderID(order.ID.String()).LogOrderEvent(order.OrderNumber, string(order.Status), "gift_redeemed")

	if err := s.notifier.OrderPlaced(ctx, order, nil); err != nil {
		s.logger.Error("failed to send gift redemption notifications", err)
	}

	return &business.OrderView{
		Order:     order,
		Lifecycle: s.lifecycle.DescribeStatus(string(order.Status)),
		Timeline:  s.lifecycle.BuildTimeline(string(order.Status)),
	}, nil
}

func (s *GiftService) getGift(ctx context.Context, q db.Querier, code string) (*business.GiftCard, error) {
	normalized := helpers.NormalizeCode(code)
	if !helpers.IsGiftCode(normalized) {
		return nil, ErrGiftNotFound
	}
	row, err := q.GetGiftCardByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGiftNotFound
		}
		return nil, fmt.Errorf("failed to get gift card: %w", err)
	}
	gift := helpers.GiftCardFromRow(row)
	return &gift, nil
}

func (s *GiftService) purchaseOrder(ctx context.Context, gift *business.GiftCard) (db.Order, error) {
	row, err := s.queries.GetOrder(ctx, gift.OrderID)
	if err != nil {
		return db.Order{}, orderLookupError(err)
	}
	return row, nil
}

func (s *GiftService) validatePurchase(p params.PurchaseGiftParams) error {
	recipient := giftRecipient{Name: strings.TrimSpace(p.RecipientName), Email: strings.TrimSpace(p.RecipientEmail)}
	if p.Message != nil {
		recipient.Message = *p.Message
	}

	var fields []business.FieldError
	if err := validateContact(s.validate, p.Purchaser, p.Billing); err != nil {
		var detailsErr *InvalidDetailsError
		if !errors.As(err, &detailsErr) {
			return err
		}
		fields = append(fields, detailsErr.Fields...)
	}
	if err := s.validate.Struct(recipient); err != nil {
		recipientFields := helpers.FieldErrors(err)
		if recipientFields == nil {
			return fmt.Errorf("failed to validate gift recipient: %w", err)
		}
		fields = append(fields, recipientFields...)
	}
	if len(fields) > 0 {
		return &InvalidDetailsError{Fields: fields}
	}
	return nil
}

func orderItemFromQuote(regime business.Regime, quote business.PriceQuote) business.OrderItem {
	return business.OrderItem{
		RegimeID:        regime.ID,
		RegimeName:      regime.Name,
		Tier:            quote.Tier,
		Quantity:        1,
		UnitPrice:       quote.OriginalPrice,
		DiscountedPrice: quote.DiscountedPrice,
		DiscountPercent: quote.DiscountPercent,
		DiscountReason:  quote.DiscountReason,
		LineTotal:       quote.DiscountedPrice,
	}
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
