package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/constants"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidPaymentMethod    = errors.New("payment method must be card or bank_transfer")
	ErrCardPaymentsUnavailable = errors.New("card payments are not available")
	ErrPaymentFailed           = errors.New("payment could not be started")
	ErrNotCardPayment          = errors.New("order is not paid by card")
)

// InvalidDetailsError carries field errors for customer or shipping details
type InvalidDetailsError struct {
	Fields []business.FieldError
}

func (e *InvalidDetailsError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid checkout details: " + strings.Join(names, ", ")
}

// CheckoutService turns the session cart into an order and starts payment
type CheckoutService struct {
	queries   db.Querier
	tx        interfaces.TxRunner
	carts     interfaces.CartService
	forms     interfaces.RegimeFormService
	discounts interfaces.DiscountService
	notifier  interfaces.NotificationDispatcher
	payments  *orderPayments
	validate  *validator.Validate
	logger    *logger.StructuredLogger
}

// NewCheckoutService creates a new checkout service. gateway may be nil when card
// payments are not configured.
func NewCheckoutService(
	queries db.Querier,
	tx interfaces.TxRunner,
	carts interfaces.CartService,
	forms interfaces.RegimeFormService,
	discounts interfaces.DiscountService,
	gateway interfaces.PaymentGateway,
	notifier interfaces.NotificationDispatcher,
	bank business.BankDetails,
) *CheckoutService {
	log := logger.NewStructuredLogger(logger.ComponentCheckout)
	return &CheckoutService{
		queries:   queries,
		tx:        tx,
		carts:     carts,
		forms:     forms,
		discounts: discounts,
		notifier:  notifier,
		payments:  newOrderPayments(queries, gateway, bank, log),
		validate:  helpers.NewValidator(),
		logger:    log,
	}
}

// PlaceOrder re-prices the cart, stores the order and starts payment. The cart is cleared
// once the order exists, even when starting a card payment fails.
func (s *CheckoutService) PlaceOrder(ctx context.Context, p params.PlaceOrderParams) (*business.CheckoutResult, error) {
	log := s.logger.WithSessionID(p.SessionID).WithOperation("place_order")

	if err := validateContact(s.validate, p.Customer, p.Shipping); err != nil {
		return nil, err
	}
	if !p.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if p.PaymentMethod == business.PaymentMethodCard && !s.payments.cardEnabled() {
		return nil, ErrCardPaymentsUnavailable
	}

	summary, err := s.carts.Summary(ctx, p.SessionID)
	if err != nil {
		return nil, err
	}
	if len(summary.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	answers, formRegimeID, err := s.formAnswers(ctx, p, summary)
	if err != nil {
		return nil, err
	}

	order := business.Order{
		Customer:       p.Customer,
		Shipping:       p.Shipping,
		Items:          orderItemsFromSummary(summary),
		Subtotal:       summary.Subtotal,
		DiscountCode:   summary.DiscountCode,
		DiscountAmount: summary.DiscountAmount,
		Total:          summary.Total,
		Currency:       summary.Currency,
		Status:         business.OrderStatusPending,
		PaymentMethod:  p.PaymentMethod,
		PaymentStatus:  initialPaymentStatus(p.PaymentMethod),
		FormAnswers:    answers,
		Notes:          p.Notes,
	}

	err = s.tx.RunInTx(ctx, func(q db.Querier) error {
		created, err := insertOrder(ctx, q, order)
		if err != nil {
			return err
		}
		if summary.DiscountCodeID != nil {
			if _, err := s.discounts.RecordUsage(ctx, q, *summary.DiscountCodeID); err != nil {
				return err
			}
		}
		order = created
		return nil
	})
	if err != nil {
		log.Error("failed to create order", err)
		return nil, err
	}
	log = log.WithOrderID(order.ID.String())
	log.LogOrderEvent(order.OrderNumber, string(order.Status), "order_placed")

	if err := s.carts.Clear(ctx, p.SessionID); err != nil {
		log.Warn("failed to clear cart after checkout: " + err.Error())
	}
	if formRegimeID != nil {
		if err := s.forms.Reset(ctx, p.SessionID, *formRegimeID); err != nil {
			log.Warn("failed to reset regime form after checkout: " + err.Error())
		}
	}

	result, err := s.payments.start(ctx, &order, fmt.Sprintf("Order %s", order.OrderNumber))
	if err != nil {
		return nil, err
	}

	if err := s.notifier.OrderPlaced(ctx, order, result.BankDetails); err != nil {
		log.Error("failed to send order placed notifications", err)
	}
	return result, nil
}

// ConfirmCardPayment checks the card payment of an order with the processor and marks the
// order paid once it has succeeded
func (s *CheckoutService) ConfirmCardPayment(ctx context.Context, orderID uuid.UUID) (*business.Order, error) {
	return s.reconcileCardPayment(ctx, orderID, false)
}

// reconcileCardPayment re-reads the intent of a card order. attemptFailed is set when the
// processor reported a declined charge, so an intent waiting for a new card counts as failed.
func (s *CheckoutService) reconcileCardPayment(ctx context.Context, orderID uuid.UUID, attemptFailed bool) (*business.Order, error) {
	row, err := s.queries.GetOrder(ctx, orderID)
	if err != nil {
		return nil, orderLookupError(err)
	}
	order, err := helpers.OrderFromRow(row)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != business.PaymentMethodCard || order.PaymentIntentID == nil {
		return nil, ErrNotCardPayment
	}
	if order.PaymentStatus == business.PaymentStatusPaid {
		return &order, nil
	}
	if !s.payments.cardEnabled() {
		return nil, ErrCardPaymentsUnavailable
	}

	updated, err := s.payments.refresh(ctx, order, attemptFailed)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// HandlePaymentEvent reconciles an order after a card payment webhook. The intent is
// re-read from the gateway, so replayed or out of order events are harmless.
func (s *CheckoutService) HandlePaymentEvent(ctx context.Context, event business.PaymentEvent) error {
	log := s.logger.WithField("event_id", event.ID).WithField("event_type", event.Type)

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		log.Warn("payment event without an order id, ignoring")
		return nil
	}
	log = log.WithOrderID(orderID.String())

	order, err := s.reconcileCardPayment(ctx, orderID, event.AttemptFailed())
	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrNotCardPayment):
		log.Warn("payment event does not match a card order, ignoring")
		return nil
	case err != nil:
		log.Error("failed to reconcile payment event", err)
		return err
	}
	log.Info("payment event reconciled, payment status " + string(order.PaymentStatus))
	return nil
}

// formAnswers picks the questionnaire to attach to the order. An explicitly requested form
// must be complete; otherwise a completed form for a single-regime cart is attached when present.
func (s *CheckoutService) formAnswers(ctx context.Context, p params.PlaceOrderParams, summary *business.CartSummary) (*business.RegimeFormAnswers, *uuid.UUID, error) {
	if s.forms == nil {
		return nil, nil, nil
	}
	if p.FormRegimeID != nil {
		answers, err := s.forms.CompletedAnswers(ctx, p.SessionID, *p.FormRegimeID)
		if err != nil {
			return nil, nil, err
		}
		return answers, p.FormRegimeID, nil
	}
	if len(summary.Lines) != 1 {
		return nil, nil, nil
	}

	regimeID := summary.Lines[0].RegimeID
	answers, err := s.forms.CompletedAnswers(ctx, p.SessionID, regimeID)
	if err != nil {
		if errors.Is(err, ErrFormIncomplete) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return answers, &regimeID, nil
}

// orderPayments starts and refreshes payments for orders. It is shared by checkout and gift purchases.
type orderPayments struct {
	queries db.Querier
	gateway interfaces.PaymentGateway
	bank    business.BankDetails
	logger  *logger.StructuredLogger
}

func newOrderPayments(queries db.Querier, gateway interfaces.PaymentGateway, bank business.BankDetails, log *logger.StructuredLogger) *orderPayments {
	return &orderPayments{queries: queries, gateway: gateway, bank: bank, logger: log}
}

func (p *orderPayments) cardEnabled() bool {
	return p.gateway != nil
}

// start creates the card payment intent, or returns transfer instructions for bank transfers.
// A failed intent marks the order payment failed.
func (p *orderPayments) start(ctx context.Context, order *business.Order, description string) (*business.CheckoutResult, error) {
	result := &business.CheckoutResult{Order: *order}
	amountMinor := helpers.ToMinorUnits(order.Total, order.Currency)

	if order.PaymentMethod == business.PaymentMethodBankTransfer {
		bank := p.bank
		reference := order.OrderNumber
		result.BankDetails = &bank
		result.PaymentReference = &reference
		p.logger.LogPaymentEvent(reference, string(order.PaymentMethod), string(order.PaymentStatus), amountMinor, order.Currency)
		return result, nil
	}

	if amountMinor == 0 {
		paid, err := p.record(ctx, order.ID, business.PaymentStatusPaid, nil)
		if err != nil {
			return nil, err
		}
		*order = *paid
		result.Order = *paid
		return result, nil
	}

	intent, err := p.gateway.CreatePaymentIntent(ctx, params.CreatePaymentIntentParams{
		AmountMinor:  amountMinor,
		Currency:     strings.ToLower(order.Currency),
		ReceiptEmail: order.Customer.Email,
		Description:  description,
		Metadata: map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
		},
	})
	if err != nil {
		p.logger.WithOrderID(order.ID.String()).Error("failed to create payment intent", err)
		if _, markErr := p.queries.UpdateOrderPayment(ctx, db.UpdateOrderPaymentParams{
			ID:            order.ID,
			PaymentStatus: string(business.PaymentStatusFailed),
		}); markErr != nil {
			p.logger.WithOrderID(order.ID.String()).Error("failed to mark order payment failed", markErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	updated, err := p.record(ctx, order.ID, business.PaymentStatusPending, &intent.ID)
	if err != nil {
		return nil, err
	}

	*order = *updated
	secret := intent.ClientSecret
	result.Order = *updated
	result.ClientSecret = &secret
	p.logger.LogPaymentEvent(intent.ID, string(order.PaymentMethod), intent.Status, amountMinor, order.Currency)
	return result, nil
}

// refresh reads the payment intent of a card order and records a final outcome
func (p *orderPayments) refresh(ctx context.Context, order business.Order, attemptFailed bool) (*business.Order, error) {
	intent, err := p.gateway.GetPaymentIntent(ctx, *order.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}
	if intent.Succeeded() && intent.AmountMinor != helpers.ToMinorUnits(order.Total, order.Currency) {
		p.logger.WithOrderID(order.ID.String()).
			WithField("charged", helpers.FromMinorUnits(intent.AmountMinor, intent.Currency).String()).
			WithField("expected", order.Total.String()).
			Warn("charged amount does not match order total")
	}

	var status business.PaymentStatus
	switch {
	case intent.Succeeded():
		status = business.PaymentStatusPaid
	case intent.Status == "canceled":
		status = business.PaymentStatusFailed
	case attemptFailed && intent.Status == "requires_payment_method":
		status = business.PaymentStatusFailed
	default:
		return &order, nil
	}

	updated, err := p.record(ctx, order.ID, status, &intent.ID)
	if err != nil {
		return nil, err
	}

	p.logger.LogPaymentEvent(intent.ID, string(updated.PaymentMethod), string(status), intent.AmountMinor, intent.Currency)
	return updated, nil
}

func (p *orderPayments) record(ctx context.Context, orderID uuid.UUID, status business.PaymentStatus, intentID *string) (*business.Order, error) {
	row, err := p.queries.UpdateOrderPayment(ctx, db.UpdateOrderPaymentParams{
		ID:              orderID,
		PaymentStatus:   string(status),
		PaymentIntentID: helpers.StringPtrToText(intentID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order payment: %w", err)
	}
	updated, err := helpers.OrderFromRow(row)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// insertOrder stores a new order, assigning its order number
func insertOrder(ctx context.Context, q db.Querier, order business.Order) (business.Order, error) {
	number, err := helpers.GenerateOrderNumber(time.Now())
	if err != nil {
		return business.Order{}, err
	}
	shipping, err := json.Marshal(order.Shipping)
	if err != nil {
		return business.Order{}, fmt.Errorf("failed to encode shipping address: %w", err)
	}
	items, err := json.Marshal(order.Items)
	if err != nil {
		return business.Order{}, fmt.Errorf("failed to encode order items: %w", err)
	}
	var answers []byte
	if order.FormAnswers != nil {
		if answers, err = json.Marshal(order.FormAnswers); err != nil {
			return business.Order{}, fmt.Errorf("failed to encode form answers: %w", err)
		}
	}
	currency := order.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	row, err := q.CreateOrder(ctx, db.CreateOrderParams{
		OrderNumber:     number,
		CustomerName:    strings.TrimSpace(order.Customer.Name),
		CustomerEmail:   strings.ToLower(strings.TrimSpace(order.Customer.Email)),
		CustomerPhone:   strings.TrimSpace(order.Customer.Phone),
		ShippingAddress: shipping,
		Items:           items,
		Subtotal:        helpers.DecimalToNumeric(order.Subtotal),
		DiscountCode:    helpers.StringPtrToText(order.DiscountCode),
		DiscountAmount:  helpers.DecimalToNumeric(order.DiscountAmount),
		Total:           helpers.DecimalToNumeric(order.Total),
		Currency:        currency,
		Status:          string(order.Status),
		PaymentMethod:   string(order.PaymentMethod),
		PaymentStatus:   string(order.PaymentStatus),
		PaymentIntentID: helpers.StringPtrToText(order.PaymentIntentID),
		IsGift:          order.IsGift,
		FormAnswers:     answers,
		Notes:           helpers.StringPtrToText(order.Notes),
	})
	if err != nil {
		return business.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	return helpers.OrderFromRow(row)
}

func initialPaymentStatus(method business.PaymentMethod) business.PaymentStatus {
	if method == business.PaymentMethodBankTransfer {
		return business.PaymentStatusAwaitingTransfer
	}
	return business.PaymentStatusPending
}

func validateContact(v *validator.Validate, customer business.CustomerDetails, shipping business.ShippingAddress) error {
	var fields []business.FieldError
	for _, target := range []any{customer, shipping} {
		err := v.Struct(target)
		if err == nil {
			continue
		}
		fieldErrs := helpers.FieldErrors(err)
		if fieldErrs == nil {
			return fmt.Errorf("failed to validate checkout details: %w", err)
		}
		fields = append(fields, fieldErrs...)
	}
	if len(fields) > 0 {
		return &InvalidDetailsError{Fields: fields}
	}
	return nil
}

func orderLookupError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrOrderNotFound
	}
	return fmt.Errorf("failed to get order: %w", err)
}
