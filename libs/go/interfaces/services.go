package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// PricingService computes customer facing prices
type PricingService interface {
	CalculatePrice(regime business.Regime, tier business.SubscriptionTier) business.PriceQuote
	ApplyPercent(price decimal.Decimal, percent int32, reason *string) business.PriceQuote
	CompareUpsell(regime business.Regime, current business.SubscriptionTier) business.UpsellComparison
}

// OrderLifecycle interprets order status values
type OrderLifecycle interface {
	DescribeStatus(status string) business.LifecycleBundle
	BuildTimeline(status string) business.Timeline
	NotificationTemplateFor(status string) (business.EmailTemplate, bool)
	CanTransition(from, to string) error
}

// RegimeService handles the regime catalogue
type RegimeService interface {
	ListActive(ctx context.Context) ([]business.Regime, error)
	Get(ctx context.Context, id uuid.UUID) (*business.Regime, error)
	GetBySlug(ctx context.Context, slug string) (*business.Regime, error)
	Quote(ctx context.Context, id uuid.UUID, tier business.SubscriptionTier) (*business.PriceQuote, error)
	Upsell(ctx context.Context, id uuid.UUID, tier business.SubscriptionTier) (*business.UpsellComparison, error)
	List(ctx context.Context, params params.ListParams) ([]business.Regime, int64, error)
	Create(ctx context.Context, params params.RegimeParams) (*business.Regime, error)
	Update(ctx context.Context, id uuid.UUID, params params.RegimeParams) (*business.Regime, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*business.Regime, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegimeFormService drives the personalization questionnaire
type RegimeFormService interface {
	Steps() []business.FormStep
	Start(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, error)
	Load(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, error)
	SubmitStep(ctx context.Context, sessionID string, regimeID uuid.UUID, answers business.RegimeFormAnswers) (*business.RegimeFormState, []business.FieldError, error)
	Back(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, error)
	JumpTo(ctx context.Context, sessionID string, regimeID uuid.UUID, step int) (*business.RegimeFormState, error)
	Complete(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormState, []business.FieldError, error)
	Reset(ctx context.Context, sessionID string, regimeID uuid.UUID) error
	CompletedAnswers(ctx context.Context, sessionID string, regimeID uuid.UUID) (*business.RegimeFormAnswers, error)
}

// CartService manages the session cart
type CartService interface {
	Load(ctx context.Context, sessionID string) (*business.Cart, error)
	Summary(ctx context.Context, sessionID string) (*business.CartSummary, error)
	Summarize(ctx context.Context, cart business.Cart) (*business.CartSummary, error)
	AddItem(ctx context.Context, sessionID string, item business.CartItem) (*business.CartSummary, error)
	UpdateItem(ctx context.Context, sessionID string, item business.CartItem) (*business.CartSummary, error)
	RemoveItem(ctx context.Context, sessionID string, regimeID uuid.UUID, tier business.SubscriptionTier) (*business.CartSummary, error)
	ApplyDiscount(ctx context.Context, sessionID string, code string) (*business.CartSummary, error)
	RemoveDiscount(ctx context.Context, sessionID string) (*business.CartSummary, error)
	Clear(ctx context.Context, sessionID string) error
}

// CheckoutService turns a cart into an order
type CheckoutService interface {
	PlaceOrder(ctx context.Context, params params.PlaceOrderParams) (*business.CheckoutResult, error)
	ConfirmCardPayment(ctx context.Context, orderID uuid.UUID) (*business.Order, error)
	HandlePaymentEvent(ctx context.Context, event business.PaymentEvent) error
}

// DiscountService manages discount codes
type DiscountService interface {
	List(ctx context.Context) ([]business.DiscountCode, error)
	Get(ctx context.Context, id uuid.UUID) (*business.DiscountCode, error)
	Create(ctx context.Context, params params.DiscountCodeParams) (*business.DiscountCode, error)
	Update(ctx context.Context, id uuid.UUID, params params.DiscountCodeParams) (*business.DiscountCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*business.DiscountCode, error)
	ValidateCode(ctx context.Context, code string) (*business.DiscountCode, error)
	RecordUsage(ctx context.Context, q db.Querier, id uuid.UUID) (*business.DiscountCode, error)
}

// GiftService sells and redeems gift cards
type GiftService interface {
	PurchaseGift(ctx context.Context, params params.PurchaseGiftParams) (*business.GiftPurchaseResult, error)
	LookupGift(ctx context.Context, code string) (*business.GiftLookup, error)
	RedeemGift(ctx context.Context, params params.RedeemGiftParams) (*business.OrderView, error)
}

// OrderService reads and moves orders
type OrderService interface {
	Get(ctx context.Context, id uuid.UUID) (*business.OrderView, error)
	GetByNumber(ctx context.Context, orderNumber string) (*business.OrderView, error)
	List(ctx context.Context, params params.ListOrdersParams) ([]business.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*business.OrderView, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*business.OrderView, error)
}

// ReviewService manages regime reviews
type ReviewService interface {
	Submit(ctx context.Context, params params.SubmitReviewParams) (*business.Review, error)
	ListApproved(ctx context.Context, regimeID uuid.UUID) (*business.ReviewSummary, error)
	List(ctx context.Context, params params.ListParams) ([]business.Review, int64, error)
	Approve(ctx context.Context, id uuid.UUID) (*business.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubscriberService manages newsletter subscribers
type SubscriberService interface {
	Subscribe(ctx context.Context, email string) (*business.Subscriber, error)
	Unsubscribe(ctx context.Context, email, token string) error
	List(ctx context.Context, params params.ListParams) ([]business.Subscriber, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmailService renders and delivers transactional emails
type EmailService interface {
	Render(template business.EmailTemplate, data map[string]any) (*business.RenderedEmail, error)
	SendTemplate(ctx context.Context, msg business.NotificationMessage, attachments ...business.EmailAttachment) (string, error)
}

// NotificationDispatcher decides which emails an event produces and how they are delivered
type NotificationDispatcher interface {
	OrderPlaced(ctx context.Context, order business.Order, bank *business.BankDetails) error
	OrderStatusChanged(ctx context.Context, order business.Order) error
	GiftIssued(ctx context.Context, gift business.GiftCard, regime business.Regime) error
	SubscriberWelcome(ctx context.Context, subscriber business.Subscriber, unsubscribeToken string) error
	Dispatch(ctx context.Context, msg business.NotificationMessage) error
}
