package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/constants"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = constants.OrderStatusPending
	OrderStatusProcessing OrderStatus = constants.OrderStatusProcessing
	OrderStatusShipped    OrderStatus = constants.OrderStatusShipped
	OrderStatusCompleted  OrderStatus = constants.OrderStatusCompleted
	OrderStatusCancelled  OrderStatus = constants.OrderStatusCancelled
)

// HappyPath is the ranked sequence of statuses shown on the progress timeline
var HappyPath = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusCompleted,
}

// ParseOrderStatus returns the status and whether it is known
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	return status, status.IsValid()
}

// IsValid reports whether the status is one of the five known values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Rank places a status on the happy path. Cancelled and unknown statuses rank -1.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusPending:
		return 0
	case OrderStatusProcessing:
		return 1
	case OrderStatusShipped:
		return 2
	case OrderStatusCompleted:
		return 3
	default:
		return -1
	}
}

// IsTerminal reports whether no further status change is expected
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// PaymentMethod is how the customer pays
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = constants.PaymentMethodCard
	PaymentMethodBankTransfer PaymentMethod = constants.PaymentMethodBankTransfer
)

// IsValid reports whether the method is supported
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodBankTransfer
}

// PaymentStatus tracks the money side of an order
type PaymentStatus string

const (
	PaymentStatusPending          PaymentStatus = constants.PaymentStatusPending
	PaymentStatusAwaitingTransfer PaymentStatus = constants.PaymentStatusAwaitingTransfer
	PaymentStatusPaid             PaymentStatus = constants.PaymentStatusPaid
	PaymentStatusFailed           PaymentStatus = constants.PaymentStatusFailed
	PaymentStatusRefunded         PaymentStatus = constants.PaymentStatusRefunded
)

// ShippingAddress is where the box is delivered
type ShippingAddress struct {
	Line1      string `json:"line1" validate:"required,max=200"`
	Line2      string `json:"line2,omitempty" validate:"max=200"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province,omitempty" validate:"max=100"`
	PostalCode string `json:"postal_code,omitempty" validate:"max=20"`
	Country    string `json:"country" validate:"required,max=100"`
}

// CustomerDetails identifies who placed an order
type CustomerDetails struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=7,max=20"`
}

// OrderItem is one priced line of an order, frozen at checkout
type OrderItem struct {
	RegimeID        uuid.UUID        `json:"regime_id"`
	RegimeName      string           `json:"regime_name"`
	Tier            SubscriptionTier `json:"tier"`
	Quantity        int32            `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	DiscountedPrice decimal.Decimal  `json:"discounted_price"`
	DiscountPercent int32            `json:"discount_percent"`
	DiscountReason  *string          `json:"discount_reason,omitempty"`
	LineTotal       decimal.Decimal  `json:"line_total"`
}

// Order is a placed order
type Order struct {
	ID              uuid.UUID          `json:"id"`
	OrderNumber     string             `json:"order_number"`
	Customer        CustomerDetails    `json:"customer"`
	Shipping        ShippingAddress    `json:"shipping"`
	Items           []OrderItem        `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DiscountCode    *string            `json:"discount_code,omitempty"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	Total           decimal.Decimal    `json:"total"`
	Currency        string             `json:"currency"`
	Status          OrderStatus        `json:"status"`
	PaymentMethod   PaymentMethod      `json:"payment_method"`
	PaymentStatus   PaymentStatus      `json:"payment_status"`
	PaymentIntentID *string            `json:"payment_intent_id,omitempty"`
	IsGift          bool               `json:"is_gift"`
	FormAnswers     *RegimeFormAnswers `json:"form_answers,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
