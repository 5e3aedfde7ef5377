package services

import (
	"errors"
	"fmt"

	"github.com/regime-co/regime-api/libs/go/types/business"
)

var (
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrOrderCancelled     = errors.New("order is cancelled")
	ErrOrderCompleted     = errors.New("order is already completed")
	ErrStatusUnchanged    = errors.New("order already has this status")
)

const cancellationNotice = "This order has been cancelled. If a payment was made, your refund will be processed within 5-7 business days. Contact our support team if you have any questions."

var lifecycleBundles = map[business.OrderStatus]business.LifecycleBundle{
	business.OrderStatusPending: {
		Label:         "Order Confirmation",
		TimelineLabel: "Order Received",
		Icon:          "clock",
		ColorClass:    "bg-yellow-100 text-yellow-800",
		Description:   "We have received your order and it is waiting to be confirmed.",
		NextSteps:     "We will confirm your order within 24 hours.",
	},
	business.OrderStatusProcessing: {
		Label:         "Order Processing",
		TimelineLabel: "Processing",
		Icon:          "package",
		ColorClass:    "bg-blue-100 text-blue-800",
		Description:   "Your personalized regime is being prepared.",
		NextSteps:     "Your products are being curated and will be shipped within 1-2 business days.",
	},
	business.OrderStatusShipped: {
		Label:         "Order Shipped",
		TimelineLabel: "Shipped",
		Icon:          "truck",
		ColorClass:    "bg-purple-100 text-purple-800",
		Description:   "Your order is on its way.",
		NextSteps:     "Your order will be delivered within 2-3 business days.",
	},
	business.OrderStatusCompleted: {
		Label:         "Order Delivered",
		TimelineLabel: "Delivered",
		Icon:          "check-circle",
		ColorClass:    "bg-green-100 text-green-800",
		Description:   "Your order has been delivered.",
		NextSteps:     "Enjoy your regime! Once you have tried it, we would love a review.",
	},
	business.OrderStatusCancelled: {
		Label:         "Order Cancelled",
		TimelineLabel: "Cancelled",
		Icon:          "x-circle",
		ColorClass:    "bg-red-100 text-red-800",
		Description:   "This order has been cancelled.",
		NextSteps:     "If a payment was made, your refund will be processed within 5-7 business days. Contact support with any questions.",
	},
}

var unknownBundle = business.LifecycleBundle{
	Label:         "Order Status Unknown",
	TimelineLabel: "Unknown",
	Icon:          "help-circle",
	ColorClass:    "bg-gray-100 text-gray-800",
	Description:   "We could not determine the status of this order.",
	NextSteps:     "Please contact support for an update on your order.",
}

var statusTemplates = map[business.OrderStatus]business.EmailTemplate{
	business.OrderStatusProcessing: business.TemplateOrderProcessing,
	business.OrderStatusShipped:    business.TemplateOrderShipped,
	business.OrderStatusCompleted:  business.TemplateOrderCompleted,
	business.OrderStatusCancelled:  business.TemplateOrderCancelled,
}

// OrderLifecycleService interprets order statuses for display and notifications.
// It is pure and safe for concurrent use.
type OrderLifecycleService struct{}

// NewOrderLifecycleService creates a new lifecycle service
func NewOrderLifecycleService() *OrderLifecycleService {
	return &OrderLifecycleService{}
}

// DescribeStatus returns the presentation bundle for a status. Unknown values get a
// generic fallback rather than an error.
func (s *OrderLifecycleService) DescribeStatus(status string) business.LifecycleBundle {
	bundle, ok := lifecycleBundles[business.OrderStatus(status)]
	if !ok {
		bundle = unknownBundle
	}
	bundle.Status = status
	return bundle
}

// BuildTimeline ranks the four happy path stages against the current status.
// A cancelled order gets the cancellation notice instead of stages.
func (s *OrderLifecycleService) BuildTimeline(status string) business.Timeline {
	current := business.OrderStatus(status)
	if current == business.OrderStatusCancelled {
		return business.Timeline{
			Status:             status,
			Cancelled:          true,
			CancellationNotice: cancellationNotice,
		}
	}

	rank := current.Rank()
	stages := make([]business.TimelineStage, 0, len(business.HappyPath))
	for _, stage := range business.HappyPath {
		state := business.StageUpcoming
		switch {
		case rank > stage.Rank():
			state = business.StageCompleted
		case rank == stage.Rank():
			state = business.StageActive
		}
		stages = append(stages, business.TimelineStage{
			Status: stage,
			Label:  lifecycleBundles[stage].TimelineLabel,
			State:  state,
		})
	}

	return business.Timeline{Status: status, Stages: stages}
}

// NotificationTemplateFor maps a status change to its email. Pending is the initial
// state and has no status change email.
func (s *OrderLifecycleService) NotificationTemplateFor(status string) (business.EmailTemplate, bool) {
	tmpl, ok := statusTemplates[business.OrderStatus(status)]
	return tmpl, ok
}

// CanTransition validates an admin status change. Terminal statuses are absorbing.
// Skipping stages on the happy path is allowed.
func (s *OrderLifecycleService) CanTransition(from, to string) error {
	target, ok := business.ParseOrderStatus(to)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOrderStatus, to)
	}

	switch business.OrderStatus(from) {
	case business.OrderStatusCancelled:
		return ErrOrderCancelled
	case business.OrderStatusCompleted:
		if target != business.OrderStatusCompleted {
			return ErrOrderCompleted
		}
	}

	if business.OrderStatus(from) == target {
		return ErrStatusUnchanged
	}
	return nil
}
