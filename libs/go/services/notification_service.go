package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/samber/lo"
)

// NotificationService turns order events into emails. With a publisher the emails are
// queued for the notification processor; without one they are sent inline.
type NotificationService struct {
	email         interfaces.EmailService
	publisher     interfaces.NotificationPublisher
	lifecycle     interfaces.OrderLifecycle
	storefrontURL string
	logger        *logger.StructuredLogger
}

// NewNotificationService creates a new notification dispatcher. publisher may be nil.
func NewNotificationService(
	email interfaces.EmailService,
	publisher interfaces.NotificationPublisher,
	lifecycle interfaces.OrderLifecycle,
	storefrontURL string,
) *NotificationService {
	return &NotificationService{
		email:         email,
		publisher:     publisher,
		lifecycle:     lifecycle,
		storefrontURL: strings.TrimRight(storefrontURL, "/"),
		logger:        logger.NewStructuredLogger(logger.ComponentNotification),
	}
}

// OrderPlaced sends the order confirmation and, for bank transfers still awaiting
// payment, the transfer instructions
func (s *NotificationService) OrderPlaced(ctx context.Context, order business.Order, bank *business.BankDetails) error {
	data := s.orderData(order)
	data["payment_method"] = paymentMethodLabel(order)
	errs := []error{s.Dispatch(ctx, s.orderMessage(order, business.TemplateOrderConfirmation, data))}

	if bank != nil && order.PaymentStatus == business.PaymentStatusAwaitingTransfer {
		transfer := s.orderData(order)
		transfer["bank_name"] = bank.BankName
		transfer["account_title"] = bank.AccountTitle
		transfer["account_number"] = bank.AccountNumber
		transfer["iban"] = bank.IBAN
		transfer["reference"] = order.OrderNumber
		errs = append(errs, s.Dispatch(ctx, s.orderMessage(order, business.TemplateBankTransferInstructions, transfer)))
	}
	return errors.Join(errs...)
}

// OrderStatusChanged tells the customer about a status change. Statuses without an
// email are ignored.
func (s *NotificationService) OrderStatusChanged(ctx context.Context, order business.Order) error {
	tmpl, ok := s.lifecycle.NotificationTemplateFor(string(order.Status))
	if !ok {
		return nil
	}
	bundle := s.lifecycle.DescribeStatus(string(order.Status))
	data := s.orderData(order)
	data["status_label"] = bundle.Label
	data["status_description"] = bundle.Description
	data["next_steps"] = bundle.NextSteps
	return s.Dispatch(ctx, s.orderMessage(order, tmpl, data))
}

// GiftIssued sends the gift card to its recipient
func (s *NotificationService) GiftIssued(ctx context.Context, gift business.GiftCard, regime business.Regime) error {
	data := map[string]any{
		"purchaser_name": gift.PurchaserName,
		"regime_name":    regime.Name,
		"tier":           gift.Tier.Label(),
		"code":           gift.Code,
		"redeem_url":     s.link("gifts", gift.Code),
	}
	if gift.Message != nil {
		data["message"] = *gift.Message
	}
	return s.Dispatch(ctx, business.NotificationMessage{
		Template:       business.TemplateGiftCard,
		RecipientEmail: gift.RecipientEmail,
		RecipientName:  gift.RecipientName,
		OrderID:        &gift.OrderID,
		Data:           data,
	})
}

// SubscriberWelcome confirms a newsletter sign-up and carries the signed unsubscribe link
func (s *NotificationService) SubscriberWelcome(ctx context.Context, subscriber business.Subscriber, unsubscribeToken string) error {
	query := url.Values{}
	query.Set("email", subscriber.Email)
	query.Set("token", unsubscribeToken)
	return s.Dispatch(ctx, business.NotificationMessage{
		Template:       business.TemplateSubscriberWelcome,
		RecipientEmail: subscriber.Email,
		Data: map[string]any{
			"unsubscribe_url": s.link("unsubscribe") + "?" + query.Encode(),
		},
	})
}

// Dispatch queues msg when a publisher is configured and sends it otherwise
func (s *NotificationService) Dispatch(ctx context.Context, msg business.NotificationMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if msg.CorrelationID == "" {
		msg.CorrelationID = logger.CorrelationIDFromContext(ctx)
	}

	log := s.logger.WithCorrelationID(msg.CorrelationID).
		WithField("notification_id", msg.ID).
		WithField("template", string(msg.Template))
	if msg.OrderID != nil {
		log = log.WithOrderID(msg.OrderID.String())
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, msg); err != nil {
			log.Error("failed to queue notification", err)
			return fmt.Errorf("failed to queue %s notification: %w", msg.Template, err)
		}
		log.Info("notification queued")
		return nil
	}

	if _, err := s.email.SendTemplate(ctx, msg); err != nil {
		log.Error("failed to send notification", err)
		return err
	}
	log.Info("notification sent")
	return nil
}

func (s *NotificationService) orderMessage(order business.Order, tmpl business.EmailTemplate, data map[string]any) business.NotificationMessage {
	return business.NotificationMessage{
		Template:       tmpl,
		RecipientEmail: order.Customer.Email,
		RecipientName:  order.Customer.Name,
		OrderID:        &order.ID,
		Data:           data,
	}
}

func (s *NotificationService) orderData(order business.Order) map[string]any {
	items := lo.Map(order.Items, func(item business.OrderItem, _ int) map[string]string {
		return map[string]string{
			"name":       item.RegimeName,
			"tier":       item.Tier.Label(),
			"quantity":   strconv.Itoa(int(item.Quantity)),
			"line_total": helpers.FormatMoney(item.LineTotal, order.Currency),
		}
	})
	data := map[string]any{
		"customer_name": order.Customer.Name,
		"order_number":  order.OrderNumber,
		"order_url":     s.link("orders", order.OrderNumber),
		"items":         items,
		"subtotal":      helpers.FormatMoney(order.Subtotal, order.Currency),
		"total":         helpers.FormatMoney(order.Total, order.Currency),
	}
	if order.DiscountAmount.IsPositive() {
		data["discount"] = helpers.FormatMoney(order.DiscountAmount, order.Currency)
	}
	return data
}

func (s *NotificationService) link(parts ...string) string {
	return s.storefrontURL + "/" + strings.Join(parts, "/")
}

func paymentMethodLabel(order business.Order) string {
	switch {
	case order.IsGift && order.Total.IsZero():
		return "Gift card"
	case order.PaymentMethod == business.PaymentMethodBankTransfer:
		return "Bank transfer"
	default:
		return "Card"
	}
}
