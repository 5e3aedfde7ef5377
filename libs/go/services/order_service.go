package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

var (
	ErrNotBankTransfer     = errors.New("order is not paid by bank transfer")
	ErrAlreadyPaid         = errors.New("order is already paid")
	ErrOrderStatusConflict = errors.New("order status was changed by another update, reload and try again")
)

// OrderService reads orders for customers and moves them through fulfilment for admins
type OrderService struct {
	queries   db.Querier
	lifecycle interfaces.OrderLifecycle
	notifier  interfaces.NotificationDispatcher
	payments  *orderPayments
	logger    *logger.StructuredLogger
}

// NewOrderService creates a new order service
func NewOrderService(queries db.Querier, lifecycle interfaces.OrderLifecycle, notifier interfaces.NotificationDispatcher) *OrderService {
	log := logger.NewStructuredLogger(logger.ComponentOrders)
	return &OrderService{
		queries:   queries,
		lifecycle: lifecycle,
		notifier:  notifier,
		payments:  newOrderPayments(queries, nil, business.BankDetails{}, log),
		logger:    log,
	}
}

// Get returns an order with its lifecycle presentation
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*business.OrderView, error) {
	row, err := s.queries.GetOrder(ctx, id)
	if err != nil {
		return nil, orderLookupError(err)
	}
	return s.view(row)
}

// GetByNumber backs the customer confirmation page
func (s *OrderService) GetByNumber(ctx context.Context, orderNumber string) (*business.OrderView, error) {
	number := strings.ToUpper(strings.TrimSpace(orderNumber))
	if number == "" {
		return nil, ErrOrderNotFound
	}
	row, err := s.queries.GetOrderByNumber(ctx, number)
	if err != nil {
		return nil, orderLookupError(err)
	}
	return s.view(row)
}

// List returns a page of orders, newest first, optionally filtered by status
func (s *OrderService) List(ctx context.Context, p params.ListOrdersParams) ([]business.Order, int64, error) {
	status := helpers.StringPtrToText(p.Status)
	if p.Status != nil {
		if _, ok := business.ParseOrderStatus(*p.Status); !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, *p.Status)
		}
	}

	rows, err := s.queries.ListOrders(ctx, db.ListOrdersParams{Status: status, Limit: p.Limit, Offset: p.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	total, err := s.queries.CountOrders(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	orders, err := helpers.OrdersFromRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus moves an order to a new status and notifies the customer.
// A failed notification does not undo the status change.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*business.OrderView, error) {
	current, err := s.queries.GetOrder(ctx, id)
	if err != nil {
		return nil, orderLookupError(err)
	}
	if err := s.lifecycle.CanTransition(current.Status, status); err != nil {
		return nil, err
	}

	// the write only applies if nobody moved the order since it was read
	row, err := s.queries.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ID:            id,
		Status:        status,
		CurrentStatus: current.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.WithOrderID(id.String()).
				WithField("read_status", current.Status).
				WithField("target_status", status).
				Warn("order status changed concurrently, update rejected")
			return nil, ErrOrderStatusConflict
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	view, err := s.view(row)
	if err != nil {
		return nil, err
	}
	s.logger.WithOrderID(id.String()).LogOrderEvent(view.Order.OrderNumber, status, "status_changed")

	if err := s.notifier.OrderStatusChanged(ctx, view.Order); err != nil {
		s.logger.WithOrderID(id.String()).Error("failed to send status notification", err)
	}
	return view, nil
}

// MarkPaid records a bank transfer the admin has seen arrive
func (s *OrderService) MarkPaid(ctx context.Context, id uuid.UUID) (*business.OrderView, error) {
	current, err := s.queries.GetOrder(ctx, id)
	if err != nil {
		return nil, orderLookupError(err)
	}
	if business.PaymentMethod(current.PaymentMethod) != business.PaymentMethodBankTransfer {
		return nil, ErrNotBankTransfer
	}
	if business.PaymentStatus(current.PaymentStatus) == business.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	order, err := s.payments.record(ctx, id, business.PaymentStatusPaid, nil)
	if err != nil {
		return nil, err
	}
	return &business.OrderView{
		Order:     *order,
		Lifecycle: s.lifecycle.DescribeStatus(string(order.Status)),
		Timeline:  s.lifecycle.BuildTimeline(string(order.Status)),
	}, nil
}

func (s *OrderService) view(row db.Order) (*business.OrderView, error) {
	order, err := helpers.OrderFromRow(row)
	if err != nil {
		return nil, err
	}
	return &business.OrderView{
		Order:     order,
		Lifecycle: s.lifecycle.DescribeStatus(row.Status),
		Timeline:  s.lifecycle.BuildTimeline(row.Status),
	}, nil
}
