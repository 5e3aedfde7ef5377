package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func orderRow(id uuid.UUID, status, method, payment string) db.Order {
	return db.Order{
		ID:              id,
		OrderNumber:     "RG-20261019-AB12",
		CustomerName:    "Ayesha",
		CustomerEmail:   "ayesha@example.com",
		CustomerPhone:   "+923001234567",
		ShippingAddress: []byte(`{"line1":"12 Canal View","city":"Lahore","country":"Pakistan"}`),
		Items:           []byte(`[]`),
		Currency:        "PKR",
		Status:          status,
		PaymentMethod:   method,
		PaymentStatus:   payment,
	}
}

func TestOrderService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewOrderService(q, services.NewOrderLifecycleService(), mocks.NewMockNotificationDispatcher(ctrl))
	ctx := context.Background()
	id := uuid.New()

	t.Run("by number", func(t *testing.T) {
		q.EXPECT().GetOrderByNumber(ctx, "RG-20261019-AB12").Return(orderRow(id, "shipped", "card", "paid"), nil)

		view, err := svc.GetByNumber(ctx, " rg-20261019-ab12 ")
		require.NoError(t, err)
		assert.Equal(t, "Lahore", view.Order.Shipping.City)
		assert.Equal(t, "Order Shipped", view.Lifecycle.Label)
		require.Len(t, view.Timeline.Stages, 4)
		assert.Equal(t, business.StageActive, view.Timeline.Stages[2].State)
	})

	t.Run("not found", func(t *testing.T) {
		q.EXPECT().GetOrder(ctx, id).Return(db.Order{}, pgx.ErrNoRows)

		_, err := svc.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrOrderNotFound)

		_, err = svc.GetByNumber(ctx, "  ")
		assert.ErrorIs(t, err, services.ErrOrderNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewOrderService(q, services.NewOrderLifecycleService(), mocks.NewMockNotificationDispatcher(ctrl))
	ctx := context.Background()

	status := "processing"
	filter := pgtype.Text{String: status, Valid: true}
	q.EXPECT().ListOrders(ctx, db.ListOrdersParams{Status: filter, Limit: 20, Offset: 40}).
		Return([]db.Order{orderRow(uuid.New(), status, "card", "paid")}, nil)
	q.EXPECT().CountOrders(ctx, filter).Return(int64(41), nil)

	orders, total, err := svc.List(ctx, params.ListOrdersParams{Status: &status, Limit: 20, Offset: 40})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(41), total)

	bogus := "lost"
	_, _, err = svc.List(ctx, params.ListOrdersParams{Status: &bogus, Limit: 20})
	assert.ErrorIs(t, err, services.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name      string
		current   string
		target    string
		wantErr   error
		notifyErr error
	}{
		{name: "pending to processing", current: "pending", target: "processing"},
		{name: "skipping ahead is allowed", current: "pending", target: "shipped"},
		{name: "notification failure is not fatal", current: "processing", target: "shipped", notifyErr: errors.New("queue down")},
		{name: "cancelled is final", current: "cancelled", target: "processing", wantErr: services.ErrOrderCancelled},
		{name: "same status", current: "shipped", target: "shipped", wantErr: services.ErrStatusUnchanged},
		{name: "unknown status", current: "pending", target: "lost", wantErr: services.ErrInvalidOrderStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := mocks.NewMockQuerier(ctrl)
			notifier := mocks.NewMockNotificationDispatcher(ctrl)
			svc := services.NewOrderService(q, services.NewOrderLifecycleService(), notifier)

			q.EXPECT().GetOrder(ctx, id).Return(orderRow(id, tt.current, "card", "paid"), nil)
			if tt.wantErr == nil {
				q.EXPECT().UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: id, Status: tt.target, CurrentStatus: tt.current}).
					Return(orderRow(id, tt.target, "card", "paid"), nil)
				notifier.EXPECT().OrderStatusChanged(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, order business.Order) error {
						assert.Equal(t, business.OrderStatus(tt.target), order.Status)
						return tt.notifyErr
					})
			}

			view, err := svc.UpdateStatus(ctx, id, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, view.Lifecycle.Status)
		})
	}
}

func TestOrderService_UpdateStatus_ConcurrentChange(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	notifier := mocks.NewMockNotificationDispatcher(ctrl)
	svc := services.NewOrderService(q, services.NewOrderLifecycleService(), notifier)

	// read as pending, cancelled by another admin before the write lands
	q.EXPECT().GetOrder(ctx, id).Return(orderRow(id, "pending", "card", "paid"), nil)
	q.EXPECT().UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: id, Status: "shipped", CurrentStatus: "pending"}).
		Return(db.Order{}, pgx.ErrNoRows)
	notifier.EXPECT().OrderStatusChanged(gomock.Any(), gomock.Any()).Times(0)

	view, err := svc.UpdateStatus(ctx, id, "shipped")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, services.ErrOrderStatusConflict)
}

func TestOrderService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("bank transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := mocks.NewMockQuerier(ctrl)
		svc := services.NewOrderService(q, services.NewOrderLifecycleService(), mocks.NewMockNotificationDispatcher(ctrl))

		q.EXPECT().GetOrder(ctx, id).Return(orderRow(id, "pending", "bank_transfer", "awaiting_transfer"), nil)
		q.EXPECT().UpdateOrderPayment(ctx, db.UpdateOrderPaymentParams{ID: id, PaymentStatus: "paid"}).
			Return(orderRow(id, "pending", "bank_transfer", "paid"), nil)

		view, err := svc.MarkPaid(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, business.PaymentStatusPaid, view.Order.PaymentStatus)
		assert.Equal(t, business.OrderStatusPending, view.Order.Status)
	})

	t.Run("rejections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := mocks.NewMockQuerier(ctrl)
		svc := services.NewOrderService(q, services.NewOrderLifecycleService(), mocks.NewMockNotificationDispatcher(ctrl))

		q.EXPECT().GetOrder(ctx, id).Return(orderRow(id, "pending", "card", "pending"), nil)
		_, err := svc.MarkPaid(ctx, id)
		assert.ErrorIs(t, err, services.ErrNotBankTransfer)

		q.EXPECT().GetOrder(ctx, id).Return(orderRow(id, "pending", "bank_transfer", "paid"), nil)
		_, err = svc.MarkPaid(ctx, id)
		assert.ErrorIs(t, err, services.ErrAlreadyPaid)
	})
}
