package services_test

import (
	"testing"

	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageStates(timeline business.Timeline) map[business.OrderStatus]business.StageState {
	states := make(map[business.OrderStatus]business.StageState, len(timeline.Stages))
	for _, stage := range timeline.Stages {
		states[stage.Status] = stage.State
	}
	return states
}

func TestOrderLifecycle_DescribeStatus(t *testing.T) {
	svc := services.NewOrderLifecycleService()

	tests := []struct {
		status    string
		wantLabel string
		wantNext  string
	}{
		{status: "pending", wantLabel: "Order Confirmation", wantNext: "24 hours"},
		{status: "processing", wantLabel: "Order Processing", wantNext: "1-2 business days"},
		{status: "shipped", wantLabel: "Order Shipped", wantNext: "2-3 business days"},
		{status: "completed", wantLabel: "Order Delivered", wantNext: "review"},
		{status: "cancelled", wantLabel: "Order Cancelled", wantNext: "5-7 business days"},
		{status: "lost-in-transit", wantLabel: "Order Status Unknown", wantNext: "contact support"},
		{status: "", wantLabel: "Order Status Unknown", wantNext: "contact support"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			bundle := svc.DescribeStatus(tt.status)

			assert.Equal(t, tt.status, bundle.Status)
			assert.Equal(t, tt.wantLabel, bundle.Label)
			assert.Contains(t, bundle.NextSteps, tt.wantNext)
			assert.NotEmpty(t, bundle.Icon)
			assert.NotEmpty(t, bundle.ColorClass)
		})
	}

	assert.Equal(t, "Order Received", svc.DescribeStatus("pending").TimelineLabel)
}

func TestOrderLifecycle_BuildTimeline(t *testing.T) {
	svc := services.NewOrderLifecycleService()

	tests := []struct {
		status string
		want   map[business.OrderStatus]business.StageState
	}{
		{
			status: "pending",
			want: map[business.OrderStatus]business.StageState{
				business.OrderStatusPending:    business.StageActive,
				business.OrderStatusProcessing: business.StageUpcoming,
				business.OrderStatusShipped:    business.StageUpcoming,
				business.OrderStatusCompleted:  business.StageUpcoming,
			},
		},
		{
			status: "shipped",
			want: map[business.OrderStatus]business.StageState{
				business.OrderStatusPending:    business.StageCompleted,
				business.OrderStatusProcessing: business.StageCompleted,
				business.OrderStatusShipped:    business.StageActive,
				business.OrderStatusCompleted:  business.StageUpcoming,
			},
		},
		{
			status: "completed",
			want: map[business.OrderStatus]business.StageState{
				business.OrderStatusPending:    business.StageCompleted,
				business.OrderStatusProcessing: business.StageCompleted,
				business.OrderStatusShipped:    business.StageCompleted,
				business.OrderStatusCompleted:  business.StageActive,
			},
		},
		{
			status: "mystery",
			want: map[business.OrderStatus]business.StageState{
				business.OrderStatusPending:    business.StageUpcoming,
				business.OrderStatusProcessing: business.StageUpcoming,
				business.OrderStatusShipped:    business.StageUpcoming,
				business.OrderStatusCompleted:  business.StageUpcoming,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			timeline := svc.BuildTimeline(tt.status)

			require.Len(t, timeline.Stages, 4)
			assert.False(t, timeline.Cancelled)
			assert.Empty(t, timeline.CancellationNotice)
			assert.Equal(t, tt.want, stageStates(timeline))
		})
	}
}

func TestOrderLifecycle_CancelledSuppressesStages(t *testing.T) {
	svc := services.NewOrderLifecycleService()

	before := svc.BuildTimeline("processing")
	require.Len(t, before.Stages, 4)
	require.False(t, before.Cancelled)

	after := svc.BuildTimeline("cancelled")
	assert.True(t, after.Cancelled)
	assert.Empty(t, after.Stages)
	assert.Contains(t, after.CancellationNotice, "5-7 business days")
}

func TestOrderLifecycle_NotificationTemplateFor(t *testing.T) {
	svc := services.NewOrderLifecycleService()

	tests := []struct {
		status string
		want   business.EmailTemplate
		wantOK bool
	}{
		{status: "pending", wantOK: false},
		{status: "processing", want: business.TemplateOrderProcessing, wantOK: true},
		{status: "shipped", want: business.TemplateOrderShipped, wantOK: true},
		{status: "completed", want: business.TemplateOrderCompleted, wantOK: true},
		{status: "cancelled", want: business.TemplateOrderCancelled, wantOK: true},
		{status: "refunded", wantOK: false},
	}

	seen := map[business.EmailTemplate]bool{}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, ok := svc.NotificationTemplateFor(tt.status)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.False(t, seen[got], "template %s mapped twice", got)
				seen[got] = true
			}
		})
	}
}

func TestOrderLifecycle_CanTransition(t *testing.T) {
	svc := services.NewOrderLifecycleService()

	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "happy path step", from: "pending", to: "processing"},
		{name: "skipping is allowed", from: "pending", to: "shipped"},
		{name: "cancel from processing", from: "processing", to: "cancelled"},
		{name: "cancelled is absorbing", from: "cancelled", to: "processing", wantErr: services.ErrOrderCancelled},
		{name: "completed is absorbing", from: "completed", to: "cancelled", wantErr: services.ErrOrderCompleted},
		{name: "same status", from: "shipped", to: "shipped", wantErr: services.ErrStatusUnchanged},
		{name: "unknown target", from: "pending", to: "refunded", wantErr: services.ErrInvalidOrderStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CanTransition(tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
