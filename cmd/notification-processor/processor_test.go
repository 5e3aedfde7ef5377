package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/regime-co/regime-api/libs/go/mocks"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sqsRecord(t *testing.T, id string, msg any) events.SQSMessage {
	t.Helper()
	if raw, ok := msg.(string); ok {
		return events.SQSMessage{MessageId: id, Body: raw}
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return events.SQSMessage{MessageId: id, Body: string(body)}
}

func shippedMessage(id, email string) business.NotificationMessage {
	return business.NotificationMessage{
		ID:             id,
		Template:       business.TemplateOrderShipped,
		RecipientEmail: email,
		RecipientName:  "Ayesha",
		Data:           map[string]any{"order_number": "RG-20261019-AB12"},
		CorrelationID:  "corr-" + id,
	}
}

func TestApplication_HandleSQSEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		records      func(t *testing.T) []events.SQSMessage
		setup        func(m *mocks.MockEmailService)
		wantFailures []string
	}{
		{
			name: "all delivered",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{
					sqsRecord(t, "m-1", shippedMessage("n-1", "ayesha@example.com")),
					sqsRecord(t, "m-2", shippedMessage("n-2", "bilal@example.com")),
				}
			},
			setup: func(m *mocks.MockEmailService) {
				m.EXPECT().SendTemplate(gomock.Any(), gomock.Any()).Return("email-id", nil).Times(2)
			},
		},
		{
			name: "transient failure is retried",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{
					sqsRecord(t, "m-1", shippedMessage("n-1", "ayesha@example.com")),
					sqsRecord(t, "m-2", shippedMessage("n-2", "bilal@example.com")),
				}
			},
			setup: func(m *mocks.MockEmailService) {
				gomock.InOrder(
					m.EXPECT().SendTemplate(gomock.Any(), gomock.Any()).Return("email-id", nil),
					m.EXPECT().SendTemplate(gomock.Any(), gomock.Any()).Return("", errors.New("resend: 503")),
				)
			},
			wantFailures: []string{"m-2"},
		},
		{
			name: "malformed body is dropped",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{sqsRecord(t, "m-1", "{not json")}
			},
		},
		{
			name: "unknown template is dropped",
			records: func(t *testing.T) []events.SQSMessage {
				msg := shippedMessage("n-1", "ayesha@example.com")
				msg.Template = "postcard"
				return []events.SQSMessage{sqsRecord(t, "m-1", msg)}
			},
			setup: func(m *mocks.MockEmailService) {
				m.EXPECT().SendTemplate(gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("%w: %q", services.ErrUnknownTemplate, "postcard"))
			},
		},
		{
			name: "missing recipient is dropped",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{sqsRecord(t, "m-1", shippedMessage("n-1", ""))}
			},
			setup: func(m *mocks.MockEmailService) {
				m.EXPECT().SendTemplate(gomock.Any(), gomock.Any()).Return("", services.ErrMissingRecipient)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			emailService := mocks.NewMockEmailService(ctrl)
			if tt.setup != nil {
				tt.setup(emailService)
			}
			app := NewApplication(emailService)

			resp, err := app.HandleSQSEvent(ctx, events.SQSEvent{Records: tt.records(t)})
			require.NoError(t, err)

			got := make([]string, 0, len(resp.BatchItemFailures))
			for _, f := range resp.BatchItemFailures {
				got = append(got, f.ItemIdentifier)
			}
			if len(tt.wantFailures) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantFailures, got)
		})
	}
}

func TestApplication_PassesMessageThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	emailService := mocks.NewMockEmailService(ctrl)
	want := shippedMessage("n-7", "ayesha@example.com")

	emailService.EXPECT().SendTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg business.NotificationMessage, _ ...business.EmailAttachment) (string, error) {
			assert.Equal(t, want.ID, msg.ID)
			assert.Equal(t, want.Template, msg.Template)
			assert.Equal(t, want.RecipientEmail, msg.RecipientEmail)
			assert.Equal(t, "RG-20261019-AB12", msg.Data["order_number"])
			return "email-id", nil
		})

	resp, err := NewApplication(emailService).HandleSQSEvent(context.Background(), events.SQSEvent{
		Records: []events.SQSMessage{sqsRecord(t, "m-7", want)},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
}
