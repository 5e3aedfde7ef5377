package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/services"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"go.uber.org/zap"
)

// errPermanent marks records that will never succeed on redelivery
var errPermanent = errors.New("permanent notification failure")

// Application holds the processor dependencies
type Application struct {
	email  interfaces.EmailService
	logger *zap.Logger
}

// NewApplication creates the processor around an email service
func NewApplication(email interfaces.EmailService) *Application {
	return &Application{
		email:  email,
		logger: logger.Named(logger.ComponentWorker),
	}
}

// HandleSQSEvent sends one email per record. Records that fail transiently are
// reported back so SQS redelivers only those; malformed records are dropped.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	app.logger.Info("Notification processor handling SQS event", zap.Int("record_count", len(event.Records)))

	var response events.SQSEventResponse
	sent, dropped := 0, 0
	for _, record := range event.Records {
		err := app.processRecord(ctx, record)
		switch {
		case err == nil:
			sent++
		case errors.Is(err, errPermanent):
			dropped++
			app.logger.Error("Dropping notification",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
		default:
			app.logger.Warn("Notification delivery failed, will retry",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	app.logger.Info("Notification processing completed",
		zap.Int("total", len(event.Records)),
		zap.Int("sent", sent),
		zap.Int("dropped", dropped),
		zap.Int("retrying", len(response.BatchItemFailures)))

	return response, nil
}

func (app *Application) processRecord(ctx context.Context, record events.SQSMessage) error {
	var msg business.NotificationMessage
	if err := json.Unmarshal([]byte(record.Body), &msg); err != nil {
		return fmt.Errorf("%w: unmarshal error: %v", errPermanent, err)
	}
	if msg.CorrelationID != "" {
		ctx = logger.WithCorrelationID(ctx, msg.CorrelationID)
	}

	emailID, err := app.email.SendTemplate(ctx, msg)
	if err != nil {
		if errors.Is(err, services.ErrUnknownTemplate) || errors.Is(err, services.ErrMissingRecipient) {
			return fmt.Errorf("%w: %v", errPermanent, err)
		}
		return fmt.Errorf("failed to send %s email: %w", msg.Template, err)
	}

	logger.FromContext(ctx).Info("Notification sent",
		zap.String("notification_id", msg.ID),
		zap.String("template", string(msg.Template)),
		zap.String("email_id", emailID))
	return nil
}
