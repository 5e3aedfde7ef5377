package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// sqsAPI is the part of the SQS client we use
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher puts notifications on the queue read by the notification processor
type SQSPublisher struct {
	svc      sqsAPI
	queueURL string
}

// NewSQSPublisher creates a publisher for queueURL
func NewSQSPublisher(cfg aws.Config, queueURL string) *SQSPublisher {
	return &SQSPublisher{svc: sqs.NewFromConfig(cfg), queueURL: queueURL}
}

// Publish sends msg as a JSON message body
func (p *SQSPublisher) Publish(ctx context.Context, msg business.NotificationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	_, err = p.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"template": {DataType: aws.String("String"), StringValue: aws.String(string(msg.Template))},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send notification to queue: %w", err)
	}
	return nil
}
