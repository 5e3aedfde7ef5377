package interfaces

import (
	"context"

	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
)

// PaymentGateway creates and inspects card payments
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, params params.CreatePaymentIntentParams) (*business.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*business.PaymentIntent, error)
	ParseWebhook(payload []byte, signature string) (*business.PaymentEvent, error)
}

// EmailSender delivers a rendered email and returns the provider message id
type EmailSender interface {
	Send(ctx context.Context, params params.SendEmailParams) (string, error)
}

// NotificationPublisher puts a notification on the queue for asynchronous delivery
type NotificationPublisher interface {
	Publish(ctx context.Context, msg business.NotificationMessage) error
}

// SecretsProvider resolves secrets from AWS Secrets Manager or the environment
type SecretsProvider interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// AdminTokenValidator checks a bearer token issued by the auth provider
type AdminTokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*business.AdminUser, error)
}

// TxRunner runs fn with a querier bound to a single database transaction
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q db.Querier) error) error
}

// SessionStore is the session-scoped key value cache for carts and questionnaires
type SessionStore interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Put(ctx context.Context, key string, value any) error
	Clear(ctx context.Context, key string) error
}
