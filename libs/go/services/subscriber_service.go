package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	ErrInvalidEmail           = errors.New("invalid email address")
	ErrSubscriberNotFound     = errors.New("subscriber not found")
	ErrUnsubscribeUnavailable = errors.New("unsubscribe links are not configured")
)

// SubscriberService manages the newsletter list. Public unsubscribes need a token
// signed by tokens; without a signer only admins can remove addresses.
type SubscriberService struct {
	queries  db.Querier
	tokens   *helpers.UnsubscribeTokens
	notifier interfaces.NotificationDispatcher
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSubscriberService creates a new subscriber service. tokens and notifier may be nil.
func NewSubscriberService(queries db.Querier, tokens *helpers.UnsubscribeTokens, notifier interfaces.NotificationDispatcher) *SubscriberService {
	return &SubscriberService{
		queries:  queries,
		tokens:   tokens,
		notifier: notifier,
		validate: helpers.NewValidator(),
		logger:   logger.Log,
	}
}

// Subscribe adds an email to the list. Subscribing again reactivates a lapsed address.
// The welcome email goes out only when the address was not already active.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*business.Subscriber, error) {
	normalized, err := s.normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	row, err := s.queries.UpsertSubscriber(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to save subscriber: %w", err)
	}
	s.logger.Info("newsletter subscription",
		zap.String("subscriber_id", row.ID.String()),
		zap.Bool("already_active", row.WasActive))

	subscriber := helpers.SubscriberFromRow(db.Subscriber{
		ID:        row.ID,
		Email:     row.Email,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	})
	if !row.WasActive {
		s.welcome(ctx, subscriber)
	}
	return &subscriber, nil
}

// Unsubscribe deactivates an email without deleting it. token must come from the
// subscriber's unsubscribe link.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email, token string) error {
	normalized, err := s.normalizeEmail(email)
	if err != nil {
		return err
	}
	if s.tokens == nil {
		return ErrUnsubscribeUnavailable
	}
	if err := s.tokens.Verify(token, normalized); err != nil {
		s.logger.Warn("rejected unsubscribe", zap.Error(err))
		return helpers.ErrInvalidUnsubscribeToken
	}
	if _, err := s.queries.DeactivateSubscriber(ctx, normalized); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

// List returns a page of subscribers, newest first
func (s *SubscriberService) List(ctx context.Context, p params.ListParams) ([]business.Subscriber, int64, error) {
	rows, err := s.queries.ListSubscribers(ctx, db.ListSubscribersParams{Limit: p.Limit, Offset: p.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}
	total, err := s.queries.CountSubscribers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return lo.Map(rows, func(row db.Subscriber, _ int) business.Subscriber {
		return helpers.SubscriberFromRow(row)
	}), total, nil
}

// Delete removes a subscriber entirely
func (s *SubscriberService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.queries.DeleteSubscriber(ctx, id); err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}

// welcome sends the sign-up email. Failures are logged; the subscription stands.
func (s *SubscriberService) welcome(ctx context.Context, subscriber business.Subscriber) {
	if s.tokens == nil || s.notifier == nil {
		return
	}
	token, err := s.tokens.Sign(subscriber.Email)
	if err != nil {
		s.logger.Error("failed to sign unsubscribe token", zap.Error(err))
		return
	}
	if err := s.notifier.SubscriberWelcome(ctx, subscriber, token); err != nil {
		s.logger.Error("failed to send welcome email",
			zap.String("subscriber_id", subscriber.ID.String()), zap.Error(err))
	}
}

func (s *SubscriberService) normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(normalized, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
