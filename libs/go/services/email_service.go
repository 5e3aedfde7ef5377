package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

var (
	ErrUnknownTemplate  = errors.New("unknown email template")
	ErrMissingRecipient = errors.New("email recipient is required")
)

const (
	defaultEmailRetries       = 3
	defaultEmailRetryInterval = 500 * time.Millisecond
	giftQRCodeSize            = 256
)

// EmailBranding is shown in every email
type EmailBranding struct {
	ShopName     string
	SupportEmail string
}

type compiledEmailTemplate struct {
	subject *texttemplate.Template
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

var compiledEmailTemplates = compileEmailTemplates()

func compileEmailTemplates() map[business.EmailTemplate]compiledEmailTemplate {
	compiled := make(map[business.EmailTemplate]compiledEmailTemplate, len(emailTemplateSources))
	for key, src := range emailTemplateSources {
		name := string(key)
		html := htmltemplate.Must(htmltemplate.New(name).Parse(emailLayout))
		compiled[key] = compiledEmailTemplate{
			subject: texttemplate.Must(texttemplate.New(name + "_subject").Parse(src.Subject)),
			html:    htmltemplate.Must(html.Parse(src.HTML)),
			text:    texttemplate.Must(texttemplate.New(name + "_text").Parse(src.Text)),
		}
	}
	return compiled
}

// EmailOption configures an EmailService
type EmailOption func(*EmailService)

// WithEmailRetry overrides how often and how fast a failed send is retried
func WithEmailRetry(maxRetries uint64, initialInterval time.Duration) EmailOption {
	return func(s *EmailService) {
		s.maxRetries = maxRetries
		s.retryInterval = initialInterval
	}
}

// EmailService renders transactional emails and hands them to the email provider
type EmailService struct {
	sender        interfaces.EmailSender
	branding      EmailBranding
	maxRetries    uint64
	retryInterval time.Duration
	logger        *zap.Logger
}

// NewEmailService creates a new email service
func NewEmailService(sender interfaces.EmailSender, branding EmailBranding, opts ...EmailOption) *EmailService {
	s := &EmailService{
		sender:        sender,
		branding:      branding,
		maxRetries:    defaultEmailRetries,
		retryInterval: defaultEmailRetryInterval,
		logger:        logger.Log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render fills in a template. Branding keys are added unless data sets them.
func (s *EmailService) Render(tmpl business.EmailTemplate, data map[string]any) (*business.RenderedEmail, error) {
	compiled, ok := compiledEmailTemplates[tmpl]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, tmpl)
	}

	merged := make(map[string]any, len(data)+2)
	merged["shop_name"] = s.branding.ShopName
	merged["support_email"] = s.branding.SupportEmail
	for k, v := range data {
		merged[k] = v
	}

	var subject, html, text bytes.Buffer
	if err := compiled.subject.Execute(&subject, merged); err != nil {
		return nil, fmt.Errorf("failed to render %s subject: %w", tmpl, err)
	}
	if err := compiled.html.Execute(&html, merged); err != nil {
		return nil, fmt.Errorf("failed to render %s html: %w", tmpl, err)
	}
	if err := compiled.text.Execute(&text, merged); err != nil {
		return nil, fmt.Errorf("failed to render %s text: %w", tmpl, err)
	}

	return &business.RenderedEmail{
		Subject: subject.String(),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

// SendTemplate renders msg and delivers it, retrying provider failures with
// exponential backoff. Gift card emails get a QR code of the redeem link attached.
func (s *EmailService) SendTemplate(ctx context.Context, msg business.NotificationMessage, attachments ...business.EmailAttachment) (string, error) {
	if msg.RecipientEmail == "" {
		return "", ErrMissingRecipient
	}
	data := make(map[string]any, len(msg.Data)+1)
	data["recipient_name"] = msg.RecipientName
	for k, v := range msg.Data {
		data[k] = v
	}

	rendered, err := s.Render(msg.Template, data)
	if err != nil {
		return "", err
	}

	if msg.Template == business.TemplateGiftCard {
		if redeemURL, ok := data["redeem_url"].(string); ok && redeemURL != "" {
			png, err := qrcode.Encode(redeemURL, qrcode.Medium, giftQRCodeSize)
			if err != nil {
				return "", fmt.Errorf("failed to generate gift QR code: %w", err)
			}
			attachments = append(attachments, business.EmailAttachment{
				Filename:    "gift-qr.png",
				ContentType: "image/png",
				Content:     png,
			})
		}
	}

	refID := msg.ID
	if refID == "" {
		refID = uuid.New().String()
	}
	sendParams := params.SendEmailParams{
		To:       []string{msg.RecipientEmail},
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTML,
		TextBody: rendered.Text,
		ReplyTo:  s.branding.SupportEmail,
		Headers: map[string]string{
			"X-Entity-Ref-ID": refID,
		},
		Tags: map[string]string{
			"category": "transactional",
			"template": string(msg.Template),
		},
		Attachments: attachments,
	}

	log := logger.FromContext(ctx).With(
		zap.String("template", string(msg.Template)),
		zap.String("notification_id", refID),
	)

	var emailID string
	attempt := 0
	operation := func() error {
		attempt++
		id, err := s.sender.Send(ctx, sendParams)
		if err != nil {
			log.Warn("email send attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		emailID = id
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryInterval
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, s.maxRetries), ctx)); err != nil {
		log.Error("failed to send email", zap.Int("attempts", attempt), zap.Error(err))
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	log.Info("email sent", zap.String("email_id", emailID), zap.Int("attempts", attempt))
	return emailID, nil
}
