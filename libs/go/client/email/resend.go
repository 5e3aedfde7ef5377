package email

import (
	"context"
	"fmt"
	"sort"

	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/api/params"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// emailsAPI is the part of the Resend emails service we use
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers rendered emails through Resend
type ResendSender struct {
	emails emailsAPI
	from   string
	logger *zap.Logger
}

// NewResendSender creates a sender that sends as "fromName <fromEmail>"
func NewResendSender(apiKey, fromEmail, fromName string) *ResendSender {
	client := resend.NewClient(apiKey)
	return &ResendSender{
		emails: client.Emails,
		from:   formatFrom(fromEmail, fromName),
		logger: logger.Named(logger.ComponentNotification),
	}
}

// Send delivers the email and returns the Resend message id
func (s *ResendSender) Send(ctx context.Context, p params.SendEmailParams) (string, error) {
	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      p.To,
		Subject: p.Subject,
		Html:    p.HTMLBody,
		Text:    p.TextBody,
		ReplyTo: p.ReplyTo,
		Headers: p.Headers,
		Tags:    convertToResendTags(p.Tags),
	}
	for _, a := range p.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		})
	}

	sent, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.Strings("to", p.To),
			zap.String("subject", p.Subject))
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent successfully",
		zap.String("email_id", sent.Id),
		zap.Strings("to", p.To),
		zap.Int("attachments", len(req.Attachments)))
	return sent.Id, nil
}

// LogSender writes emails to the log instead of sending them. Used locally when no
// Resend key is configured.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a LogSender
func NewLogSender() *LogSender {
	return &LogSender{logger: logger.Named(logger.ComponentNotification)}
}

// Send logs the email and returns a placeholder id
func (s *LogSender) Send(_ context.Context, p params.SendEmailParams) (string, error) {
	s.logger.Info("email delivery disabled, logging instead",
		zap.Strings("to", p.To),
		zap.String("subject", p.Subject),
		zap.String("text", p.TextBody))
	return "logged", nil
}

func formatFrom(email, name string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// convertToResendTags keeps tag order stable so sends are reproducible
func convertToResendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]resend.Tag, 0, len(tags))
	for _, name := range names {
		out = append(out, resend.Tag{Name: name, Value: tags[name]})
	}
	return out
}
