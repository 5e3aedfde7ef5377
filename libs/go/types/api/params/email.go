package params

import "github.com/regime-co/regime-api/libs/go/types/business"

// SendEmailParams is a rendered email ready for delivery
type SendEmailParams struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	ReplyTo     string
	Headers     map[string]string
	Tags        map[string]string
	Attachments []business.EmailAttachment
}
