package services

import "github.com/regime-co/regime-api/libs/go/types/business"

// emailTemplateSource holds the raw sources of one transactional email. Subject and
// Text are text/template sources; HTML is an html/template block named "content"
// rendered inside emailLayout.
type emailTemplateSource struct {
	Subject string
	HTML    string
	Text    string
}

const emailLayout = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f7ede8; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .button { display: inline-block; padding: 10px 20px; background-color: #b5838d; color: white; text-decoration: none; border-radius: 5px; }
        .box { background-color: #faf6f3; border: 1px solid #e5d4cc; padding: 10px; margin: 10px 0; }
        table.items { width: 100%; border-collapse: collapse; }
        table.items td { padding: 6px 0; border-bottom: 1px solid #eee; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>{{.shop_name}}</h2>
        </div>
        <div class="content">
{{template "content" .}}
            <p>Questions? Reply to this email or write to {{.support_email}}.</p>
        </div>
        <div class="footer">
            <p>{{.shop_name}}</p>
        </div>
    </div>
</body>
</html>`

const orderItemsHTML = `
            <table class="items">
                {{range .items}}<tr><td>{{.name}} ({{.tier}}) x {{.quantity}}</td><td align="right">{{.line_total}}</td></tr>
                {{end}}<tr><td>Subtotal</td><td align="right">{{.subtotal}}</td></tr>
                {{if .discount}}<tr><td>Discount</td><td align="right">-{{.discount}}</td></tr>
                {{end}}<tr><td><strong>Total</strong></td><td align="right"><strong>{{.total}}</strong></td></tr>
            </table>`

const orderItemsText = `{{range .items}}{{.name}} ({{.tier}}) x {{.quantity}}: {{.line_total}}
{{end}}Subtotal: {{.subtotal}}
{{if .discount}}Discount: -{{.discount}}
{{end}}Total: {{.total}}`

const statusHTML = `{{define "content"}}
            <p>Hi {{.customer_name}},</p>
            <div class="box">
                <p><strong>{{.status_label}}</strong></p>
                <p>{{.status_description}}</p>
            </div>
            <p>{{.next_steps}}</p>
            <p style="text-align: center;"><a href="{{.order_url}}" class="button">View order {{.order_number}}</a></p>
{{end}}`

const statusText = `Hi {{.customer_name}},

{{.status_label}}
{{.status_description}}

{{.next_steps}}

View order {{.order_number}}: {{.order_url}}

{{.shop_name}}`

var emailTemplateSources = map[business.EmailTemplate]emailTemplateSource{
	business.TemplateOrderConfirmation: {
		Subject: `Your {{.shop_name}} order {{.order_number}}`,
		HTML: `{{define "content"}}
            <p>Hi {{.customer_name}},</p>
            <p>Thank you for your order! We've received order <strong>{{.order_number}}</strong> and will start preparing your regime soon.</p>` + orderItemsHTML + `
            <p>Payment: {{.payment_method}}</p>
            <p style="text-align: center;"><a href="{{.order_url}}" class="button">Track your order</a></p>
{{end}}`,
		Text: `Hi {{.customer_name}},

Thank you for your order! We've received order {{.order_number}} and will start preparing your regime soon.

` + orderItemsText + `

Payment: {{.payment_method}}

Track your order: {{.order_url}}

{{.shop_name}}`,
	},
	business.TemplateBankTransferInstructions: {
		Subject: `Payment details for order {{.order_number}}`,
		HTML: `{{define "content"}}
            <p>Hi {{.customer_name}},</p>
            <p>Please transfer <strong>{{.total}}</strong> to the account below. We'll start preparing your order as soon as the payment arrives.</p>
            <div class="box">
                <p>Bank: {{.bank_name}}<br>
                Account title: {{.account_title}}<br>
                Account number: {{.account_number}}<br>
                IBAN: {{.iban}}<br>
                Reference: <strong>{{.reference}}</strong></p>
            </div>
            <p>Please use the reference exactly as shown so we can match your payment.</p>
{{end}}`,
		Text: `Hi {{.customer_name}},

Please transfer {{.total}} to the account below. We'll start preparing your order as soon as the payment arrives.

Bank: {{.bank_name}}
Account title: {{.account_title}}
Account number: {{.account_number}}
IBAN: {{.iban}}
Reference: {{.reference}}

Please use the reference exactly as shown so we can match your payment.

{{.shop_name}}`,
	},
	business.TemplateOrderProcessing: {
		Subject: `We're preparing order {{.order_number}}`,
		HTML:    statusHTML,
		Text:    statusText,
	},
	business.TemplateOrderShipped: {
		Subject: `Order {{.order_number}} is on its way`,
		HTML:    statusHTML,
		Text:    statusText,
	},
	business.TemplateOrderCompleted: {
		Subject: `Order {{.order_number}} has been delivered`,
		HTML:    statusHTML,
		Text:    statusText,
	},
	business.TemplateOrderCancelled: {
		Subject: `Order {{.order_number}} has been cancelled`,
		HTML:    statusHTML,
		Text:    statusText,
	},
	business.TemplateGiftCard: {
		Subject: `{{.purchaser_name}} sent you a {{.regime_name}} gift`,
		HTML: `{{define "content"}}
            <p>Hi {{.recipient_name}},</p>
            <p><strong>{{.purchaser_name}}</strong> has gifted you <strong>{{.regime_name}}</strong> ({{.tier}}).</p>
            {{if .message}}<div class="box"><p>{{.message}}</p></div>{{end}}
            <p>Your gift code is <strong>{{.code}}</strong>. Scan the attached QR code or use the button below to redeem it.</p>
            <p style="text-align: center;"><a href="{{.redeem_url}}" class="button">Redeem your gift</a></p>
{{end}}`,
		Text: `Hi {{.recipient_name}},

{{.purchaser_name}} has gifted you {{.regime_name}} ({{.tier}}).
{{if .message}}
"{{.message}}"
{{end}}
Your gift code is {{.code}}. Redeem it here: {{.redeem_url}}

{{.shop_name}}`,
	},
	business.TemplateSubscriberWelcome: {
		Subject: `Welcome to the {{.shop_name}} newsletter`,
		HTML: `{{define "content"}}
            <p>Hi,</p>
            <p>You are on the list. We will write when new regimes launch and when offers go live.</p>
            <p style="font-size: 12px;">Changed your mind? <a href="{{.unsubscribe_url}}">Unsubscribe</a> at any time.</p>
{{end}}`,
		Text: `Hi,

You are on the list. We will write when new regimes launch and when offers go live.

Changed your mind? Unsubscribe here: {{.unsubscribe_url}}

{{.shop_name}}`,
	},
}
