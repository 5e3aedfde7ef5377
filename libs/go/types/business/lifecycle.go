package business

// LifecycleBundle is the presentation metadata attached to one order status
type LifecycleBundle struct {
	Status        string `json:"status"`
	Label         string `json:"label"`
	TimelineLabel string `json:"timeline_label"`
	Icon          string `json:"icon"`
	ColorClass    string `json:"color_class"`
	Description   string `json:"description"`
	NextSteps     string `json:"next_steps"`
}

// StageState is how a timeline stage renders relative to the current status
type StageState string

const (
	StageCompleted StageState = "completed"
	StageActive    StageState = "active"
	StageUpcoming  StageState = "upcoming"
)

// TimelineStage is one of the four happy-path stages
type TimelineStage struct {
	Status OrderStatus `json:"status"`
	Label  string      `json:"label"`
	State  StageState  `json:"state"`
}

// Timeline is either the ranked four-stage view or, for cancelled orders, a single notice
type Timeline struct {
	Status             string          `json:"status"`
	Cancelled          bool            `json:"cancelled"`
	Stages             []TimelineStage `json:"stages,omitempty"`
	CancellationNotice string          `json:"cancellation_notice,omitempty"`
}

// EmailTemplate keys a transactional email
type EmailTemplate string

const (
	TemplateOrderConfirmation        EmailTemplate = "order_confirmation"
	TemplateOrderProcessing          EmailTemplate = "order_processing"
	TemplateOrderShipped             EmailTemplate = "order_shipped"
	TemplateOrderCompleted           EmailTemplate = "order_completed"
	TemplateOrderCancelled           EmailTemplate = "order_cancelled"
	TemplateGiftCard                 EmailTemplate = "gift_card"
	TemplateBankTransferInstructions EmailTemplate = "bank_transfer_instructions"
	TemplateSubscriberWelcome        EmailTemplate = "subscriber_welcome"
)

// IsValid reports whether the template key is known
func (t EmailTemplate) IsValid() bool {
	switch t {
	case TemplateOrderConfirmation, TemplateOrderProcessing, TemplateOrderShipped, TemplateOrderCompleted,
		TemplateOrderCancelled, TemplateGiftCard, TemplateBankTransferInstructions, TemplateSubscriberWelcome:
		return true
	}
	return false
}
