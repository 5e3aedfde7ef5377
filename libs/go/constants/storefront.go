package constants

// Subscription tiers
const (
	TierOneTime     = "one-time"
	TierThreeMonths = "3-months"
	TierSixMonths   = "6-months"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods
const (
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Payment statuses
const (
	PaymentStatusPending          = "pending"
	PaymentStatusAwaitingTransfer = "awaiting_transfer"
	PaymentStatusPaid             = "paid"
	PaymentStatusFailed           = "failed"
	PaymentStatusRefunded         = "refunded"
)

// Gift card statuses
const (
	GiftStatusActive   = "active"
	GiftStatusRedeemed = "redeemed"
)

// Session store key prefixes
const (
	CartSessionPrefix = "cart"
	FormSessionPrefix = "regime-form"
)

// Order number prefixes
const (
	OrderNumberPrefix = "RG"
	GiftCodePrefix    = "GIFT"
)

// Cart limits
const (
	MaxCartLineQuantity = 10
	MaxCartLines        = 20
)
