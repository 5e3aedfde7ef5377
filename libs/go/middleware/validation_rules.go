package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/regime-co/regime-api/libs/go/constants"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
)

const defaultMaxBodySize = 64 * 1024

var tierValues = []string{constants.TierOneTime, constants.TierThreeMonths, constants.TierSixMonths}

var paymentMethodValues = []string{constants.PaymentMethodCard, constants.PaymentMethodBankTransfer}

var customerRules = []ValidationRule{
	{Field: "name", Type: "string", Required: true, MinLength: 1, MaxLength: 120, Sanitize: true},
	{Field: "email", Type: "email", Required: true, MaxLength: 255},
	{Field: "phone", Type: "string", Required: true, Pattern: PhoneRegex.String()},
}

var addressRules = []ValidationRule{
	{Field: "line1", Type: "string", Required: true, MaxLength: 200, Sanitize: true},
	{Field: "line2", Type: "string", MaxLength: 200, Sanitize: true},
	{Field: "city", Type: "string", Required: true, MaxLength: 100, Sanitize: true},
	{Field: "province", Type: "string", MaxLength: 100, Sanitize: true},
	{Field: "postal_code", Type: "string", MaxLength: 20, Sanitize: true},
	{Field: "country", Type: "string", Required: true, MaxLength: 100, Sanitize: true},
}

var tierPricingRules = []ValidationRule{
	{Field: "price", Type: "number", Required: true, Min: float64Ptr(0)},
	{Field: "discount_percent", Type: "integer", Min: float64Ptr(0), Max: float64Ptr(100)},
	{Field: "discount_reason", Type: "string", MaxLength: 120, Sanitize: true},
}

// CheckoutValidation guards order placement
var CheckoutValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "customer", Type: "object", Required: true, Fields: customerRules},
		{Field: "shipping", Type: "object", Required: true, Fields: addressRules},
		{Field: "payment_method", Type: "string", Required: true, AllowedValues: paymentMethodValues},
		{Field: "notes", Type: "string", MaxLength: 1000, Sanitize: true},
		{Field: "form_regime_id", Type: "uuid"},
	},
}

// PurchaseGiftValidation guards gift card purchases
var PurchaseGiftValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "regime_id", Type: "uuid", Required: true},
		{Field: "tier", Type: "string", Required: true, AllowedValues: tierValues},
		{Field: "purchaser", Type: "object", Required: true, Fields: customerRules},
		{Field: "billing", Type: "object", Required: true, Fields: addressRules},
		{Field: "recipient_name", Type: "string", Required: true, MaxLength: 120, Sanitize: true},
		{Field: "recipient_email", Type: "email", Required: true, MaxLength: 255},
		{Field: "message", Type: "string", MaxLength: 500, Sanitize: true},
		{Field: "payment_method", Type: "string", Required: true, AllowedValues: paymentMethodValues},
	},
}

// RedeemGiftValidation guards gift card redemption. Questionnaire answers are
// checked by the form wizard rules.
var RedeemGiftValidation = ValidationConfig{
	MaxBodySize: defaultMaxBodySize,
	Rules: []ValidationRule{
		{Field: "customer", Type: "object", Required: true, Fields: customerRules},
		{Field: "shipping", Type: "object", Required: true, Fields: addressRules},
		{Field: "answers", Type: "object"},
	},
}

// CartItemValidation guards adding and updating cart lines
var CartItemValidation = ValidationConfig{
	MaxBodySize: 4 * 1024,
	Rules: []ValidationRule{
		{Field: "regime_id", Type: "uuid", Required: true},
		{Field: "tier", Type: "string", Required: true, AllowedValues: tierValues},
		{Field: "quantity", Type: "integer", Min: float64Ptr(0), Max: float64Ptr(constants.MaxCartLineQuantity)},
	},
}

// CreateReviewValidation guards public review submission
var CreateReviewValidation = ValidationConfig{
	MaxBodySize: 8 * 1024,
	Rules: []ValidationRule{
		{Field: "customer_name", Type: "string", Required: true, MinLength: 1, MaxLength: 120, Sanitize: true},
		{Field: "rating", Type: "integer", Required: true, Min: float64Ptr(1), Max: float64Ptr(5)},
		{Field: "comment", Type: "string", Required: true, MinLength: 1, MaxLength: 1000, Sanitize: true},
	},
}

// SubscribeValidation guards newsletter sign-ups
var SubscribeValidation = ValidationConfig{
	MaxBodySize: 1024,
	Rules: []ValidationRule{
		{Field: "email", Type: "email", Required: true, MaxLength: 255},
	},
}

// RegimeValidation guards admin regime create and update
var RegimeValidation = ValidationConfig{
	MaxBodySize: 256 * 1024,
	Rules: []ValidationRule{
		{Field: "name", Type: "string", Required: true, MinLength: 1, MaxLength: 120, Sanitize: true},
		{Field: "slug", Type: "string", Required: true, MaxLength: 120, Pattern: SlugRegex.String()},
		{Field: "description", Type: "string", MaxLength: 5000, Sanitize: true},
		{
			Field: "image_url",
			Type:  "string",
			Custom: func(value any) error {
				str, _ := value.(string)
				if str != "" && !URLRegex.MatchString(str) {
					return fmt.Errorf("must be a valid URL")
				}
				return nil
			},
		},
		{Field: "step_count", Type: "integer", Required: true, Custom: func(value any) error {
			switch value.(float64) {
			case 3, 5, 7:
				return nil
			}
			return fmt.Errorf("must be one of: 3, 5, 7")
		}},
		{Field: "items", Type: "array"},
		{Field: "active", Type: "boolean"},
		{Field: "one_time", Type: "object", Required: true, Fields: tierPricingRules},
		{Field: "three_months", Type: "object", Required: true, Fields: tierPricingRules},
		{Field: "six_months", Type: "object", Required: true, Fields: tierPricingRules},
	},
}

// DiscountCodeValidation guards admin discount code create and update
var DiscountCodeValidation = ValidationConfig{
	MaxBodySize: 4 * 1024,
	Rules: []ValidationRule{
		{Field: "code", Type: "string", Required: true, MinLength: 3, MaxLength: 50, Pattern: `^[A-Za-z0-9_-]+$`},
		{Field: "percentage_off", Type: "integer", Required: true, Min: float64Ptr(1), Max: float64Ptr(100)},
		{Field: "description", Type: "string", MaxLength: 500, Sanitize: true},
		{Field: "is_recurring", Type: "boolean"},
		{Field: "is_active", Type: "boolean"},
	},
}

// ListQueryValidation guards admin list endpoints
var ListQueryValidation = ValidationConfig{
	AllowUnknownFields: true,
	Rules: []ValidationRule{
		{Field: "page", Type: "integer", Min: float64Ptr(1)},
		{Field: "limit", Type: "integer", Min: float64Ptr(1), Max: float64Ptr(100)},
		{Field: "status", Type: "string", AllowedValues: []string{
			constants.OrderStatusPending,
			constants.OrderStatusProcessing,
			constants.OrderStatusShipped,
			constants.OrderStatusCompleted,
			constants.OrderStatusCancelled,
		}},
	},
}

// ValidateQueryParams validates URL query parameters. Numeric values are parsed
// so number rules apply to them.
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := make(map[string]any)
		for key, values := range c.Request.URL.Query() {
			if len(values) == 0 {
				continue
			}
			if num, err := strconv.ParseFloat(values[0], 64); err == nil {
				params[key] = num
			} else {
				params[key] = values[0]
			}
		}

		errs := validateFields(params, config.Rules, config.AllowUnknownFields, "")
		if len(errs) > 0 {
			logger.FromContext(c.Request.Context()).Debug("query validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errs),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: errs})
			return
		}

		c.Set("validatedQuery", params)
		c.Next()
	}
}
