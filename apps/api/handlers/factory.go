package handlers

import (
	"context"

	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	// Services
	pricingService    interfaces.PricingService
	lifecycle         interfaces.OrderLifecycle
	regimeService     interfaces.RegimeService
	regimeFormService interfaces.RegimeFormService
	cartService       interfaces.CartService
	checkoutService   interfaces.CheckoutService
	discountService   interfaces.DiscountService
	giftService       interfaces.GiftService
	orderService      interfaces.OrderService
	reviewService     interfaces.ReviewService
	subscriberService interfaces.SubscriberService

	// External clients
	paymentGateway interfaces.PaymentGateway
	pinger         Pinger

	// Configuration
	stage   string
	version string

	// Logger
	logger *zap.Logger
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	// Services - pass concrete implementations that satisfy the interfaces
	PricingService    interfaces.PricingService
	OrderLifecycle    interfaces.OrderLifecycle
	RegimeService     interfaces.RegimeService
	RegimeFormService interfaces.RegimeFormService
	CartService       interfaces.CartService
	CheckoutService   interfaces.CheckoutService
	DiscountService   interfaces.DiscountService
	GiftService       interfaces.GiftService
	OrderService      interfaces.OrderService
	ReviewService     interfaces.ReviewService
	SubscriberService interfaces.SubscriberService

	// External clients. PaymentGateway is nil when card payments are disabled.
	PaymentGateway interfaces.PaymentGateway
	DBPinger       Pinger

	// Configuration
	Stage   string
	Version string

	// Logger
	Logger *zap.Logger
}

// NewHandlerFactory creates a new handler factory with all dependencies
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	if config.Logger == nil {
		config.Logger = logger.Named(logger.ComponentAPI)
	}

	return &HandlerFactory{
		pricingService:    config.PricingService,
		lifecycle:         config.OrderLifecycle,
		regimeService:     config.RegimeService,
		regimeFormService: config.RegimeFormService,
		cartService:       config.CartService,
		checkoutService:   config.CheckoutService,
		discountService:   config.DiscountService,
		giftService:       config.GiftService,
		orderService:      config.OrderService,
		reviewService:     config.ReviewService,
		subscriberService: config.SubscriberService,
		paymentGateway:    config.PaymentGateway,
		pinger:            config.DBPinger,
		stage:             config.Stage,
		version:           config.Version,
		logger:            config.Logger,
	}
}

// Handler creation methods

// NewHealthHandler creates a new health handler
func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler(f.pinger, f.stage, f.version)
}

// NewRegimeHandler creates a new regime handler
func (f *HandlerFactory) NewRegimeHandler() *RegimeHandler {
	return NewRegimeHandler(f.regimeService, f.pricingService)
}

// NewRegimeFormHandler creates a new regime form handler
func (f *HandlerFactory) NewRegimeFormHandler() *RegimeFormHandler {
	return NewRegimeFormHandler(f.regimeFormService)
}

// NewCartHandler creates a new cart handler
func (f *HandlerFactory) NewCartHandler() *CartHandler {
	return NewCartHandler(f.cartService)
}

// NewCheckoutHandler creates a new checkout handler
func (f *HandlerFactory) NewCheckoutHandler() *CheckoutHandler {
	return NewCheckoutHandler(f.checkoutService)
}

// NewWebhookHandler creates a new payment webhook handler
func (f *HandlerFactory) NewWebhookHandler() *WebhookHandler {
	return NewWebhookHandler(f.paymentGateway, f.checkoutService, f.logger.Named("webhook"))
}

// NewOrderHandler creates a new order handler
func (f *HandlerFactory) NewOrderHandler() *OrderHandler {
	return NewOrderHandler(f.orderService, f.lifecycle)
}

// NewGiftHandler creates a new gift handler
func (f *HandlerFactory) NewGiftHandler() *GiftHandler {
	return NewGiftHandler(f.giftService)
}

// NewReviewHandler creates a new review handler
func (f *HandlerFactory) NewReviewHandler() *ReviewHandler {
	return NewReviewHandler(f.reviewService)
}

// NewSubscriberHandler creates a new subscriber handler
func (f *HandlerFactory) NewSubscriberHandler() *SubscriberHandler {
	return NewSubscriberHandler(f.subscriberService)
}

// NewDiscountHandler creates a new discount code handler
func (f *HandlerFactory) NewDiscountHandler() *DiscountHandler {
	return NewDiscountHandler(f.discountService)
}
