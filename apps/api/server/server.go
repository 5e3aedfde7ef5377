package server

import (
	"context"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/regime-co/regime-api/apps/api/handlers"
	"github.com/regime-co/regime-api/libs/go/client/auth"
	awsclient "github.com/regime-co/regime-api/libs/go/client/aws"
	"github.com/regime-co/regime-api/libs/go/client/email"
	"github.com/regime-co/regime-api/libs/go/client/payment"
	appconfig "github.com/regime-co/regime-api/libs/go/config"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/middleware"
	"github.com/regime-co/regime-api/libs/go/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler     *handlers.HealthHandler
	regimeHandler     *handlers.RegimeHandler
	regimeFormHandler *handlers.RegimeFormHandler
	cartHandler       *handlers.CartHandler
	checkoutHandler   *handlers.CheckoutHandler
	webhookHandler    *handlers.WebhookHandler
	orderHandler      *handlers.OrderHandler
	giftHandler       *handlers.GiftHandler
	reviewHandler     *handlers.ReviewHandler
	subscriberHandler *handlers.SubscriberHandler
	discountHandler   *handlers.DiscountHandler

	// Database
	dbPool    *pgxpool.Pool
	dbQueries *db.Queries

	// Clients
	authClient *auth.AuthClient

	// Sessions
	sessionPurger *services.PostgresSessionStore

	// Rate limiting
	defaultLimiter *middleware.RateLimiter
	writeLimiter   *middleware.RateLimiter

	cfg *appconfig.Config
)

func InitializeHandlers() {
	ctx := context.Background()

	// --- AWS Secrets Manager Client ---
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal("Failed to load AWS config", zap.Error(err))
	}
	secretsClient := awsclient.NewSecretsManagerClient(awsCfg)

	// --- Configuration ---
	cfg, err = appconfig.Load(ctx, secretsClient)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.InitLogger(cfg.Stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", cfg.Stage))

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(cfg.Secrets.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = cfg.DBMaxConns
	poolConfig.MinConns = cfg.DBMinConns
	poolConfig.MaxConnLifetime = cfg.DBMaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.DBMaxConnIdleTime

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}
	dbQueries = db.New(dbPool)
	txRunner := helpers.NewPoolTxRunner(dbPool, cfg.DBTxRetries)

	// --- Session Store ---
	var sessions interfaces.SessionStore
	switch cfg.SessionBackend {
	case appconfig.SessionBackendMemory:
		logger.Warn("Using in-memory session store, carts and forms are lost on restart")
		sessions = services.NewMemorySessionStore(cfg.SessionTTL, cfg.SessionPurgeInt)
	default:
		sessionPurger = services.NewPostgresSessionStore(dbQueries, cfg.SessionTTL, logger.Named(logger.ComponentSessions))
		sessions = sessionPurger
	}

	// --- Payment Gateway ---
	var gateway interfaces.PaymentGateway
	if cfg.CardPaymentsEnabled() {
		gateway = payment.NewStripeGateway(cfg.Secrets.StripeSecretKey, cfg.Secrets.StripeWebhookSecret)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, card payments are disabled")
	}

	// --- Email ---
	var sender interfaces.EmailSender
	if cfg.Secrets.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.Secrets.ResendAPIKey, cfg.EmailFromAddress, cfg.EmailFromName)
	} else {
		logger.Warn("RESEND_API_KEY not set, emails are logged instead of sent")
		sender = email.NewLogSender()
	}
	emailService := services.NewEmailService(sender, services.EmailBranding{
		ShopName:     cfg.ShopName,
		SupportEmail: cfg.SupportEmail,
	})

	// --- Notification Queue ---
	var publisher interfaces.NotificationPublisher
	if cfg.NotificationQueueURL != "" {
		publisher = awsclient.NewSQSPublisher(awsCfg, cfg.NotificationQueueURL)
	} else {
		logger.Info("NOTIFICATION_QUEUE_URL not set, notifications are sent inline")
	}

	// --- Services ---
	bank := cfg.BankDetails()
	pricingService := services.NewPricingService()
	lifecycle := services.NewOrderLifecycleService()
	notifier := services.NewNotificationService(emailService, publisher, lifecycle, cfg.StorefrontURL)
	regimeService := services.NewRegimeService(dbQueries, pricingService)
	formService := services.NewRegimeFormService(sessions, regimeService)
	discountService := services.NewDiscountService(dbQueries)
	cartService := services.NewCartService(sessions, regimeService, pricingService, discountService)
	checkoutService := services.NewCheckoutService(dbQueries, txRunner, cartService, formService, discountService, gateway, notifier, bank)
	giftService := services.NewGiftService(dbQueries, txRunner, regimeService, pricingService, lifecycle, gateway, notifier, bank)
	orderService := services.NewOrderService(dbQueries, lifecycle, notifier)
	reviewService := services.NewReviewService(dbQueries, regimeService)
	var unsubscribeTokens *helpers.UnsubscribeTokens
	if cfg.Secrets.UnsubscribeSecret != "" {
		unsubscribeTokens = helpers.NewUnsubscribeTokens(cfg.Secrets.UnsubscribeSecret)
	} else {
		logger.Warn("UNSUBSCRIBE_SECRET not set, newsletter unsubscribes are admin only")
	}
	subscriberService := services.NewSubscriberService(dbQueries, unsubscribeTokens, notifier)

	// --- Auth Client ---
	var tokens interfaces.AdminTokenValidator
	if cfg.SupabaseURL != "" && cfg.Secrets.SupabaseServiceKey != "" {
		validator, err := auth.NewSupabaseValidator(cfg.SupabaseURL, cfg.Secrets.SupabaseServiceKey, cfg.AdminEmails)
		if err != nil {
			logger.Fatal("Failed to create Supabase validator", zap.Error(err))
		}
		tokens = validator
	} else {
		logger.Warn("Supabase not configured, admin routes accept the API key only")
	}
	if tokens == nil && cfg.AdminAPIKeyHash == "" {
		logger.Warn("No admin credentials configured, admin routes will reject every request")
	}
	authClient = auth.NewAuthClient(tokens, cfg.AdminAPIKeyHash)

	// Create the handler factory with all dependencies
	handlerFactory := handlers.NewHandlerFactory(handlers.HandlerFactoryConfig{
		PricingService:    pricingService,
		OrderLifecycle:    lifecycle,
		RegimeService:     regimeService,
		RegimeFormService: formService,
		CartService:       cartService,
		CheckoutService:   checkoutService,
		DiscountService:   discountService,
		GiftService:       giftService,
		OrderService:      orderService,
		ReviewService:     reviewService,
		SubscriberService: subscriberService,
		PaymentGateway:    gateway,
		DBPinger:          dbPool,
		Stage:             cfg.Stage,
		Version:           cfg.Version,
	})

	healthHandler = handlerFactory.NewHealthHandler()
	regimeHandler = handlerFactory.NewRegimeHandler()
	regimeFormHandler = handlerFactory.NewRegimeFormHandler()
	cartHandler = handlerFactory.NewCartHandler()
	checkoutHandler = handlerFactory.NewCheckoutHandler()
	webhookHandler = handlerFactory.NewWebhookHandler()
	orderHandler = handlerFactory.NewOrderHandler()
	giftHandler = handlerFactory.NewGiftHandler()
	reviewHandler = handlerFactory.NewReviewHandler()
	subscriberHandler = handlerFactory.NewSubscriberHandler()
	discountHandler = handlerFactory.NewDiscountHandler()

	defaultLimiter = middleware.NewRateLimiter(middleware.DefaultPolicy)
	writeLimiter = middleware.NewRateLimiter(middleware.WritePolicy)

	logger.Info("Handlers initialized",
		zap.String("session_backend", cfg.SessionBackend),
		zap.Bool("card_payments", gateway != nil),
		zap.Bool("notification_queue", publisher != nil),
	)
}

// StartBackgroundJobs runs the rate limiter cleanup and the expired session purge
// until ctx is cancelled. Long lived processes call it after InitializeHandlers.
func StartBackgroundJobs(ctx context.Context) {
	defaultLimiter.StartCleanup(ctx, 5*time.Minute)
	writeLimiter.StartCleanup(ctx, 5*time.Minute)

	if sessionPurger == nil || cfg.SessionPurgeInt <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(cfg.SessionPurgeInt)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				purged, err := sessionPurger.PurgeExpired(ctx)
				if err != nil {
					logger.Error("Failed to purge expired sessions", zap.Error(err))
					continue
				}
				if purged > 0 {
					logger.Info("Purged expired sessions", zap.Int64("count", purged))
				}
			}
		}
	}()
}

// Port returns the configured listen port
func Port() int {
	return cfg.Port
}

// Close releases the database pool
func Close() {
	if dbPool != nil {
		dbPool.Close()
	}
}

func InitializeRoutes(router *gin.Engine) {
	// Configure CORS
	router.Use(configureCORS())

	// Add correlation ID middleware
	router.Use(middleware.CorrelationIDMiddleware())

	// Add rate limiting middleware
	router.Use(defaultLimiter.Middleware())

	// Add enhanced logging middleware (after correlation ID)
	router.Use(middleware.EnhancedLoggingMiddleware(cfg.GinMode != gin.ReleaseMode))

	// Add request logging middleware for production
	if cfg.GinMode == gin.ReleaseMode {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Regimes
		regimes := v1.Group("/regimes")
		{
			regimes.GET("", regimeHandler.ListRegimes)
			regimes.GET("/slug/:slug", regimeHandler.GetRegimeBySlug)
			regimes.GET("/:id", regimeHandler.GetRegime)
			regimes.GET("/:id/quote", regimeHandler.GetQuote)
			regimes.GET("/:id/upsell", regimeHandler.GetUpsell)

			regimes.GET("/:id/reviews", reviewHandler.ListRegimeReviews)
			regimes.POST("/:id/reviews", writeLimiter.Middleware(),
				middleware.ValidateInput(middleware.CreateReviewValidation), reviewHandler.CreateReview)

			// Form wizard, keyed by the X-Session-ID header
			form := regimes.Group("/:id/form")
			{
				form.POST("", regimeFormHandler.StartForm)
				form.GET("", regimeFormHandler.GetForm)
				form.DELETE("", regimeFormHandler.ResetForm)
				form.POST("/steps", regimeFormHandler.SubmitStep)
				form.POST("/back", regimeFormHandler.PreviousStep)
				form.POST("/jump", regimeFormHandler.JumpToStep)
				form.POST("/complete", regimeFormHandler.CompleteForm)
			}
		}

		// Cart
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", middleware.ValidateInput(middleware.CartItemValidation), cartHandler.AddItem)
			cart.PUT("/items", middleware.ValidateInput(middleware.CartItemValidation), cartHandler.UpdateItem)
			cart.DELETE("/items", cartHandler.RemoveItem)
			cart.POST("/discount", cartHandler.ApplyDiscount)
			cart.DELETE("/discount", cartHandler.RemoveDiscount)
		}

		// Checkout and orders
		v1.POST("/checkout", writeLimiter.Middleware(),
			middleware.ValidateInput(middleware.CheckoutValidation), checkoutHandler.Checkout)
		v1.GET("/orders/:id", orderHandler.GetOrderByNumber)
		v1.POST("/orders/:id/confirm-payment", writeLimiter.Middleware(), checkoutHandler.ConfirmPayment)
		v1.GET("/order-status/:status", orderHandler.GetOrderStatus)

		// Gifts
		gifts := v1.Group("/gifts")
		{
			gifts.POST("", writeLimiter.Middleware(),
				middleware.ValidateInput(middleware.PurchaseGiftValidation), giftHandler.PurchaseGift)
			gifts.GET("/:code", giftHandler.GetGift)
			gifts.POST("/:code/redeem", writeLimiter.Middleware(),
				middleware.ValidateInput(middleware.RedeemGiftValidation), giftHandler.RedeemGift)
		}

		// Newsletter
		subscribers := v1.Group("/subscribers")
		{
			subscribers.POST("", writeLimiter.Middleware(),
				middleware.ValidateInput(middleware.SubscribeValidation), subscriberHandler.Subscribe)
			subscribers.DELETE("/:email", subscriberHandler.Unsubscribe)
		}

		// Payment provider callbacks, authenticated by signature
		v1.POST("/webhooks/stripe", webhookHandler.HandleStripeWebhook)

		// Admin routes (Supabase session or API key)
		admin := v1.Group("/admin")
		admin.Use(authClient.EnsureAdmin())
		{
			listQuery := middleware.ValidateQueryParams(middleware.ListQueryValidation)

			adminRegimes := admin.Group("/regimes")
			{
				adminRegimes.GET("", listQuery, regimeHandler.AdminListRegimes)
				adminRegimes.POST("", middleware.ValidateInput(middleware.RegimeValidation), regimeHandler.CreateRegime)
				adminRegimes.GET("/:id", regimeHandler.AdminGetRegime)
				adminRegimes.PUT("/:id", middleware.ValidateInput(middleware.RegimeValidation), regimeHandler.UpdateRegime)
				adminRegimes.PATCH("/:id/active", regimeHandler.SetRegimeActive)
				adminRegimes.DELETE("/:id", regimeHandler.DeleteRegime)
			}

			adminReviews := admin.Group("/reviews")
			{
				adminReviews.GET("", listQuery, reviewHandler.ListReviews)
				adminReviews.PATCH("/:id/approve", reviewHandler.ApproveReview)
				adminReviews.DELETE("/:id", reviewHandler.DeleteReview)
			}

			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("", listQuery, orderHandler.ListOrders)
				adminOrders.GET("/:id", orderHandler.GetOrder)
				adminOrders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
				adminOrders.PATCH("/:id/paid", orderHandler.MarkOrderPaid)
			}

			adminDiscounts := admin.Group("/discount-codes")
			{
				adminDiscounts.GET("", discountHandler.ListDiscountCodes)
				adminDiscounts.POST("", middleware.ValidateInput(middleware.DiscountCodeValidation), discountHandler.CreateDiscountCode)
				adminDiscounts.GET("/:id", discountHandler.GetDiscountCode)
				adminDiscounts.PUT("/:id", middleware.ValidateInput(middleware.DiscountCodeValidation), discountHandler.UpdateDiscountCode)
				adminDiscounts.PATCH("/:id/active", discountHandler.SetDiscountCodeActive)
				adminDiscounts.DELETE("/:id", discountHandler.DeleteDiscountCode)
			}

			adminSubscribers := admin.Group("/subscribers")
			{
				adminSubscribers.GET("", listQuery, subscriberHandler.ListSubscribers)
				adminSubscribers.DELETE("/:id", subscriberHandler.DeleteSubscriber)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowOrigins = []string{cfg.StorefrontURL}
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Accept",
		"Authorization",
		"X-API-Key",
		middleware.SessionIDHeader,
		"X-Correlation-ID",
	}
	// Default exposed headers including rate limit headers
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	}

	return cors.New(corsConfig)
}
