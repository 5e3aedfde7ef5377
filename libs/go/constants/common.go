package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to structured logs
	ServiceName = "regime-api"

	// Payment providers
	StripeProvider = "stripe"

	// User roles
	AdminRole = "admin"

	// Currencies
	DefaultCurrency = "PKR"
)
