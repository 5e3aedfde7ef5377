package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/regime-co/regime-api/libs/go/helpers"
	"github.com/regime-co/regime-api/libs/go/interfaces"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"go.uber.org/zap"
)

// Session store backends
const (
	SessionBackendMemory   = "memory"
	SessionBackendPostgres = "postgres"
)

// ErrMissingDatabaseURL is returned when no database connection can be built
var ErrMissingDatabaseURL = errors.New("database url is not configured")

// Config is the runtime configuration shared by the API and the workers
type Config struct {
	Stage   string `env:"STAGE" envDefault:"local"`
	Port    int    `env:"PORT" envDefault:"8000"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	Version string `env:"APP_VERSION"`

	// Deployed stages build the DSN from these and the RDS secret
	DBHost    string `env:"DB_HOST"`
	DBName    string `env:"DB_NAME"`
	DBSSLMode string `env:"DB_SSLMODE" envDefault:"require"`

	DBMaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMinConns        int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"15m"`
	DBTxRetries       int           `env:"DB_TX_RETRIES" envDefault:"3"`

	SessionBackend  string        `env:"SESSION_BACKEND" envDefault:"postgres"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionPurgeInt time.Duration `env:"SESSION_PURGE_INTERVAL" envDefault:"1h"`

	StorefrontURL      string   `env:"STOREFRONT_URL" envDefault:"http://localhost:3000"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	ShopName         string `env:"SHOP_NAME" envDefault:"Regime"`
	SupportEmail     string `env:"SUPPORT_EMAIL" envDefault:"care@regime.example"`
	EmailFromAddress string `env:"EMAIL_FROM_ADDRESS" envDefault:"orders@regime.example"`
	EmailFromName    string `env:"EMAIL_FROM_NAME" envDefault:"Regime"`

	NotificationQueueURL string `env:"NOTIFICATION_QUEUE_URL"`

	SupabaseURL     string   `env:"SUPABASE_URL"`
	AdminEmails     []string `env:"ADMIN_EMAILS" envSeparator:","`
	AdminAPIKeyHash string   `env:"ADMIN_API_KEY_HASH"`

	Bank BankConfig `envPrefix:"BANK_"`

	Secrets Secrets
}

// BankConfig holds the account customers transfer to
type BankConfig struct {
	Name          string `env:"NAME"`
	AccountTitle  string `env:"ACCOUNT_TITLE"`
	AccountNumber string `env:"ACCOUNT_NUMBER"`
	IBAN          string `env:"IBAN"`
}

// Secrets are resolved through Secrets Manager, falling back to plain env vars
type Secrets struct {
	DatabaseURL         string
	ResendAPIKey        string
	StripeSecretKey     string
	StripeWebhookSecret string
	SupabaseServiceKey  string
	UnsubscribeSecret   string
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Parse loads .env when present and parses the environment. Secrets are left empty.
func Parse() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !helpers.IsValidStage(cfg.Stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			cfg.Stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	switch cfg.SessionBackend {
	case SessionBackendMemory, SessionBackendPostgres:
	default:
		return nil, fmt.Errorf("invalid SESSION_BACKEND %q", cfg.SessionBackend)
	}
	cfg.AdminEmails = cleanList(cfg.AdminEmails)
	cfg.CORSAllowedOrigins = cleanList(cfg.CORSAllowedOrigins)
	return cfg, nil
}

// Load parses the environment and resolves every secret. Only the database URL is
// required; missing provider keys disable the matching feature.
func Load(ctx context.Context, secrets interfaces.SecretsProvider) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.ResolveSecrets(ctx, secrets); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveSecrets fills cfg.Secrets from the secrets provider
func (c *Config) ResolveSecrets(ctx context.Context, secrets interfaces.SecretsProvider) error {
	dsn, err := c.databaseURL(ctx, secrets)
	if err != nil {
		return err
	}
	c.Secrets.DatabaseURL = dsn

	optional := []struct {
		arnEnv, env string
		dest        *string
		disables    string
	}{
		{"RESEND_API_KEY_ARN", "RESEND_API_KEY", &c.Secrets.ResendAPIKey, "email delivery"},
		{"STRIPE_SECRET_KEY_ARN", "STRIPE_SECRET_KEY", &c.Secrets.StripeSecretKey, "card payments"},
		{"STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET", &c.Secrets.StripeWebhookSecret, "stripe webhooks"},
		{"SUPABASE_SERVICE_KEY_ARN", "SUPABASE_SERVICE_KEY", &c.Secrets.SupabaseServiceKey, "admin sessions"},
		{"UNSUBSCRIBE_SECRET_ARN", "UNSUBSCRIBE_SECRET", &c.Secrets.UnsubscribeSecret, "newsletter unsubscribe links"},
	}
	for _, s := range optional {
		value, err := secrets.GetSecretString(ctx, s.arnEnv, s.env)
		if err != nil {
			logger.Warn("secret not configured, feature disabled",
				zap.String("secret", s.env), zap.String("feature", s.disables))
			continue
		}
		*s.dest = value
	}
	return nil
}

// databaseURL builds the DSN from the RDS secret on deployed stages and reads
// DATABASE_URL locally
func (c *Config) databaseURL(ctx context.Context, secrets interfaces.SecretsProvider) (string, error) {
	if c.IsDeployed() && c.DBHost != "" {
		if c.DBName == "" {
			return "", fmt.Errorf("%w: DB_NAME is required with DB_HOST", ErrMissingDatabaseURL)
		}
		raw, err := secrets.GetSecretString(ctx, "RDS_SECRET_ARN", "RDS_SECRET")
		if err != nil {
			return "", fmt.Errorf("failed to fetch RDS secret: %w", err)
		}
		var secret rdsSecret
		if err := json.Unmarshal([]byte(raw), &secret); err != nil {
			return "", fmt.Errorf("failed to parse RDS secret: %w", err)
		}
		if secret.Username == "" || secret.Password == "" {
			return "", fmt.Errorf("%w: RDS secret has no username or password", ErrMissingDatabaseURL)
		}
		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secret.Username),
			url.QueryEscape(secret.Password),
			c.DBHost, c.DBName, c.DBSSLMode), nil
	}

	dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingDatabaseURL, err)
	}
	return dsn, nil
}

// IsDeployed reports whether the process runs in a deployed AWS stage
func (c *Config) IsDeployed() bool {
	return c.Stage == helpers.StageProd || c.Stage == helpers.StageDev
}

// CardPaymentsEnabled reports whether a Stripe key was configured
func (c *Config) CardPaymentsEnabled() bool {
	return c.Secrets.StripeSecretKey != ""
}

// BankDetails returns the transfer instructions shown to customers
func (c *Config) BankDetails() business.BankDetails {
	return business.BankDetails{
		BankName:      c.Bank.Name,
		AccountTitle:  c.Bank.AccountTitle,
		AccountNumber: c.Bank.AccountNumber,
		IBAN:          c.Bank.IBAN,
	}
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
