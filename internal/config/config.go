package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds the settlement service settings. AWS and table names are read
// by the database and repository packages directly.
type Config struct {
	ServerPort                  int           `mapstructure:"SERVER_PORT"`
	StripeSecretKey             string        `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret         string        `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripeConnectWebhookSecret  string        `mapstructure:"STRIPE_CONNECT_WEBHOOK_SECRET"`
	StripeAPIBase               string        `mapstructure:"STRIPE_API_BASE"`
	PaymentGatewayMock          string        `mapstructure:"PAYMENT_GATEWAY_MOCK"`
	PaymentCurrency             string        `mapstructure:"PAYMENT_CURRENCY"`
	PlatformFeePercent          string        `mapstructure:"PLATFORM_FEE_PERCENT"`
	PendingPaymentCleanupDelay  time.Duration `mapstructure:"PENDING_PAYMENT_CLEANUP_DELAY"`
	PendingPaymentMaxAge        time.Duration `mapstructure:"PENDING_PAYMENT_MAX_AGE"`
	PendingPaymentSweepSchedule string        `mapstructure:"PENDING_PAYMENT_SWEEP_SCHEDULE"`
	AuthJWTSecret               string        `mapstructure:"AUTH_JWT_SECRET"`
	InternalAPIKey              string        `mapstructure:"INTERNAL_API_KEY"`
	RedisURL                    string        `mapstructure:"REDIS_URL"`
	RabbitMQURL                 string        `mapstructure:"RABBITMQ_URL"`
	NotificationExchange        string        `mapstructure:"NOTIFICATION_EXCHANGE"`
	ConnectRefreshURL           string        `mapstructure:"CONNECT_REFRESH_URL"`
	ConnectReturnURL            string        `mapstructure:"CONNECT_RETURN_URL"`
	ConnectAccountCountry       string        `mapstructure:"CONNECT_ACCOUNT_COUNTRY"`
}

var envKeys = []string{
	"SERVER_PORT",
	"STRIPE_SECRET_KEY",
	"STRIPE_WEBHOOK_SECRET",
	"STRIPE_CONNECT_WEBHOOK_SECRET",
	"STRIPE_API_BASE",
	"PAYMENT_GATEWAY_MOCK",
	"PAYMENT_CURRENCY",
	"PLATFORM_FEE_PERCENT",
	"PENDING_PAYMENT_CLEANUP_DELAY",
	"PENDING_PAYMENT_MAX_AGE",
	"PENDING_PAYMENT_SWEEP_SCHEDULE",
	"AUTH_JWT_SECRET",
	"INTERNAL_API_KEY",
	"REDIS_URL",
	"RABBITMQ_URL",
	"NOTIFICATION_EXCHANGE",
	"CONNECT_REFRESH_URL",
	"CONNECT_RETURN_URL",
	"CONNECT_ACCOUNT_COUNTRY",
}

// LoadConfig reads configuration from environment variables and fails when a
// required value is missing.
func LoadConfig() (*Config, error) {
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("PAYMENT_CURRENCY", "eur")
	viper.SetDefault("PLATFORM_FEE_PERCENT", "7.5")
	viper.SetDefault("PENDING_PAYMENT_CLEANUP_DELAY", "5m")
	viper.SetDefault("PENDING_PAYMENT_MAX_AGE", "24h")
	viper.SetDefault("PENDING_PAYMENT_SWEEP_SCHEDULE", "@every 1m")
	viper.SetDefault("NOTIFICATION_EXCHANGE", "happydeals.notifications")
	viper.SetDefault("CONNECT_REFRESH_URL", "https://happydeals.app/connect/reauth")
	viper.SetDefault("CONNECT_RETURN_URL", "https://happydeals.app/connect/return")
	viper.SetDefault("CONNECT_ACCOUNT_COUNTRY", "FR")
	viper.AutomaticEnv()

	for _, key := range envKeys {
		_ = viper.BindEnv(key)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.StripeSecretKey) == "" && !c.GatewayMockEnabled() {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if strings.TrimSpace(c.StripeWebhookSecret) == "" {
		missing = append(missing, "STRIPE_WEBHOOK_SECRET")
	}
	if strings.TrimSpace(c.AuthJWTSecret) == "" {
		missing = append(missing, "AUTH_JWT_SECRET")
	}
	if strings.TrimSpace(c.InternalAPIKey) == "" {
		missing = append(missing, "INTERNAL_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	fee, err := c.FeePercent()
	if err != nil {
		return err
	}
	if fee.IsNegative() || fee.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return fmt.Errorf("PLATFORM_FEE_PERCENT out of range: %s", fee)
	}
	if c.PendingPaymentCleanupDelay <= 0 || c.PendingPaymentMaxAge <= 0 {
		return errors.New("pending payment durations must be positive")
	}
	return nil
}

// FeePercent parses PLATFORM_FEE_PERCENT exactly.
func (c *Config) FeePercent() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(strings.TrimSpace(c.PlatformFeePercent))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid PLATFORM_FEE_PERCENT %q: %w", c.PlatformFeePercent, err)
	}
	return fee, nil
}

func (c *Config) GatewayMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.PaymentGatewayMock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
