package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is loaded once in main and
// handed to the constructors that need it.
type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	GinMode     string   `env:"GIN_MODE" envDefault:"debug"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string   `env:"SERVICE_NAME" envDefault:"food-ordering-api"`

	DBPath   string `env:"DB_PATH" envDefault:"food_delivery.db"`
	SeedData bool   `env:"SEED_DATA" envDefault:"true"`

	// JWTSecret used to sign tokens
	JWTSecret string `env:"JWT_SECRET" envDefault:"food_delivery_super_secret_2024"`
	// TokenTTL of zero issues tokens without an expiry.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"0s"`

	Orders OrderConfig

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// OrderConfig toggles the stricter order lifecycle behaviours.
type OrderConfig struct {
	// StrictTransitions rejects status changes that are not edges of the
	// order state machine.
	StrictTransitions bool `env:"ORDER_STRICT_TRANSITIONS" envDefault:"false"`
	// VerifyPricing recomputes total and discount from the line items and
	// the coupon instead of trusting the client.
	VerifyPricing bool `env:"ORDER_VERIFY_PRICING" envDefault:"false"`
}

// Load reads an optional .env file and then parses the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTL < 0 {
		return nil, fmt.Errorf("TOKEN_TTL must not be negative, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}

// String returns a representation of the config with the secret masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, DB: %s, TokenTTL: %s, StrictTransitions: %t, VerifyPricing: %t, JWT: ***}",
		c.Port, c.DBPath, c.TokenTTL, c.Orders.StrictTransitions, c.Orders.VerifyPricing)
}
