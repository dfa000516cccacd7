package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"transfers.app/billing/model"
	"transfers.app/internal/logger"
)

// Config holds billctl settings. Every field can be set from the environment
// or a .env file.
type Config struct {
	DefaultTaxRate        decimal.Decimal
	DefaultTaxApplication model.TaxApplication

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	rate, err := decimal.NewFromString(getEnv("BILLCTL_TAX_RATE", "21"))
	if err != nil {
		return nil, fmt.Errorf("BILLCTL_TAX_RATE: %w", err)
	}

	config := &Config{
		DefaultTaxRate:        rate,
		DefaultTaxApplication: model.TaxApplication(getEnv("BILLCTL_TAX_APPLICATION", string(model.TaxExcluded))),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:         getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:             getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DefaultTaxRate.IsNegative() {
		return fmt.Errorf("BILLCTL_TAX_RATE must not be negative")
	}
	if !c.DefaultTaxApplication.Valid() {
		return fmt.Errorf("BILLCTL_TAX_APPLICATION must be included or excluded, got %q", c.DefaultTaxApplication)
	}
	return nil
}

func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
