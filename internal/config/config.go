package config

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

// Config holds runtime configuration for the surrounding application.
// Every field maps 1:1 to a documented env var.
type Config struct {
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Business defaults, used until a persisted settings row exists.
	MetalPriceGram float64 `mapstructure:"METAL_PRICE_GRAM"`
	LossPercentage float64 `mapstructure:"LOSS_PERCENTAGE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("METAL_PRICE_GRAM", 0.95)
	viper.SetDefault("LOSS_PERCENTAGE", 8.0)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Settings materializes default GlobalSettings from the configured values,
// for callers that have no persisted settings row yet.
func (c *Config) Settings() model.GlobalSettings {
	return model.GlobalSettings{
		MetalPriceGram: decimal.NewFromFloat(c.MetalPriceGram),
		LossPercentage: c.LossPercentage,
	}
}

// Level parses the configured log level, defaulting to info on garbage input.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
