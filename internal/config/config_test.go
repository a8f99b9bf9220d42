package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 0.95, cfg.MetalPriceGram, 1e-9)
	assert.InDelta(t, 8.0, cfg.LossPercentage, 1e-9)
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("METAL_PRICE_GRAM", "1.25")
	t.Setenv("LOSS_PERCENTAGE", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 1.25, cfg.MetalPriceGram, 1e-9)

	s := cfg.Settings()
	assert.True(t, s.MetalPriceGram.Equal(decimal.NewFromFloat(1.25)))
	assert.InDelta(t, 12.0, s.LossPercentage, 1e-9)
	require.NoError(t, s.Validate())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, (&Config{LogLevel: "debug"}).Level())
	assert.Equal(t, zerolog.InfoLevel, (&Config{LogLevel: "garbage"}).Level())
	assert.Equal(t, zerolog.InfoLevel, (&Config{}).Level())
}
