package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 500, cfg.FreeShippingThreshold)
	assert.Equal(t, 50, cfg.ShippingFee)
	assert.InDelta(t, 0.18, cfg.TaxRate, 1e-9)
	assert.False(t, cfg.CartClampToStock)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FREE_SHIPPING_THRESHOLD", "900")
	t.Setenv("SHIPPING_FEE", "75")
	t.Setenv("TAX_RATE", "0.05")
	t.Setenv("CART_CLAMP_TO_STOCK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	rules := cfg.PricingRules()
	assert.Equal(t, 900, rules.FreeShippingThreshold)
	assert.Equal(t, 75, rules.ShippingFee)
	assert.InDelta(t, 0.05, rules.TaxRate, 1e-9)
	assert.True(t, cfg.CartPolicy().ClampToStock)
}
