package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/GANESHVERMA730/HIMRAS-PROJECT/cart"
)

// Config is the whole process configuration, read from the environment.
// main loads .env first so local runs can keep settings in a file.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"himras-dev-secret"`
	AdminAPIKey string        `env:"ADMIN_API_KEY"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Pricing constants. The defaults are the storefront's live numbers.
	FreeShippingThreshold int     `env:"FREE_SHIPPING_THRESHOLD" envDefault:"500"`
	ShippingFee           int     `env:"SHIPPING_FEE" envDefault:"50"`
	TaxRate               float64 `env:"TAX_RATE" envDefault:"0.18"`

	// When set, cart quantities are capped at the product's stock level.
	// Off by default: the storefront treats stock as display-only.
	CartClampToStock bool `env:"CART_CLAMP_TO_STOCK" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PricingRules maps the configured constants into the calculator's shape.
func (c Config) PricingRules() cart.Rules {
	return cart.Rules{
		FreeShippingThreshold: c.FreeShippingThreshold,
		ShippingFee:           c.ShippingFee,
		TaxRate:               c.TaxRate,
	}
}

// CartPolicy maps the configured flags into the ledger's shape.
func (c Config) CartPolicy() cart.Policy {
	return cart.Policy{ClampToStock: c.CartClampToStock}
}
