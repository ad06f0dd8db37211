package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Storage     StorageConfig
	Pricing     PricingConfig
	Discounts   map[string]float64
	LogLevel    string
}

type StorageConfig struct {
	Path string
}

type PricingConfig struct {
	StandardRate          float64
	ExpressRate           float64
	FreeShippingThreshold float64
	FallbackUnitPrice     float64
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CART_STORAGE_PATH", "data/storefront.json")
	viper.SetDefault("SHIPPING_STANDARD_RATE", "50")
	viper.SetDefault("SHIPPING_EXPRESS_RATE", "120")
	viper.SetDefault("FREE_SHIPPING_THRESHOLD", "1200")
	viper.SetDefault("FALLBACK_UNIT_PRICE", "75")
	viper.SetDefault("DISCOUNT_CODES", "NUEVOSITIO15:15")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	pricing, err := loadPricing()
	if err != nil {
		return nil, err
	}

	discounts, err := parseDiscountCodes(getEnvOrViper("DISCOUNT_CODES", "NUEVOSITIO15:15"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Storage: StorageConfig{
			Path: getEnvOrViper("CART_STORAGE_PATH", "data/storefront.json"),
		},
		Pricing:   pricing,
		Discounts: discounts,
		LogLevel:  getEnvOrViper("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func loadPricing() (PricingConfig, error) {
	var cfg PricingConfig
	var err error

	if cfg.StandardRate, err = getFloat("SHIPPING_STANDARD_RATE", 50); err != nil {
		return cfg, err
	}
	if cfg.ExpressRate, err = getFloat("SHIPPING_EXPRESS_RATE", 120); err != nil {
		return cfg, err
	}
	if cfg.FreeShippingThreshold, err = getFloat("FREE_SHIPPING_THRESHOLD", 1200); err != nil {
		return cfg, err
	}
	if cfg.FallbackUnitPrice, err = getFloat("FALLBACK_UNIT_PRICE", 75); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseDiscountCodes reads a "CODE:percent,CODE:percent" list into a map.
func parseDiscountCodes(raw string) (map[string]float64, error) {
	codes := make(map[string]float64)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, pct, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("malformed discount code entry: %q", entry)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed discount percentage in %q: %w", entry, err)
		}
		codes[strings.ToUpper(strings.TrimSpace(code))] = value
	}
	return codes, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnvOrViper(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return value, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
