package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
// Secrets (token signing key, Stripe key) have no compiled-in defaults.
type Config struct {
	HTTPAddr           string
	DataDir            string
	JWTSecret          string
	TokenTTL           time.Duration
	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
	AllowedOrigins     []string
	ShutdownTimeout    time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		DataDir:            envOrDefault("DATA_DIR", "./data"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           envHours("TOKEN_TTL_HOURS", 8*time.Hour),
		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccessURL: envOrDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/success"),
		CheckoutCancelURL:  envOrDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/cart"),
		AllowedOrigins:     envList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		ShutdownTimeout:    envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

// Validate reports configuration the server cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET must be set")
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envHours(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		hours, err := strconv.Atoi(v)
		if err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
