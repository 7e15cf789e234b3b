// Package config reads process configuration from the environment. A .env
// file is picked up in development; deployments set variables directly.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a .env file into the process environment when one exists.
// Absence is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, using process environment")
	}
}

// GetEnv returns the named variable, or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetIntEnv returns the named variable parsed as an int. Unset, empty, or
// unparseable values yield fallback; a bad value is logged so a typo in
// deployment config does not pass silently.
func GetIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// IsProduction reports whether ENV names a production deployment.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Named accessors for the server's top-level settings, so main and the
// route wiring do not repeat key strings and defaults.

// Port is the HTTP listen port.
func Port() string { return GetEnv("PORT", "3000") }

// CORSOrigins is the allowed-origins list for browser clients.
func CORSOrigins() string { return GetEnv("CORS_ORIGINS", "*") }

// JWTSecret is the HMAC signing key for access and refresh tokens. Empty
// means tokens cannot be issued; callers must treat that as fatal.
func JWTSecret() string { return os.Getenv("JWT_SECRET") }

// StripeSecretKey is the API key for the top-up payment provider.
func StripeSecretKey() string { return GetEnv("STRIPE_SECRET_KEY", "") }

// StripeCurrency is the settlement currency for top-up charges.
func StripeCurrency() string { return GetEnv("STRIPE_CURRENCY", "jpy") }
