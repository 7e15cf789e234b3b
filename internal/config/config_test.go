package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("REMAT_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("REMAT_TEST_KEY", "fallback"))

	t.Setenv("REMAT_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("REMAT_TEST_KEY", "fallback"),
		"empty counts as unset")
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("REMAT_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("REMAT_TEST_INT", 7))

	t.Setenv("REMAT_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("REMAT_TEST_INT", 7))

	t.Setenv("REMAT_TEST_INT", "")
	assert.Equal(t, 7, GetIntEnv("REMAT_TEST_INT", 7))
}

func TestNamedAccessors(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "3000", Port())

	t.Setenv("STRIPE_CURRENCY", "usd")
	assert.Equal(t, "usd", StripeCurrency())

	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())
	t.Setenv("ENV", "development")
	assert.False(t, IsProduction())
}
