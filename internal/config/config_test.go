package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearRateLimitEnv blanks every RATE_LIMIT_* variable so the defaults
// under test cannot be shadowed by the ambient environment. All env
// helpers in this package treat the empty string as unset.
func clearRateLimitEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_TOKENS",
		"RATE_LIMIT_REFILL_INTERVAL", "RATE_LIMIT_TTL", "RATE_LIMIT_KEY_STRATEGY",
		"RATE_LIMIT_PREFIX", "RATE_LIMIT_DEBUG", "RATE_LIMIT_BURST",
		"RATE_LIMIT_REFILL_EVERY",
	} {
		t.Setenv(k, "")
	}
}

func clearCacheEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL",
		"CACHE_KEY_STRATEGY", "CACHE_PREFIX", "CACHE_MAX_BODY_BYTES",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	clearRateLimitEnv(t)
	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 60, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Second, cfg.RefillInterval)
	assert.Equal(t, "agenda-rl", cfg.Prefix)
	// TTL is never allowed below five refill intervals
	assert.GreaterOrEqual(t, cfg.TTL, 5*cfg.RefillInterval)
}

func TestLoadRateLimitConfigClampsBadValues(t *testing.T) {
	clearRateLimitEnv(t)
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	clearCacheEnv(t)
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true}, cfg.Methods)
	assert.Equal(t, 15*time.Second, cfg.TTL)
	assert.Equal(t, "agenda-cache", cfg.Prefix)
}

func TestParseMethods(t *testing.T) {
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, parseMethods("get, head"))
	assert.Empty(t, parseMethods(" , "))
}
