package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/parse_resume", Method: "POST", Limit: 2, Window: time.Minute},
			{Path: "/api/", Method: "GET", Limit: 5, Window: time.Minute},
		},
	}
}

func TestLimiter_AllowsUnderLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1", "/api/parse_resume", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Equal(t, 1, info.Remaining)
}

func TestLimiter_DeniesOverLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/api/parse_resume", "POST")
		require.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, info := l.Allow("10.0.0.1", "/api/parse_resume", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		_, _ = l.Allow("10.0.0.1", "/api/parse_resume", "POST")
	}
	allowed, _ := l.Allow("10.0.0.1", "/api/parse_resume", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("10.0.0.2", "/api/parse_resume", "POST")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_WhitelistBypassesLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.9", "/api/parse_resume", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("10.0.0.1", "/api/parse_resume", "POST")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("10.0.0.1", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestLimiter_DefaultLimitForUnknownEndpoint(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1", "/api/other", "DELETE")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().EndpointConfigs

	tests := []struct {
		name     string
		path     string
		method   string
		wantPath string
		wantNil  bool
	}{
		{"exact match", "/api/parse_resume", "POST", "/api/parse_resume", false},
		{"method mismatch", "/api/parse_resume", "GET", "/api/", false},
		{"prefix match", "/api/status", "GET", "/api/", false},
		{"no match", "/other", "POST", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := matchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, ec)
				return
			}
			require.NotNil(t, ec)
			assert.Equal(t, tt.wantPath, ec.Path)
		})
	}

	t.Run("health is unlimited", func(t *testing.T) {
		ec := matchEndpoint("/health", "GET", configs)
		require.NotNil(t, ec)
		assert.Equal(t, 0, ec.Limit)
	})
}

func TestBucketRefill(t *testing.T) {
	now := time.Now()
	b := &bucket{tokens: 0, capacity: 10, refillRate: 1, lastRefill: now}

	b.refill(now.Add(3 * time.Second))
	assert.InDelta(t, 3, b.tokens, 0.001)

	// Refill never exceeds capacity.
	b.refill(now.Add(time.Hour))
	assert.InDelta(t, 10, b.tokens, 0.001)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	require.True(t, cfg.Enabled)
	assert.Equal(t, 300, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.Len(t, cfg.EndpointConfigs, 2)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.True(t, cfg.Whitelist["10.0.0.1"])
	assert.True(t, cfg.Whitelist["10.0.0.2"])
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
