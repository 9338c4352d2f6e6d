package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "CHAT_TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "CHAT_TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)
			assert.Equal(t, tc.expected, getEnvOrDefault(tc.key, tc.defaultVal))
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "42", 10, 42},
		{"uses default for empty", "", 10, 10},
		{"uses default for non-numeric", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CHAT_TEST_INT", tc.envValue)
			assert.Equal(t, tc.expected, getEnvAsIntOrDefault("CHAT_TEST_INT", tc.defaultVal))
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	t.Setenv("CHAT_TEST_BOOL", "true")
	assert.True(t, getEnvAsBoolOrDefault("CHAT_TEST_BOOL", false))

	t.Setenv("CHAT_TEST_BOOL", "nope")
	assert.False(t, getEnvAsBoolOrDefault("CHAT_TEST_BOOL", false))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_CA_BUNDLE", "GEMINI_BASE_URL",
		"GEMINI_MODEL", "GEMINI_ENDPOINT_URL", "GEMINI_TIMEOUT_SECONDS",
		"CHAT_BACKEND", "CHAT_DEBUG", "MOCK_ADDR",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("GOOGLE_API_KEY", "fallback-key")

	cfg := Load()

	assert.Equal(t, "fallback-key", cfg.APIKey)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent", cfg.EndpointURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, BackendREST, cfg.Backend)
	assert.False(t, cfg.Debug)
	assert.Equal(t, ":8080", cfg.MockAddr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EndpointFollowsModel(t *testing.T) {
	t.Setenv("GEMINI_ENDPOINT_URL", "")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:8080")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")

	cfg := Load()
	assert.Equal(t, "http://localhost:8080/v1beta/models/gemini-2.5-flash:generateContent", cfg.EndpointURL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			APIKey:         "k",
			EndpointURL:    BuildEndpointURL(DefaultBaseURL, DefaultModel),
			TimeoutSeconds: 30,
			Backend:        BackendREST,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing key", func(c *Config) { c.APIKey = "" }, "GEMINI_API_KEY"},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, "GEMINI_TIMEOUT_SECONDS"},
		{"unknown backend", func(c *Config) { c.Backend = "grpc" }, "CHAT_BACKEND"},
		{"adk backend", func(c *Config) { c.Backend = BackendADK }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
