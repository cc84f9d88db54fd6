package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite", DSN: "fridge.db"},
		JWT:      JWTConfig{SecretKey: "0123456789abcdef0123456789abcdef"},
		LLM: LLMConfig{Providers: []ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1},
			{Name: "deepseek", Enabled: true, Priority: 2},
		}},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"short jwt secret", func(c *Config) { c.JWT.SecretKey = "short" }},
		{"no providers", func(c *Config) { c.LLM.Providers = nil }},
		{"none enabled", func(c *Config) {
			c.LLM.Providers[0].Enabled = false
			c.LLM.Providers[1].Enabled = false
		}},
		{"duplicate priority", func(c *Config) { c.LLM.Providers[1].Priority = 1 }},
		{"zero priority", func(c *Config) { c.LLM.Providers[0].Priority = 0 }},
		{"unnamed provider", func(c *Config) { c.LLM.Providers[0].Name = "" }},
		{"unknown speech provider", func(c *Config) { c.Speech.Provider = "whisper" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("FRIDGE_TEST_SECRET", "s3cret")

	assert.Equal(t, "s3cret", expandEnvVar("${FRIDGE_TEST_SECRET}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
	assert.Equal(t, "${FRIDGE_TEST_MISSING}", expandEnvVar("${FRIDGE_TEST_MISSING}"))
	assert.Equal(t, "", expandEnvVar(""))
}
