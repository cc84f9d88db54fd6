package llmprovider_test

import (
	"context"
	"testing"
	"time"

	"fridge-inventory/config"
	"fridge-inventory/pkg/llmprovider"
	"fridge-inventory/pkg/log"
)

// TestFactory_ConfigToManagerFlow verifies that configuration, provider
// initialization, and manager work together
func TestFactory_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:     "deepseek",
				Enabled:  true,
				Priority: 1,
				APIKey:   "test-deepseek-key",
				Model:    "deepseek-chat",
				Timeout:  "30s",
			},
			{
				Name:     "gemini",
				Enabled:  true,
				Priority: 2,
				APIKey:   "test-gemini-key",
				Model:    "gemini-2.5-flash",
				Timeout:  "30s",
			},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "45s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "deepseek" {
		t.Errorf("Expected first provider to be deepseek, got %s", providers[0].Name())
	}
	if providers[1].Name() != "gemini" {
		t.Errorf("Expected second provider to be gemini, got %s", providers[1].Name())
	}

	managerConfig, err := llmprovider.ManagerConfig(cfg)
	if err != nil {
		t.Fatalf("ManagerConfig() error = %v", err)
	}
	if managerConfig.RetryDelay != time.Second || managerConfig.MaxTotalTimeout != 45*time.Second {
		t.Errorf("unexpected durations: %+v", managerConfig)
	}

	if manager := llmprovider.NewManager(providers, managerConfig, log.NewNop()); manager == nil {
		t.Fatal("Manager should not be nil")
	}
}

// TestFactory_ConfigValidation verifies that invalid configurations
// are caught during initialization
func TestFactory_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-key"},
				},
			},
			wantErr: false,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{Providers: []config.ProviderConfig{}},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "qwen", Enabled: false, Priority: 1, APIKey: "test-key"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "deepseek", Enabled: true, Priority: 1},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "mistral", Enabled: true, Priority: 1, APIKey: "k"},
				},
			},
			wantErr: true,
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "openai", Enabled: true, Priority: 1, APIKey: "k", Timeout: "soon"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFactory_ManagerConfigRejectsBadDuration(t *testing.T) {
	if _, err := llmprovider.ManagerConfig(&config.LLMConfig{RetryDelay: "x"}); err == nil {
		t.Error("expected error for invalid retry_delay")
	}
	if _, err := llmprovider.ManagerConfig(&config.LLMConfig{MaxTotalTimeout: "x"}); err == nil {
		t.Error("expected error for invalid max_total_timeout")
	}
}
