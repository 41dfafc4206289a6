package providers

import (
	"testing"
	"time"
)

// =============================================================================
// Provider Configuration Tests
// =============================================================================

func TestBaseConfig_Validate(t *testing.T) {
	valid := func() BaseConfig {
		cfg := DefaultBaseConfig()
		cfg.APIKey = "key"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*BaseConfig)
		wantErr bool
	}{
		{"valid", func(c *BaseConfig) {}, false},
		{"missing api key", func(c *BaseConfig) { c.APIKey = "" }, true},
		{"zero max tokens", func(c *BaseConfig) { c.MaxTokens = 0 }, true},
		{"negative temperature", func(c *BaseConfig) { c.Temperature = -0.1 }, true},
		{"temperature above two", func(c *BaseConfig) { c.Temperature = 2.5 }, true},
		{"zero timeout", func(c *BaseConfig) { c.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigs(t *testing.T) {
	a := DefaultAnthropicConfig()
	if a.Model == "" || a.MaxTokens <= 0 || a.Timeout < time.Second {
		t.Errorf("anthropic defaults incomplete: %+v", a)
	}

	o := DefaultOpenAIConfig()
	if o.Model == "" || o.MaxTokens <= 0 || o.Timeout < time.Second {
		t.Errorf("openai defaults incomplete: %+v", o)
	}
}

// =============================================================================
// Registry Tests
// =============================================================================

func TestRegistry_FirstRegisteredBecomesDefault(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Default(); err == nil {
		t.Error("empty registry should have no default")
	}

	if err := r.Register(ProviderTypeSimulated, NewSimulatedProvider()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	p, err := r.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if p.Name() != string(ProviderTypeSimulated) {
		t.Errorf("default = %q, want simulated", p.Name())
	}
}

func TestRegistry_GetAndSetDefault(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(ProviderTypeSimulated, NewSimulatedProvider()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := r.Get(ProviderTypeAnthropic); err == nil {
		t.Error("Get for unregistered provider should fail")
	}
	if err := r.SetDefault(ProviderTypeOpenAI); err == nil {
		t.Error("SetDefault for unregistered provider should fail")
	}

	if _, err := r.Get(ProviderTypeSimulated); err != nil {
		t.Errorf("Get(simulated): %v", err)
	}
	if err := r.SetDefault(ProviderTypeSimulated); err != nil {
		t.Errorf("SetDefault(simulated): %v", err)
	}
}
