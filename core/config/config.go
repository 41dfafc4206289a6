// Package config loads and validates the application configuration.
// Configuration errors are the one fatal error category: they fail startup
// instead of being silently clamped.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmngeo/seqpt/core/providers"
	"github.com/jmngeo/seqpt/core/smart"
)

// Config is the root configuration.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	LLM        LLMConfig        `yaml:"llm"`
	Retrieval  RetrievalConfig  `yaml:"retrieval"`
	History    HistoryConfig    `yaml:"history"`
}

// GenerationConfig controls the refinement loop.
type GenerationConfig struct {
	QualityThreshold float64 `yaml:"quality_threshold"`
	MaxIterations    int     `yaml:"max_iterations"`
	FeedbackEnabled  bool    `yaml:"feedback_enabled"`
}

// LLMConfig selects and configures the provider.
type LLMConfig struct {
	Provider  string                     `yaml:"provider"`
	Timeout   time.Duration              `yaml:"timeout"`
	Anthropic providers.AnthropicConfig  `yaml:"anthropic"`
	OpenAI    providers.OpenAIConfig     `yaml:"openai"`
}

// RetrievalConfig controls the template store.
type RetrievalConfig struct {
	IndexPath string `yaml:"index_path"`
	TopK      int    `yaml:"top_k"`
}

// HistoryConfig controls the optional run log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			QualityThreshold: smart.DefaultQualityThreshold,
			MaxIterations:    3,
			FeedbackEnabled:  true,
		},
		LLM: LLMConfig{
			Provider:  string(providers.ProviderTypeSimulated),
			Timeout:   60 * time.Second,
			Anthropic: providers.DefaultAnthropicConfig(),
			OpenAI:    providers.DefaultOpenAIConfig(),
		},
		Retrieval: RetrievalConfig{
			TopK: 3,
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    "seqpt_history.db",
		},
	}
}

// Load reads the YAML file at path over the defaults, then validates. A
// missing path returns validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section, failing fast on the first problem.
func (c *Config) Validate() error {
	if c.Generation.QualityThreshold < 0 || c.Generation.QualityThreshold > 1 {
		return fmt.Errorf("generation.quality_threshold %.3f outside [0,1]", c.Generation.QualityThreshold)
	}
	if c.Generation.MaxIterations < 1 {
		return fmt.Errorf("generation.max_iterations must be at least 1, got %d", c.Generation.MaxIterations)
	}
	if c.Retrieval.TopK < 1 {
		return fmt.Errorf("retrieval.top_k must be at least 1, got %d", c.Retrieval.TopK)
	}

	switch providers.ProviderType(c.LLM.Provider) {
	case providers.ProviderTypeSimulated:
	case providers.ProviderTypeAnthropic:
		if c.LLM.Anthropic.APIKey == "" {
			return fmt.Errorf("llm.anthropic.api_key required for the anthropic provider")
		}
	case providers.ProviderTypeOpenAI:
		if c.LLM.OpenAI.APIKey == "" {
			return fmt.Errorf("llm.openai.api_key required for the openai provider")
		}
	default:
		return fmt.Errorf("unknown llm.provider %q", c.LLM.Provider)
	}

	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path required when history is enabled")
	}
	return nil
}

// BuildProvider constructs the configured provider.
func (c *Config) BuildProvider() (providers.Provider, error) {
	switch providers.ProviderType(c.LLM.Provider) {
	case providers.ProviderTypeAnthropic:
		cfg := c.LLM.Anthropic
		if c.LLM.Timeout > 0 {
			cfg.Timeout = c.LLM.Timeout
		}
		return providers.NewAnthropicProvider(cfg)
	case providers.ProviderTypeOpenAI:
		cfg := c.LLM.OpenAI
		if c.LLM.Timeout > 0 {
			cfg.Timeout = c.LLM.Timeout
		}
		return providers.NewOpenAIProvider(cfg)
	default:
		return providers.NewSimulatedProvider(), nil
	}
}
