package llm

import (
	"fmt"
	"time"
)

// Supported provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku-4-5",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-2.0-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-001",
	ProviderMock:       "mock",
}

// Config selects and configures one provider. An empty Provider disables
// every LLM-backed feature.
type Config struct {
	Provider string        `yaml:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter mock"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url" validate:"omitempty,url"`
	Timeout  time.Duration `yaml:"timeout" validate:"min=0"`
	Retry    RetryConfig   `yaml:"retry"`
}

// RetryConfig tunes backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" validate:"min=1"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier" validate:"gte=1"`
}

// DefaultConfig returns a disabled Config with the standard timeouts.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// Enabled reports whether a provider is selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// ResolvedModel returns Model, or the provider's default when unset.
func (c Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModels[c.Provider]
}

// ApplyEnv overlays PATHWISE_LLM_* variables. When no provider is set
// anywhere it falls back to the first vendor key found among
// ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY and OPENROUTER_API_KEY.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("PATHWISE_LLM_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := getenv("PATHWISE_LLM_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := getenv("PATHWISE_LLM_MODEL"); v != "" {
		c.Model = v
	}
	if v := getenv("PATHWISE_LLM_BASE_URL"); v != "" {
		c.BaseURL = v
	}

	if c.Provider == "" {
		for _, p := range []string{ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter} {
			if k := getenv(vendorKeyVar(p)); k != "" {
				c.Provider = p
				if c.APIKey == "" {
					c.APIKey = k
				}
				return
			}
		}
	}
	if c.APIKey == "" && c.Provider != "" && c.Provider != ProviderMock {
		c.APIKey = getenv(vendorKeyVar(c.Provider))
	}
}

func vendorKeyVar(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	}
	return ""
}

// Validate checks that an enabled provider is known and has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case "", ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("%s provider needs PATHWISE_LLM_API_KEY or %s", c.Provider, vendorKeyVar(c.Provider))
		}
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}
