// Package llm provides the generation client used to request meal plans from a hosted model.
// Providers are selected by configuration so the planner can move between services.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderAnthropic is the Anthropic Messages API
	ProviderAnthropic Provider = "anthropic"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

const (
	// DefaultAnthropicModel is the model the planner was tuned against
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	// DefaultGeminiModel is used when the Gemini provider is selected without a model
	DefaultGeminiModel = "gemini-2.5-flash"
	// DefaultMaxTokens bounds the size of a generated plan
	DefaultMaxTokens = 4000
	// DefaultTimeout bounds a single request/response exchange
	DefaultTimeout = 120 * time.Second
	// DefaultAnthropicBaseURL is the public API host
	DefaultAnthropicBaseURL = "https://api.anthropic.com"
)

// Config holds the model configuration for the application
type Config struct {
	Provider  Provider
	Model     string
	MaxTokens int
	BaseURL   string
	Timeout   time.Duration
}

// DefaultConfig returns the default configuration (Anthropic)
func DefaultConfig() *Config {
	return &Config{
		Provider:  ProviderAnthropic,
		Model:     DefaultAnthropicModel,
		MaxTokens: DefaultMaxTokens,
		BaseURL:   DefaultAnthropicBaseURL,
		Timeout:   DefaultTimeout,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:  ProviderGemini,
		Model:     DefaultGeminiModel,
		MaxTokens: DefaultMaxTokens,
		Timeout:   DefaultTimeout,
	}
}

// ForProvider returns the defaults for p, falling back to Anthropic for unknown providers.
func ForProvider(p Provider) *Config {
	if p == ProviderGemini {
		return DefaultGeminiConfig()
	}
	return DefaultConfig()
}

// WithModel returns a copy of the config using model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// WithMaxTokens returns a copy of the config using maxTokens
func (c *Config) WithMaxTokens(maxTokens int) *Config {
	newConfig := *c
	newConfig.MaxTokens = maxTokens
	return &newConfig
}
