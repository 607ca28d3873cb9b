// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/meal-planner/internal/llm"
	"github.com/jonathan/meal-planner/internal/pantry"
)

// Environment variables read by FromEnv
const (
	EnvProvider        = "LLM_PROVIDER"
	EnvModel           = "LLM_MODEL"
	EnvAnthropicKey    = "ANTHROPIC_API_KEY"
	EnvGeminiKey       = "GEMINI_API_KEY"
	EnvPort            = "PORT"
	EnvTelegramToken   = "TELEGRAM_BOT_TOKEN"
	EnvTelegramAllowID = "TELEGRAM_ALLOW_USER_ID"
)

// DefaultPort is the HTTP port used when none is configured
const DefaultPort = 8080

// Config represents the planner configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment or defaults.
type Config struct {
	// Generation service
	Provider       string `json:"provider,omitempty"`        // "anthropic" or "gemini"
	Model          string `json:"model,omitempty"`           // Model id sent with each request
	MaxTokens      int    `json:"max_tokens,omitempty"`      // Output token bound per plan
	RequestTimeout string `json:"request_timeout,omitempty"` // Go duration, e.g. "90s"
	APIBaseURL     string `json:"api_base_url,omitempty"`    // Messages API host override
	APIKey         string `json:"api_key,omitempty"`         // Overrides the provider's env key

	// Adapters
	Port                int    `json:"port,omitempty"`                   // HTTP listen port
	TelegramToken       string `json:"telegram_token,omitempty"`         // Bot token
	TelegramAllowUserID int64  `json:"telegram_allow_user_id,omitempty"` // Only this user may talk to the bot

	// Bulk staples seeded into the pantry tracker
	BulkItems map[string]bool `json:"bulk_items,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Provider:       string(llm.ProviderAnthropic),
		MaxTokens:      llm.DefaultMaxTokens,
		RequestTimeout: llm.DefaultTimeout.String(),
		Port:           DefaultPort,
		BulkItems:      pantry.DefaultBulkItems(),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration set in the environment
func FromEnv() (Config, error) {
	cfg := Config{
		Provider:      strings.ToLower(strings.TrimSpace(os.Getenv(EnvProvider))),
		Model:         os.Getenv(EnvModel),
		TelegramToken: os.Getenv(EnvTelegramToken),
	}

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be a number: %w", EnvPort, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv(EnvTelegramAllowID); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be a numeric user id: %w", EnvTelegramAllowID, err)
		}
		cfg.TelegramAllowUserID = id
	}

	return cfg, nil
}

// Load resolves the effective configuration: environment first, then the optional
// config file at path, then built-in defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*file)
	}

	cfg = cfg.MergeWithDefaults(Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case "", llm.ProviderAnthropic, llm.ProviderGemini:
	default:
		return fmt.Errorf("config error: unsupported provider %q (use %q or %q)", c.Provider, llm.ProviderAnthropic, llm.ProviderGemini)
	}

	// Validate numeric ranges
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.TelegramAllowUserID < 0 {
		return fmt.Errorf("config error: 'telegram_allow_user_id' must be non-negative")
	}

	if c.RequestTimeout != "" {
		d, err := time.ParseDuration(c.RequestTimeout)
		if err != nil {
			return fmt.Errorf("config error: 'request_timeout' is not a duration: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'request_timeout' must be positive")
		}
	}

	for name := range c.BulkItems {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("config error: 'bulk_items' contains an empty name")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.RequestTimeout == "" {
		result.RequestTimeout = defaults.RequestTimeout
	}
	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.TelegramToken == "" {
		result.TelegramToken = defaults.TelegramToken
	}

	// Int fields: use default if zero
	if result.MaxTokens == 0 {
		result.MaxTokens = defaults.MaxTokens
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TelegramAllowUserID == 0 {
		result.TelegramAllowUserID = defaults.TelegramAllowUserID
	}

	// Maps are taken whole; staples are not merged item by item
	if result.BulkItems == nil {
		result.BulkItems = defaults.BulkItems
	}

	return result
}

// LLMConfig builds the generation client configuration.
// Unset model and base URL fall back to the provider's defaults.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.ForProvider(llm.Provider(c.Provider))
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.MaxTokens > 0 {
		cfg.MaxTokens = c.MaxTokens
	}
	if c.APIBaseURL != "" {
		cfg.BaseURL = c.APIBaseURL
	}
	if d, err := time.ParseDuration(c.RequestTimeout); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// ResolveAPIKey returns the configured key, or the environment key of the selected provider
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	if llm.Provider(c.Provider) == llm.ProviderGemini {
		return os.Getenv(EnvGeminiKey)
	}
	return os.Getenv(EnvAnthropicKey)
}
