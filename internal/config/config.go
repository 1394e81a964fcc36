// Package config provides configuration loading and validation for the CLI,
// the HTTP server and the queue worker.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Defaults applied by MergeWithDefaults and Load.
const (
	DefaultPort          = 8080
	DefaultMaxInputChars = 20000
	DefaultRequestQueue  = "analysis.requests"
	DefaultResultQueue   = "analysis.results"
	DefaultPrefetch      = 4
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultGeminiModel   = "gemini-2.0-flash-lite"
)

// Config is loaded from a JSON or YAML file and then overridden by the environment.
// All fields are optional.
type Config struct {
	// Server
	Port          int    `json:"port,omitempty" yaml:"port,omitempty"`                       // HTTP listen port
	MaxInputChars int    `json:"max_input_chars,omitempty" yaml:"max_input_chars,omitempty"` // texts are truncated to this many runes
	CORSOrigin    string `json:"cors_origin,omitempty" yaml:"cors_origin,omitempty"`         // Access-Control-Allow-Origin value

	// Storage
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	// Queue
	AMQPURL      string `json:"amqp_url,omitempty" yaml:"amqp_url,omitempty"`
	RequestQueue string `json:"request_queue,omitempty" yaml:"request_queue,omitempty"`
	ResultQueue  string `json:"result_queue,omitempty" yaml:"result_queue,omitempty"`
	Prefetch     int    `json:"prefetch,omitempty" yaml:"prefetch,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`   // trace, debug, info, warn, error
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"` // json or pretty

	// Keyword extraction
	GeminiAPIKey  string              `json:"gemini_api_key,omitempty" yaml:"gemini_api_key,omitempty"` // enables the LLM keyword strategy
	GeminiModel   string              `json:"gemini_model,omitempty" yaml:"gemini_model,omitempty"`
	ExtraSynonyms map[string][]string `json:"extra_synonyms,omitempty" yaml:"extra_synonyms,omitempty"` // canonical -> variants

	// Rate limiting; zero keeps the ratelimit package defaults.
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty" yaml:"rate_limit_per_minute,omitempty"`

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Port:          DefaultPort,
		MaxInputChars: DefaultMaxInputChars,
		RequestQueue:  DefaultRequestQueue,
		ResultQueue:   DefaultResultQueue,
		Prefetch:      DefaultPrefetch,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		GeminiModel:   DefaultGeminiModel,
	}
}

// Load reads path (when non-empty), fills unset values from Default, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(Default())
	merged.ApplyEnv()
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a JSON file, or from YAML when the
// extension is .yaml or .yml.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxInputChars < 0 {
		return fmt.Errorf("config error: 'max_input_chars' must be non-negative")
	}
	if c.Prefetch < 0 {
		return fmt.Errorf("config error: 'prefetch' must be non-negative")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}

	if c.RequestQueue != "" && c.RequestQueue == c.ResultQueue {
		return fmt.Errorf("config error: 'request_queue' and 'result_queue' must differ")
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
			return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
		}
	}
	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or pretty")
	}

	for canonical, variants := range c.ExtraSynonyms {
		if strings.TrimSpace(canonical) == "" || len(variants) == 0 {
			return fmt.Errorf("config error: synonym class %q needs a name and at least one variant", canonical)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CORSOrigin == "" {
		result.CORSOrigin = defaults.CORSOrigin
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.AMQPURL == "" {
		result.AMQPURL = defaults.AMQPURL
	}
	if result.RequestQueue == "" {
		result.RequestQueue = defaults.RequestQueue
	}
	if result.ResultQueue == "" {
		result.ResultQueue = defaults.ResultQueue
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxInputChars == 0 {
		result.MaxInputChars = defaults.MaxInputChars
	}
	if result.Prefetch == 0 {
		result.Prefetch = defaults.Prefetch
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}

	// Synonym classes from both sides are kept; file classes win on conflict.
	if len(defaults.ExtraSynonyms) > 0 {
		merged := make(map[string][]string, len(defaults.ExtraSynonyms)+len(result.ExtraSynonyms))
		for k, v := range defaults.ExtraSynonyms {
			merged[k] = v
		}
		for k, v := range result.ExtraSynonyms {
			merged[k] = v
		}
		result.ExtraSynonyms = merged
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Truncate cuts text to MaxInputChars runes. A zero limit leaves text unchanged.
func (c *Config) Truncate(text string) string {
	if c.MaxInputChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= c.MaxInputChars {
		return text
	}
	return string(runes[:c.MaxInputChars])
}
