package model

import "time"

// Config holds the full application configuration.
type Config struct {
	Cache        CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" json:"rate_limiting"`
	Output       OutputConfig      `yaml:"output" json:"output"`
	LLM          LLMConfig         `yaml:"llm" json:"llm"`
	Logging      LoggingConfig     `yaml:"logging" json:"logging"`
}

// CacheConfig controls the layered report cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing parallelism.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitConfig throttles outbound LLM API calls.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig configures the optional summary provider. Provider "" disables it.
type LLMConfig struct {
	Provider       string `yaml:"provider" json:"provider"`
	Model          string `yaml:"model" json:"model"`
	APIKey         string `yaml:"-" json:"-"`
	BaseURL        string `yaml:"base_url" json:"base_url"`
	Timeout        int    `yaml:"timeout" json:"timeout"` // seconds
	StrictAccounts bool   `yaml:"strict_accounts" json:"strict_accounts"`
	MaxTokens      int    `yaml:"max_tokens" json:"max_tokens"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // console or json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 1.0,
			BurstSize:         2,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:       "",
			Model:          "",
			Timeout:        30,
			StrictAccounts: true,
			MaxTokens:      1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
