package model

import "time"

// Config is the complete FinSpeak configuration
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Cache   CacheConfig   `yaml:"cache"`
	Catalog CatalogConfig `yaml:"catalog"`
	Intent  IntentConfig  `yaml:"intent"`
	LLM     LLMConfig     `yaml:"llm"`
	Output  OutputConfig  `yaml:"output"`
}

// HTTPConfig controls the outbound API client
type HTTPConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
}

// CacheConfig controls fund-list caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// CatalogConfig controls fund-name resolution
type CatalogConfig struct {
	// Matcher selects the similarity backend: "token_set" or "substring"
	Matcher   string  `yaml:"matcher"`
	Threshold float64 `yaml:"threshold"`
}

// IntentConfig selects the intent detection strategy
type IntentConfig struct {
	// Strategy is "rules" or "model"
	Strategy string `yaml:"strategy"`
}

// LLMConfig configures the optional model-backed detector and explainer
type LLMConfig struct {
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Model     string `yaml:"model"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			BaseURL:           "https://api.mfapi.in/mf",
			Timeout:           30 * time.Second,
			UserAgent:         "FinSpeak/0.2 (+https://github.com/finspeak/finspeak)",
			MaxBodyBytes:      20_000_000,
			RequestsPerSecond: 4,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: time.Hour,
			DiskDir:   "",
			DiskTTL:   24 * time.Hour,
		},
		Catalog: CatalogConfig{
			Matcher:   "token_set",
			Threshold: 60,
		},
		Intent: IntentConfig{
			Strategy: "rules",
		},
		LLM: LLMConfig{
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 200,
		},
		Output: OutputConfig{},
	}
}
