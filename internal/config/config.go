// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Ranked  string `json:"ranked,omitempty"`  // Path to ranked-keywords JSON file
	Brand   string `json:"brand,omitempty"`   // Path to brand-keywords JSON file
	Context string `json:"context,omitempty"` // Path to brand-context JSON file

	// Thresholds
	QuickWinMinVolume int     `json:"quick_win_min_volume,omitempty"` // Minimum volume for quick wins
	GemMinVolume      int     `json:"gem_min_volume,omitempty"`       // Minimum volume for hidden gems
	GemMaxDifficulty  float64 `json:"gem_max_difficulty,omitempty"`   // Maximum difficulty for hidden gems

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	SearchAPI   string `json:"search_api,omitempty"`   // Search-data provider base URL
	Summarize   bool   `json:"summarize,omitempty"`    // Generate a prose summary via LLM
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.QuickWinMinVolume < 0 {
		return fmt.Errorf("config error: 'quick_win_min_volume' must be non-negative")
	}
	if c.GemMinVolume < 0 {
		return fmt.Errorf("config error: 'gem_min_volume' must be non-negative")
	}
	if c.GemMaxDifficulty < 0 || c.GemMaxDifficulty > 100 {
		return fmt.Errorf("config error: 'gem_max_difficulty' must be between 0 and 100")
	}

	for _, path := range []string{c.Ranked, c.Brand, c.Context} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Ranked == "" {
		result.Ranked = defaults.Ranked
	}
	if result.Brand == "" {
		result.Brand = defaults.Brand
	}
	if result.Context == "" {
		result.Context = defaults.Context
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SearchAPI == "" {
		result.SearchAPI = defaults.SearchAPI
	}

	if result.QuickWinMinVolume == 0 {
		result.QuickWinMinVolume = defaults.QuickWinMinVolume
	}
	if result.GemMinVolume == 0 {
		result.GemMinVolume = defaults.GemMinVolume
	}
	if result.GemMaxDifficulty == 0 {
		result.GemMaxDifficulty = defaults.GemMaxDifficulty
	}

	// Opt-in bools: false is indistinguishable from unset, so either source
	// may switch them on and neither can switch them off.
	result.Summarize = result.Summarize || defaults.Summarize
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
