// Package config loads and validates kwscout configuration from TOML
// and YAML files, the environment, and command line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/kwscout/kwscout/domain"
)

// TokenEnvVar is the environment variable holding the vidIQ API token.
const TokenEnvVar = "VIDIQ_TOKEN"

// Default request settings
const (
	// DefaultDelaySeconds is the pause before each API request
	DefaultDelaySeconds = 1.0

	// DefaultLimit is the maximum number of keyword search results
	DefaultLimit = 300

	// DefaultMinRelatedScore filters related keywords below this score
	DefaultMinRelatedScore = 0

	// DefaultGroup is the scoring group sent with related searches
	DefaultGroup = "v5"
)

// Config represents the main configuration structure
type Config struct {
	// Token is the vidIQ API bearer token
	Token string `mapstructure:"token" toml:"token" yaml:"token"`

	// DelaySeconds is the pause before each API request
	DelaySeconds float64 `mapstructure:"delay_seconds" toml:"delay_seconds" yaml:"delay_seconds"`

	// Limit is the maximum number of keyword search results
	Limit int `mapstructure:"limit" toml:"limit" yaml:"limit"`

	// MinRelatedScore filters related keywords below this score
	MinRelatedScore int `mapstructure:"min_related_score" toml:"min_related_score" yaml:"min_related_score"`

	// Group is the scoring group sent with related searches
	Group string `mapstructure:"group" toml:"group" yaml:"group"`

	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" toml:"output" yaml:"output"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `mapstructure:"format" toml:"format" yaml:"format"`

	// Directory is where exported CSV files are written
	Directory string `mapstructure:"directory" toml:"directory" yaml:"directory"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DelaySeconds:    DefaultDelaySeconds,
		Limit:           DefaultLimit,
		MinRelatedScore: DefaultMinRelatedScore,
		Group:           DefaultGroup,
		Output: OutputConfig{
			Format:    "text",
			Directory: ".",
		},
	}
}

// Delay converts the configured delay into a duration
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelaySeconds * float64(time.Second))
}

// ResolveToken picks the API token with flag > environment > config
// file priority
func (c *Config) ResolveToken(flagToken string) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if envToken := os.Getenv(TokenEnvVar); envToken != "" {
		return envToken, nil
	}
	if c.Token != "" {
		return c.Token, nil
	}
	return "", domain.NewConfigError(
		fmt.Sprintf("no API token configured: set --token, %s, or token in the config file", TokenEnvVar), nil)
}

// LoadConfig loads configuration from file or returns default config.
// An empty configPath triggers discovery of .kwscout.toml and
// kwscout.yaml in the current and home directories.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findDefaultConfig()
	}
	if configPath == "" {
		return config, nil
	}

	if filepath.Ext(configPath) == ".toml" {
		if err := loadTomlConfig(configPath, config); err != nil {
			return nil, err
		}
	} else {
		v := viper.New()
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, domain.NewConfigError(fmt.Sprintf("failed to read config file %s", configPath), err)
		}
		if err := v.Unmarshal(config); err != nil {
			return nil, domain.NewConfigError(fmt.Sprintf("failed to unmarshal config file %s", configPath), err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig() string {
	candidates := []string{
		".kwscout.toml",
		"kwscout.yaml",
		"kwscout.yml",
		".kwscout.yaml",
		".kwscout.yml",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.DelaySeconds < 0 {
		return domain.NewConfigError(fmt.Sprintf("delay_seconds must be >= 0, got %g", c.DelaySeconds), nil)
	}
	if c.Limit < 1 {
		return domain.NewConfigError(fmt.Sprintf("limit must be >= 1, got %d", c.Limit), nil)
	}
	if c.MinRelatedScore < 0 {
		return domain.NewConfigError(fmt.Sprintf("min_related_score must be >= 0, got %d", c.MinRelatedScore), nil)
	}
	if c.Group == "" {
		return domain.NewConfigError("group must not be empty", nil)
	}
	switch c.Output.Format {
	case "text", "json", "yaml", "csv":
	default:
		return domain.NewConfigError(fmt.Sprintf("output.format must be one of text, json, yaml, csv; got %q", c.Output.Format), nil)
	}
	return nil
}
