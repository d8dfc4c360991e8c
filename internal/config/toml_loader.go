package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kwscout/kwscout/domain"
)

// loadTomlConfig merges a .kwscout.toml file into the given config
func loadTomlConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NewConfigError(fmt.Sprintf("failed to read config file %s", path), err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return domain.NewConfigError(fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return nil
}

// DefaultConfigTOML is the annotated template written by `kwscout init`.
const DefaultConfigTOML = `# kwscout configuration
# Settings are merged over built-in defaults; flag values win over
# everything here.

# vidIQ API token. Prefer the VIDIQ_TOKEN environment variable over
# storing the token in a file.
# token = ""

# Pause in seconds before each API request.
delay_seconds = 1.0

# Maximum number of keyword search results per query.
limit = 300

# Minimum score for related keyword results.
min_related_score = 0

# Scoring group sent with related searches.
group = "v5"

[output]
# Output format: text, json, yaml, csv
format = "text"

# Directory for exported CSV files.
directory = "."
`

// WriteDefaultConfig creates a .kwscout.toml template at path. It
// refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.NewConfigError(fmt.Sprintf("config file already exists: %s", path), nil)
	}
	if err := os.WriteFile(path, []byte(DefaultConfigTOML), 0644); err != nil {
		return domain.NewConfigError(fmt.Sprintf("failed to write config file %s", path), err)
	}
	return nil
}
