package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is loaded from the working directory when present
// and no explicit --config flag was given.
const DefaultConfigFile = "lexpath.yaml"

// ErrReadConfig indicates a config file could not be read or decoded.
var ErrReadConfig = errors.New("read config")

// Config holds file-based defaults for the persistent flags. Flags set
// explicitly on the command line always win over file values.
type Config struct {
	Platform    string `yaml:"platform"`
	DoubleSlash string `yaml:"doubleSlash"`
	LogLevel    string `yaml:"logLevel"`
	LogFormat   string `yaml:"logFormat"`
}

// LoadConfig reads and decodes the config file at path. A missing
// default file is not an error; a missing explicit file is.
func LoadConfig(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is operator-supplied configuration.
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
	}

	return cfg, nil
}
