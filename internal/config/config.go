package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the complete application configuration. The analysis
// pipelines themselves take no configuration: input and output names are
// fixed constants. Only the ambient concerns (logging, output directory)
// are tunable, via CLAIMLENS_* environment variables.
type Config struct {
	Logging LoggingConfig `envconfig:"LOGGING"`
	// OutputDir is where charts and annotated workbooks are written.
	// Empty means the working directory.
	OutputDir string `envconfig:"OUTPUT_DIR"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `envconfig:"FILE_PATH" default:"logs/claimlens.log" validate:"required"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CLAIMLENS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks configuration invariants using struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Default returns the configuration used when the environment is empty.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/claimlens.log",
		},
	}
}
