package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the aptidude CLI.
type Config struct {
	DatabasePath string `mapstructure:"database_path" validate:"required"`
	LogLevel     string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat    string `mapstructure:"log_format" validate:"required,oneof=text json zap"`
	Timezone     string `mapstructure:"timezone" validate:"required,timezone"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "aptidude.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.Timezone = "UTC"
}

// Validate reports the first field that fails its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the config file named in
// args (if any), then flags in args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
