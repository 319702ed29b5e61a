package config

import (
	"fmt"

	"github.com/aptidude/aptidude/internal/flagx"
	"github.com/spf13/viper"
)

// parseFile overlays cfg with values from the file given by -c or -config.
// Keys missing from the file leave the current values untouched.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}
