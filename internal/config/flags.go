package config

import (
	"flag"
	"io"

	"github.com/aptidude/aptidude/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are considered; see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-f", "-z"})

	fs := flag.NewFlagSet("aptidude", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json, zap)")
	fs.StringVar(&cfg.Timezone, "z", cfg.Timezone, "time zone for streak days")

	return fs.Parse(args)
}
