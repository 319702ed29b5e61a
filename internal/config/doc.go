// Package config loads runtime configuration for the aptidude CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Any format viper
//     understands by extension works (json, yaml, toml).
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the local database file
//	-l string   log level: debug, info, warn or error
//	-f string   log format: text, json or zap
//	-z string   IANA time zone used to count streak days
//
// # File schema
//
//	{
//	  "database_path": "aptidude.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "timezone": "Europe/Riga"
//	}
//
// The resulting Config is validated before it is returned.
package config
