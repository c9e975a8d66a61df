/*
Package config provides the process-level runtime settings of clonescan.
These settings only change how the tool logs and renders; they never affect
the resolved detection options.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Environment Variables:

	CLONESCAN_VERBOSE      Verbosity level (number of 'v's, or a number)
	CLONESCAN_LOG_FORMAT   Log encoding: json|console
	CLONESCAN_NO_COLOR     Disable colored output

Default Values:

	Verbose:    0
	LogFormat:  "console"
	NoColor:    false
*/
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the application
type Config struct {
	// Verbose sets the verbosity level
	Verbose int

	// LogFormat is the log encoding (json or console)
	LogFormat string

	// NoColor disables colored output
	NoColor bool
}

// validLogFormats contains the list of supported log encodings
var validLogFormats = map[string]bool{
	string(LogFormatJSON):    true,
	string(LogFormatConsole): true,
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("verbose", "")
	v.SetDefault("log_format", string(LogFormatConsole))
	v.SetDefault("no_color", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	_ = v.BindEnv("verbose")
	_ = v.BindEnv("log_format")
	_ = v.BindEnv("no_color")

	cfg := Config{
		Verbose:   parseVerbosity(v.GetString("verbose")),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
		NoColor:   v.GetBool("no_color"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseVerbosity accepts either a count of 'v's ("vvv") or a plain number.
func parseVerbosity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return strings.Count(raw, "v")
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format %q: must be one of [json console]", c.LogFormat)
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf("Config{Verbose: %d, LogFormat: %s, NoColor: %v}",
		c.Verbose, c.LogFormat, c.NoColor)
}
