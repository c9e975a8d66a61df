package config

// EnvPrefix is prepended to every environment variable read by Load
const EnvPrefix = "CLONESCAN"

// LogFormat represents the supported log encodings
type LogFormat string

const (
	// LogFormatJSON writes one JSON object per log entry
	LogFormatJSON LogFormat = "json"

	// LogFormatConsole writes human readable log entries
	LogFormatConsole LogFormat = "console"
)
