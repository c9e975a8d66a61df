package options

import "fmt"

// ConfigParseError is returned when the persisted config file exists but its
// content cannot be decoded into options.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatMappingError is returned for a --formats-exts entry that is not
// of the form format:ext[,ext...].
type InvalidFormatMappingError struct {
	Value string
	Entry string
}

func (e *InvalidFormatMappingError) Error() string {
	return fmt.Sprintf("invalid formats-exts entry %q in %q: expected format:ext[,ext...]", e.Entry, e.Value)
}
