/*
Package output renders resolved options and the format catalog as text, JSON
or YAML. Text output supports colors and, for the catalog, a statistics
footer.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatText,
		WithStats:  true,
		WithColors: true,
	}, log)

	result, err := formatter.FormatOptions(opts)
*/
package output

import (
	"fmt"

	"github.com/sonemaro/clonescan/pkg/formats"
	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/sonemaro/clonescan/pkg/options"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// Config holds formatter configuration
type Config struct {
	Format     Format
	WithStats  bool
	WithColors bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	// FormatOptions renders a resolved configuration
	FormatOptions(options.Options) (string, error)

	// FormatCatalog renders the format catalog
	FormatCatalog([]formats.Entry) (string, error)
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	return &formatter{
		config: config,
		log:    log,
	}
}

// FormatOptions formats the options according to the configured format
func (f *formatter) FormatOptions(opts options.Options) (string, error) {
	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"withColors": f.config.WithColors,
	}).Debug("Formatting options")

	switch f.config.Format {
	case FormatText:
		return f.optionsText(opts), nil
	case FormatJSON:
		return f.marshalJSON(opts)
	case FormatYAML:
		return f.marshalYAML(opts)
	default:
		return "", f.unsupported()
	}
}

// FormatCatalog formats the catalog entries according to the configured format
func (f *formatter) FormatCatalog(entries []formats.Entry) (string, error) {
	if entries == nil {
		msg := "nil catalog provided for formatting"
		f.log.Error(msg)
		return "", fmt.Errorf("%s", msg)
	}

	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"entries":    len(entries),
		"withStats":  f.config.WithStats,
		"withColors": f.config.WithColors,
	}).Debug("Formatting catalog")

	switch f.config.Format {
	case FormatText:
		return f.catalogText(entries), nil
	case FormatJSON:
		return f.marshalJSON(f.catalogDocument(entries))
	case FormatYAML:
		return f.marshalYAML(f.catalogDocument(entries))
	default:
		return "", f.unsupported()
	}
}

func (f *formatter) unsupported() error {
	msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
	f.log.Error(msg)
	return fmt.Errorf("%s", msg)
}
