/*
Package app provides the application container for clonescan. It owns the
logger, the option resolver, the output formatter and the hand-off to the
clone detector.

Usage:

	a := app.New(settings)
	if err := a.Run(ctx, args); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/sonemaro/clonescan/internal/config"
	"github.com/sonemaro/clonescan/pkg/formats"
	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/sonemaro/clonescan/pkg/options"
	"github.com/sonemaro/clonescan/pkg/output"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// App represents the main application container
type App struct {
	config config.Config
	log    logger.Logger
	fs     afero.Fs
	out    io.Writer

	resolverConfig options.ResolverConfig
	detector       Detector
}

// Option configures an App
type Option func(*App)

// WithLogger replaces the logger built from the runtime settings
func WithLogger(log logger.Logger) Option {
	return func(a *App) { a.log = log }
}

// WithFs sets the filesystem the config file is read from
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// WithOutput sets where catalogs and resolved options are printed
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithResolverConfig overrides the working directory, clock or format catalog
func WithResolverConfig(cfg options.ResolverConfig) Option {
	return func(a *App) { a.resolverConfig = cfg }
}

// WithDetector sets the collaborator that receives the resolved options
func WithDetector(d Detector) Option {
	return func(a *App) { a.detector = d }
}

// New creates a new application instance
func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		config: cfg,
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		a.initLogger()
	}
	if a.detector == nil {
		a.detector = NewLogDetector(a.log)
	}

	a.log.WithFields(logger.Fields{
		"verbose":   cfg.Verbose,
		"logFormat": cfg.LogFormat,
		"noColor":   cfg.NoColor,
	}).Debug("Application initialized")

	return a
}

// initLogger initializes the application logger
func (a *App) initLogger() {
	a.log = logger.NewLogger(logger.Config{
		Verbosity: a.config.Verbose,
		Encoding:  logger.Encoding(a.config.LogFormat),
	})

	a.log.WithFields(logger.Fields{
		"verbosity": a.config.Verbose,
	}).Debug("Logger initialized")
}

// Logger returns the application logger
func (a *App) Logger() logger.Logger {
	return a.log
}

// Run resolves the options for one invocation and acts on them: --list prints
// the format catalog, --debug prints the options, anything else is handed to
// the detector.
func (a *App) Run(ctx context.Context, args options.Args) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	resolver := options.NewResolver(a.resolverConfig, a.fs, a.log)
	opts, err := resolver.Resolve(args)
	if err != nil {
		return err
	}

	if !opts.Mode.IsKnown() {
		a.log.WithFields(logger.Fields{
			"mode": opts.Mode,
		}).Warn("Unknown mode, passing it through to the detector")
	}

	switch {
	case opts.List:
		a.log.Debug("Listing supported formats")
		return a.PrintCatalog(output.FormatText, false, opts.FormatsExts)
	case opts.Debug:
		a.log.Debug("Debug mode, printing options without detection")
		return a.PrintOptions(output.FormatText, opts)
	}

	a.log.WithFields(logger.Fields{
		"path":        opts.Path,
		"executionId": opts.ExecutionID,
	}).Info("Starting detection")

	if err := a.detector.Detect(ctx, opts); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Detection failed")
		return fmt.Errorf("detection failed: %w", err)
	}

	return nil
}

// PrintOptions renders opts to the output writer
func (a *App) PrintOptions(format output.Format, opts options.Options) error {
	rendered, err := a.formatter(format, false).FormatOptions(opts)
	if err != nil {
		return fmt.Errorf("output formatting failed: %w", err)
	}
	return a.write(rendered)
}

// PrintCatalog renders every supported format, with overrides applied, to the
// output writer
func (a *App) PrintCatalog(format output.Format, withStats bool, overrides map[string][]string) error {
	entries := formats.Catalog(formats.Supported(), overrides)

	rendered, err := a.formatter(format, withStats).FormatCatalog(entries)
	if err != nil {
		return fmt.Errorf("output formatting failed: %w", err)
	}
	return a.write(rendered)
}

func (a *App) formatter(format output.Format, withStats bool) output.Formatter {
	return output.NewFormatter(output.Config{
		Format:     format,
		WithStats:  withStats,
		WithColors: format == output.FormatText && a.colorsEnabled(),
	}, a.log)
}

// colorsEnabled reports whether text output goes to a terminal and colors
// were not turned off.
func (a *App) colorsEnabled() bool {
	if a.config.NoColor {
		return false
	}
	f, ok := a.out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (a *App) write(s string) error {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	if _, err := io.WriteString(a.out, s); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to write output")
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
