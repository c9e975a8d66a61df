package app

import (
	"context"

	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/sonemaro/clonescan/pkg/options"
)

// Detector runs clone detection with the resolved options. The detection
// engine itself lives outside this module.
type Detector interface {
	Detect(ctx context.Context, opts options.Options) error
}

// DetectorFunc adapts a function to the Detector interface
type DetectorFunc func(ctx context.Context, opts options.Options) error

func (f DetectorFunc) Detect(ctx context.Context, opts options.Options) error {
	return f(ctx, opts)
}

type logDetector struct {
	log logger.Logger
}

// NewLogDetector returns the bundled detector. It records the hand-off and
// returns; a cancelled context is reported as an error.
func NewLogDetector(log logger.Logger) Detector {
	return &logDetector{log: log}
}

func (d *logDetector) Detect(ctx context.Context, opts options.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.log.WithFields(logger.Fields{
		"path":      opts.Path,
		"formats":   len(opts.Format),
		"minLines":  opts.MinLines,
		"minTokens": opts.MinTokens,
		"mode":      opts.Mode,
		"reporters": opts.Reporters,
		"listeners": opts.Listeners,
		"output":    opts.Output,
	}).Info("Options handed to detector")

	return nil
}
