package options

import (
	"fmt"
	"os"
	"time"

	"github.com/sonemaro/clonescan/pkg/formats"
	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/spf13/afero"
)

// ResolverConfig holds the process state the resolver would otherwise read
// from globals. Zero fields fall back to the real process values.
type ResolverConfig struct {
	// WorkDir anchors relative paths; defaults to os.Getwd()
	WorkDir string

	// Now seeds the default execution id; defaults to time.Now
	Now func() time.Time

	// Formats is the supported format catalog; defaults to formats.Supported()
	Formats []string

	// ConfigName is looked up in WorkDir when no --config is given
	ConfigName string
}

// Resolver produces the effective Options for one invocation.
type Resolver struct {
	config ResolverConfig
	fs     afero.Fs
	log    logger.Logger
}

// NewResolver creates a resolver reading config files from fs.
func NewResolver(config ResolverConfig, fs afero.Fs, log logger.Logger) *Resolver {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Formats == nil {
		config.Formats = formats.Supported()
	}
	if config.ConfigName == "" {
		config.ConfigName = DefaultConfigName
	}

	return &Resolver{
		config: config,
		fs:     fs,
		log:    log,
	}
}

// Resolve runs the whole pipeline: normalize args, load the persisted file,
// merge over defaults, then derive reporters and listeners. Any error aborts
// resolution; no partial result is returned.
func (r *Resolver) Resolve(args Args) (Options, error) {
	workDir, err := r.workDir()
	if err != nil {
		return Options{}, err
	}

	fromArgs, err := ParseArgs(args, workDir)
	if err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Invalid command-line options")
		return Options{}, err
	}

	r.log.WithFields(logger.Fields{
		"keys": fromArgs.Keys(),
	}).Debug("Normalized command-line options")

	stored, configFile, err := LoadStored(r.fs, r.ConfigPath(args, workDir), r.log)
	if err != nil {
		return Options{}, err
	}

	defaults := Defaults(r.config.Now(), workDir, r.config.Formats)

	merged, err := Merge(fromArgs, stored, defaults.Partial())
	if err != nil {
		return Options{}, err
	}
	merged.ConfigFile = configFile

	resolved := derive(merged, r.log)

	r.log.WithFields(logger.Fields{
		"config":      resolved.ConfigFile,
		"path":        resolved.Path,
		"executionId": resolved.ExecutionID,
		"reporters":   resolved.Reporters,
		"listeners":   resolved.Listeners,
		"mode":        resolved.Mode,
	}).Debug("Options resolved")

	return resolved, nil
}

// ConfigPath returns the absolute candidate config file: --config when given,
// else ConfigName inside workDir.
func (r *Resolver) ConfigPath(args Args, workDir string) string {
	if args.Config != nil && *args.Config != "" {
		return absPath(workDir, *args.Config)
	}
	return absPath(workDir, r.config.ConfigName)
}

func (r *Resolver) workDir() (string, error) {
	if r.config.WorkDir != "" {
		return r.config.WorkDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return wd, nil
}
