/*
Package commands implements the CLI command structure for clonescan. The root
command resolves options and hands them to the detector; subcommands print
version information and the format catalog.
*/
package commands

import (
	"fmt"

	"github.com/sonemaro/clonescan/cmd/clonescan/app"
	"github.com/sonemaro/clonescan/internal/config"
	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/spf13/cobra"
)

// Options holds command-line options that apply to all commands
type Options struct {
	Settings *config.Config
	Verbose  int
	NoColor  bool

	// appOptions are passed to every App the commands create
	appOptions []app.Option
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	return newRootCommand()
}

func newRootCommand(appOptions ...app.Option) *cobra.Command {
	opts := &Options{
		Settings:   &config.Config{LogFormat: string(config.LogFormatConsole)},
		appOptions: appOptions,
	}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "clonescan [flags] [path]",
		Short: "Copy/paste detector for source code",
		Long: `clonescan finds duplicated blocks of code across a source tree.

Options are read from command-line flags, then from the .clonescan.json file
in the working directory (or the file given with --config), then from
built-in defaults. A flag always wins over the file, and the file always
wins over the defaults.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeCommand(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v",
		"verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false,
		"disable colored output")

	flags.register(rootCmd.Flags())

	rootCmd.AddCommand(
		newFormatsCommand(opts),
		newVersionCommand(opts),
	)

	return rootCmd
}

// initializeCommand performs common initialization for all commands
func initializeCommand(cmd *cobra.Command, opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override config with command line flags
	cfg.Verbose += opts.Verbose
	if opts.NoColor {
		cfg.NoColor = true
	}

	opts.Settings = &cfg
	return nil
}

func runRoot(cmd *cobra.Command, positional []string, opts *Options, flags *rootFlags) error {
	a := newApp(cmd, opts)

	args := flags.args(cmd.Flags(), positional)

	a.Logger().WithFields(logger.Fields{
		"command":   cmd.Name(),
		"verbosity": opts.Settings.Verbose,
		"args":      len(positional),
	}).Debug("Running root command")

	return a.Run(cmd.Context(), args)
}

func newApp(cmd *cobra.Command, opts *Options) *app.App {
	appOptions := append([]app.Option{app.WithOutput(cmd.OutOrStdout())}, opts.appOptions...)
	return app.New(*opts.Settings, appOptions...)
}
