// Package config provides the runtime settings of clonescan, read from the
// environment through viper.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
//	CLONESCAN_VERBOSE     Verbosity level ("vv" or "2")
//	CLONESCAN_LOG_FORMAT  Log encoding: json|console (default: console)
//	CLONESCAN_NO_COLOR    Disable colored output (true/false)
//
// The -v flag of the root command adds to CLONESCAN_VERBOSE, and --no-color
// forces NoColor.
//
// # Configuration Validation
//
//   - Verbose must be non-negative
//   - LogFormat must be one of: json, console
//
// Detection options (min lines, reporters, formats and so on) are not runtime
// settings. They are resolved by package options from flags, the
// .clonescan.json file and defaults.
package config
