/*
Package logger provides structured logging for clonescan. It wraps uber-go/zap
behind a small interface with verbosity levels and field-based context.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Resolving options")
	log.Debug("Config file not found")  // Only shown with verbosity >= 1
	log.Trace("Derivation step applied") // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "config": "/proj/.clonescan.json",
	    "keys":   12,
	}).Debug("Loaded persisted options")

Output Example (JSON encoding):

	{
	    "level": "debug",
	    "ts": "2026-01-20T15:04:05.000Z",
	    "message": "Loaded persisted options",
	    "config": "/proj/.clonescan.json",
	    "keys": 12
	}

Set Config.Encoding to EncodingConsole for tab separated output on a terminal.

The logger is safe for concurrent use by multiple goroutines.
*/
package logger
