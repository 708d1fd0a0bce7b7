// Package logging provides structured logging utilities for drivectl.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
// Setup builds the process-wide handler (text or json, to stderr); the
// attribute helpers keep key names uniform across call sites.
//
// Usage:
//
//	logger := logging.WithOperation(slog.Default(), "drive.list")
//	logger.Debug("listing folder",
//	    logging.Folder(name),
//	    logging.Count(len(files)))
//
// API-call logging stays at debug level so the command output itself remains
// the only thing a normal run prints.
package logging
