// Package logging provides structured logging utilities for navgate binaries.
//
// # Overview
//
// This package wraps the standard library slog package with navgate defaults:
// JSON records on stderr, a level taken from the LOG_LEVEL environment
// variable, and module/version attributes on every record.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("navgated", version)
//	    slog.Info("resolving navigation mode", "version", raw)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("navgate", version, "warn")
//
// Converting standard library logger (e.g. for http.Server.ErrorLog):
//
//	stdLogger := logging.NewLogLogger(slog.LevelError, false)
//
// # Output Format
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "navgated",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
//
// The gate itself (packages version, navigation and compat) never logs;
// unparseable versions are an expected outcome, not an event.
package logging
