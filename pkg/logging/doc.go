// Package logging provides structured logging utilities for deploykit components.
//
// # Overview
//
// This package wraps the standard library slog package with deploykit defaults
// so the CLI and any embedding orchestrator log the same way. It supports
// environment-based log level configuration, module/version context injection,
// and source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Integration with standard library log package
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
//	func main() {
//	    logging.SetDefaultStructuredLogger("deployctl", version)
//	    slog.Info("polling deployment", "port", 30080)
//	}
//
// Setting explicit log level (an explicit level wins over LOG_LEVEL):
//
//	logging.SetDefaultStructuredLoggerWithLevel("deployctl", version, "debug")
//
// Converting to a standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "deployment healthy",
//	    "module": "deployctl",
//	    "version": "v1.0.0",
//	    "attempts": 3
//	}
package logging
