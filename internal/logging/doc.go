// Package logging provides structured logging for the TypePolish tools.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the client and the development server. Logging is
// silent by default so that nothing interferes with the terminal UI; set the
// TYPEPOLISH_LOG_LEVEL environment variable to enable output.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (request payload sizes, debounce timing)
//   - Info: Normal operations (requests completed, server startup)
//   - Warn: Non-fatal issues (failed correction requests)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Correction request completed",
//	    zap.String("operation", "correct"),
//	    zap.Int("status", 200),
//	)
//
// # Privacy
//
// The specialized request helpers log text lengths, never the user's text.
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
