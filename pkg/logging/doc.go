// Package logging provides structured logging utilities for crumb binaries.
//
// # Overview
//
// This package wraps the standard library slog package with shared defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
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
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("crumb", "v1.0.0")
//	    slog.Info("starting", "name", name)
//
//	    // Use slog as normal
//	    slog.Debug("recipe built", "flour", "1000.00 g", "total", "1720.00 g")
//	    slog.Error("server exited with error", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("crumbd", "v2.0.0", "debug")
//	logger.Info("starting server", "address", ":8080")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug crumb recipe --mass 1000
//	LOG_LEVEL=error crumbd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "starting server",
//	    "module": "crumbd",
//	    "version": "v1.0.0",
//	    "address": "[::]:8080"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "github.com/crumbworks/crumb/pkg/recipe.(*Builder).Build",
//	        "file": "builder.go",
//	        "line": 173
//	    },
//	    "msg": "recipe built",
//	    "module": "crumbd",
//	    "version": "v1.0.0",
//	    "flour": "1000.00 g",
//	    "water": "700.00 g",
//	    "total": "1720.00 g",
//	    "preferments": 1
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    slog.Info("starting", "name", name)
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Warn("preferments exceed dough hydration, no water added",
//	    "target", water.Target().String(),
//	    "excess", water.Excess().String(),
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("recipe built", ...)                                      // Development/troubleshooting
//	slog.Info("starting server", ...)                                    // Normal operations
//	slog.Warn("preferments exceed dough hydration, no water added", ...) // Potential issues
//	slog.Error("server exited with error", "error", err)                 // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("panic recovered",
//	    "error", fmt.Sprint(rec),
//	    "path", r.URL.Path,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/api - API server logging
//   - pkg/cli - CLI command logging
//   - pkg/recipe - Recipe build logging
//
// All components share consistent logging format and configuration.
package logging
