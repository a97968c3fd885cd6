// Package logging provides structured logging utilities for the meetfewer application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - PII sanitization (calendar identities are email addresses)
//   - Consistent attribute naming across CLI, engine and MCP server
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "suggest_slots")
//	logger.Info("slots suggested",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("fetching busy intervals",
//	    logging.CalendarHash(calendarID))
//
// # Security Considerations
//
// Colleague calendar IDs are email addresses and therefore PII; they are
// hashed before logging so entries stay correlatable without exposure.
// Tokens are never logged directly.
package logging
