// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Output is written to stderr; stdout belongs to
// the command's JSON result.
//
// # Correlation
//
// Every sync run gets a run identifier. WithRun attaches it to a logger and
// WithEmployee attaches the employee_id and patient id, so all entries about a
// single roster record can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
//
//	l := logger.WithEmployee(log, 100, "abc123")
//	l.Warn("Update rejected", zap.Int("status", 500))
package logger
