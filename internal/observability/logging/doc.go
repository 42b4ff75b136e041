// Package logging provides structured logging utilities with context propagation.
//
// Key features:
//   - JSON and text output formats
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "magazine-catalog/internal/observability/logging"
//
//	logger := logging.New(os.Stderr, "debug", logging.FormatText)
//	ctx := logging.WithLogger(context.Background(), logger)
//	logging.FromContext(ctx).Info("catalog ready")
package logging
